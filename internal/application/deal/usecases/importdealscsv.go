package usecases

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"keydeals/internal/domain/retailer"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type ImportDealsCSVCommand struct {
	RetailerProfileID uint
	Reader            io.Reader
	MaxRows           int
}

// ImportRowError records why one CSV row was rejected.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportDealsCSVResult struct {
	Imported  int              `json:"imported"`
	Failed    int              `json:"failed"`
	RowErrors []ImportRowError `json:"row_errors,omitempty"`
}

type ImportDealsCSVUseCase struct {
	createDeal   *CreateDealUseCase
	retailerRepo retailer.Repository
	logger       logger.Interface
}

func NewImportDealsCSVUseCase(
	createDeal *CreateDealUseCase,
	retailerRepo retailer.Repository,
	logger logger.Interface,
) *ImportDealsCSVUseCase {
	return &ImportDealsCSVUseCase{
		createDeal:   createDeal,
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

// Execute bulk-creates deals from a CSV upload. Each row goes through the
// same create path as a single submission, daily quota included, so a file
// larger than the remaining quota imports up to the limit and reports the
// rest as failed rows.
func (uc *ImportDealsCSVUseCase) Execute(ctx context.Context, cmd ImportDealsCSVCommand) (*ImportDealsCSVResult, error) {
	profile, err := uc.retailerRepo.GetByID(ctx, cmd.RetailerProfileID)
	if err != nil {
		uc.logger.Errorw("failed to get retailer profile", "error", err, "retailer_profile_id", cmd.RetailerProfileID)
		return nil, fmt.Errorf("failed to get retailer profile: %w", err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("retailer profile not found")
	}
	if !profile.HasCSVPermission() {
		return nil, errors.NewForbiddenError("retailer profile lacks CSV import permission")
	}

	reader := csv.NewReader(cmd.Reader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewValidationError("CSV file is empty or unreadable")
	}
	cols, err := mapHeader(header)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	result := &ImportDealsCSVResult{}
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			result.Failed++
			result.RowErrors = append(result.RowErrors, ImportRowError{Row: rowNum, Reason: "malformed CSV row"})
			continue
		}

		if cmd.MaxRows > 0 && result.Imported+result.Failed >= cmd.MaxRows {
			return nil, errors.NewValidationError(fmt.Sprintf("CSV file exceeds the %d row limit", cmd.MaxRows))
		}

		createCmd, err := parseRow(record, cols, cmd.RetailerProfileID)
		if err != nil {
			result.Failed++
			result.RowErrors = append(result.RowErrors, ImportRowError{Row: rowNum, Reason: err.Error()})
			continue
		}

		if _, err := uc.createDeal.Execute(ctx, *createCmd); err != nil {
			result.Failed++
			reason := "failed to create deal"
			if appErr, ok := err.(*errors.AppError); ok {
				reason = appErr.Message
			}
			result.RowErrors = append(result.RowErrors, ImportRowError{Row: rowNum, Reason: reason})
			continue
		}
		result.Imported++
	}

	uc.logger.Infow("CSV import finished",
		"retailer_profile_id", cmd.RetailerProfileID,
		"imported", result.Imported,
		"failed", result.Failed,
	)

	return result, nil
}

func mapHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"title", "price", "external_url", "expires_at"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("CSV header missing required column %q", required)
		}
	}
	return cols, nil
}

func parseRow(record []string, cols map[string]int, retailerProfileID uint) (*CreateDealCommand, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	price, err := strconv.ParseFloat(field("price"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", field("price"))
	}

	var originalPrice *float64
	if raw := field("original_price"); raw != "" {
		op, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid original price %q", raw)
		}
		originalPrice = &op
	}

	expiresAt, err := time.Parse(time.RFC3339, field("expires_at"))
	if err != nil {
		return nil, fmt.Errorf("invalid expiry %q, expected RFC 3339", field("expires_at"))
	}

	var dealTypeSID *string
	if raw := field("deal_type"); raw != "" {
		dealTypeSID = &raw
	}

	return &CreateDealCommand{
		RetailerProfileID: retailerProfileID,
		DealTypeSID:       dealTypeSID,
		Title:             field("title"),
		Description:       field("description"),
		Price:             price,
		OriginalPrice:     originalPrice,
		ExternalURL:       field("external_url"),
		ExpiresAt:         expiresAt,
	}, nil
}
