package usecases

import (
	"context"
	"fmt"

	"keydeals/internal/domain/deal"
	"keydeals/internal/shared/errors"
	"keydeals/internal/shared/logger"
)

type CreateDealTypeCommand struct {
	Name  string
	Color string
}

type CreateDealTypeUseCase struct {
	dealTypeRepo deal.TypeRepository
	logger       logger.Interface
}

func NewCreateDealTypeUseCase(dealTypeRepo deal.TypeRepository, logger logger.Interface) *CreateDealTypeUseCase {
	return &CreateDealTypeUseCase{
		dealTypeRepo: dealTypeRepo,
		logger:       logger,
	}
}

func (uc *CreateDealTypeUseCase) Execute(ctx context.Context, cmd CreateDealTypeCommand) (*deal.Type, error) {
	dealType, err := deal.NewType(cmd.Name, cmd.Color)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.dealTypeRepo.Create(ctx, dealType); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a deal type with this name already exists")
		}
		uc.logger.Errorw("failed to create deal type", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create deal type: %w", err)
	}

	uc.logger.Infow("deal type created", "sid", dealType.SID(), "name", dealType.Name())
	return dealType, nil
}

type ListDealTypesUseCase struct {
	dealTypeRepo deal.TypeRepository
	logger       logger.Interface
}

func NewListDealTypesUseCase(dealTypeRepo deal.TypeRepository, logger logger.Interface) *ListDealTypesUseCase {
	return &ListDealTypesUseCase{
		dealTypeRepo: dealTypeRepo,
		logger:       logger,
	}
}

func (uc *ListDealTypesUseCase) Execute(ctx context.Context) ([]*deal.Type, error) {
	types, err := uc.dealTypeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list deal types", "error", err)
		return nil, fmt.Errorf("failed to list deal types: %w", err)
	}
	return types, nil
}

type DeleteDealTypeCommand struct {
	DealTypeSID string
}

type DeleteDealTypeUseCase struct {
	dealTypeRepo deal.TypeRepository
	logger       logger.Interface
}

func NewDeleteDealTypeUseCase(dealTypeRepo deal.TypeRepository, logger logger.Interface) *DeleteDealTypeUseCase {
	return &DeleteDealTypeUseCase{
		dealTypeRepo: dealTypeRepo,
		logger:       logger,
	}
}

// Execute removes the type. Deals referencing it are detached, not deleted.
func (uc *DeleteDealTypeUseCase) Execute(ctx context.Context, cmd DeleteDealTypeCommand) error {
	dealType, err := uc.dealTypeRepo.GetBySID(ctx, cmd.DealTypeSID)
	if err != nil {
		uc.logger.Errorw("failed to get deal type", "error", err, "sid", cmd.DealTypeSID)
		return fmt.Errorf("failed to get deal type: %w", err)
	}
	if dealType == nil {
		return errors.NewNotFoundError("deal type not found")
	}

	if err := uc.dealTypeRepo.Delete(ctx, dealType.ID()); err != nil {
		uc.logger.Errorw("failed to delete deal type", "error", err, "sid", cmd.DealTypeSID)
		return fmt.Errorf("failed to delete deal type: %w", err)
	}

	uc.logger.Infow("deal type deleted", "sid", cmd.DealTypeSID)
	return nil
}
