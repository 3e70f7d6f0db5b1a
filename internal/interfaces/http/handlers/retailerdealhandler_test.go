package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keydeals/internal/domain/deal"
)

func bindJSON(t *testing.T, body string, out any) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c.ShouldBindJSON(out)
}

// The binding layer stays permissive on price and external_url so the domain
// validator owns both rules: free deals (price 0) are legal, and scheme-less
// links are normalized with https:// instead of being rejected at the edge.

func TestCreateDealRequest_AcceptsFreeDeal(t *testing.T) {
	var req CreateDealRequest
	err := bindJSON(t, `{
		"title": "Free keyring with any order",
		"price": 0,
		"external_url": "https://example.com/promo",
		"expires_at": "2030-01-02T00:00:00Z"
	}`, &req)

	require.NoError(t, err)
	assert.Equal(t, float64(0), req.Price)
}

func TestCreateDealRequest_RejectsNegativePrice(t *testing.T) {
	var req CreateDealRequest
	err := bindJSON(t, `{
		"title": "Broken listing",
		"price": -1,
		"external_url": "https://example.com/promo",
		"expires_at": "2030-01-02T00:00:00Z"
	}`, &req)

	require.Error(t, err)
}

func TestCreateDealRequest_BareDomainReachesNormalization(t *testing.T) {
	var req CreateDealRequest
	err := bindJSON(t, `{
		"title": "Schlage cylinder clearance",
		"price": 12.50,
		"external_url": "locksupply.example.com/cylinders",
		"expires_at": "2030-01-02T00:00:00Z"
	}`, &req)

	require.NoError(t, err, "scheme-less links must pass binding")

	d, dErr := deal.NewDeal(deal.NewDealParams{
		RetailerProfileID: 1,
		Title:             req.Title,
		Price:             req.Price,
		ExternalURL:       req.ExternalURL,
		ExpiresAt:         req.ExpiresAt,
	})
	require.NoError(t, dErr)
	assert.Equal(t, "https://locksupply.example.com/cylinders", d.ExternalURL())
}

func TestCreateDealRequest_MissingTitleRejected(t *testing.T) {
	var req CreateDealRequest
	err := bindJSON(t, `{
		"price": 5,
		"external_url": "https://example.com/promo",
		"expires_at": "2030-01-02T00:00:00Z"
	}`, &req)

	require.Error(t, err)
}

func TestCreateDealRequest_MissingExternalURLRejected(t *testing.T) {
	var req CreateDealRequest
	err := bindJSON(t, `{
		"title": "No link",
		"price": 5,
		"expires_at": "2030-01-02T00:00:00Z"
	}`, &req)

	require.Error(t, err)
}

func TestUpdateDealRequest_AcceptsFreeDealWithBareDomain(t *testing.T) {
	var req UpdateDealRequest
	err := bindJSON(t, `{
		"title": "Now free",
		"price": 0,
		"external_url": "deals.example.com/free",
		"expires_at": "2030-01-02T00:00:00Z"
	}`, &req)

	require.NoError(t, err)
	assert.Equal(t, float64(0), req.Price)
	assert.Equal(t, "deals.example.com/free", req.ExternalURL)
}
