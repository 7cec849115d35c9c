package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarityrx/clarity-server/internal/domain"
)

func TestListProducts(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/products")
	require.Equal(t, http.StatusOK, resp.Code)

	var body ProductsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	require.Len(t, body.Products, 5)
	assert.Equal(t, domain.SKUDeepRestMicro, body.Products[0].SKU)
	assert.Equal(t, domain.SKUGentleRelief, body.Products[4].SKU)
}

func TestGetProduct(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/products/" + domain.SKUCalmClarity)
	require.Equal(t, http.StatusOK, resp.Code)

	var product domain.Product
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &product))
	assert.Equal(t, "Calm Clarity", product.Name)
	assert.Equal(t, 2.5, product.THCMgPerCapsule)
}

func TestGetProduct_Unknown(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/products/CRX-NOPE")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "NOT_FOUND")
}
