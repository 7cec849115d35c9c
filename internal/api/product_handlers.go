package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clarityrx/clarity-server/internal/domain"
	domainerrors "github.com/clarityrx/clarity-server/internal/errors"
)

func (s *Server) registerProductRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listProducts",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List products",
		Description: "Returns the full product catalog in display order",
		Tags:        []string{"Products"},
	}, s.handleListProducts)

	huma.Register(s.api, huma.Operation{
		OperationID: "getProduct",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{sku}",
		Summary:     "Get product",
		Description: "Returns a single product by SKU",
		Tags:        []string{"Products"},
	}, s.handleGetProduct)
}

// ProductsResponse contains the product catalog.
type ProductsResponse struct {
	Products []domain.Product `json:"products" doc:"Products in display order"`
}

// ProductsOutput wraps the catalog response for Huma.
type ProductsOutput struct {
	Body ProductsResponse
}

// GetProductInput contains parameters for getting a product.
type GetProductInput struct {
	SKU string `path:"sku" doc:"Product SKU"`
}

// ProductOutput wraps a single product for Huma.
type ProductOutput struct {
	Body domain.Product
}

func (s *Server) handleListProducts(_ context.Context, _ *struct{}) (*ProductsOutput, error) {
	return &ProductsOutput{Body: ProductsResponse{Products: s.catalog.Catalog()}}, nil
}

func (s *Server) handleGetProduct(_ context.Context, input *GetProductInput) (*ProductOutput, error) {
	product, ok := s.catalog.BySKU(input.SKU)
	if !ok {
		return nil, domainerrors.NotFound(fmt.Sprintf("product %q not found", input.SKU))
	}
	return &ProductOutput{Body: product}, nil
}
