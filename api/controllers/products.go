package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/acmelabs/storefront-api/api/responses"
	"github.com/acmelabs/storefront-api/api/validators"
	productsvc "github.com/acmelabs/storefront-api/internal/products"
	pkgerrors "github.com/acmelabs/storefront-api/pkg/errors"
	"github.com/acmelabs/storefront-api/pkg/logger"
)

// ListProducts handles GET /api/products. The stock flag is accepted under
// both in_stock and inStock; camelCase wins when both are present.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := svc.List(r.Context(), productsvc.ListParams{
			Category:    validators.QueryString(r, "category"),
			InStockOnly: validators.QueryBoolFlag(r, "inStock", "in_stock"),
			Limit:       validators.QueryLimit(r),
		})
		responses.WriteList(w, products, len(products))
	}
}

// GetProduct handles GET /api/products/{productId}.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Invalid product ID"))
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, product)
	}
}
