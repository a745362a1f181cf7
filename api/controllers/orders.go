package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/acmelabs/storefront-api/api/responses"
	"github.com/acmelabs/storefront-api/api/validators"
	ordersvc "github.com/acmelabs/storefront-api/internal/orders"
	pkgerrors "github.com/acmelabs/storefront-api/pkg/errors"
	"github.com/acmelabs/storefront-api/pkg/logger"
)

// ListOrders handles GET /api/orders. Results are enriched with their
// referenced user and products. The user filter is accepted under both
// user_id and userId.
func ListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders := svc.List(r.Context(), ordersvc.ListParams{
			UserID: validators.QueryInt(r, "userId", "user_id"),
			Status: validators.QueryString(r, "status"),
			Limit:  validators.QueryLimit(r),
		})
		responses.WriteList(w, orders, len(orders))
	}
}

// GetOrder handles GET /api/orders/{orderId}; the result is enriched.
func GetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Invalid order ID"))
			return
		}

		order, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, order)
	}
}
