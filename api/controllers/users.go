package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/acmelabs/storefront-api/api/responses"
	"github.com/acmelabs/storefront-api/api/validators"
	usersvc "github.com/acmelabs/storefront-api/internal/users"
	pkgerrors "github.com/acmelabs/storefront-api/pkg/errors"
	"github.com/acmelabs/storefront-api/pkg/logger"
)

// ListUsers handles GET /api/users with optional role and limit filters.
func ListUsers(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users := svc.List(r.Context(), usersvc.ListParams{
			Role:  validators.QueryString(r, "role"),
			Limit: validators.QueryLimit(r),
		})
		responses.WriteList(w, users, len(users))
	}
}

// GetUser handles GET /api/users/{userId}.
func GetUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "userId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Invalid user ID"))
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, user)
	}
}

type createUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Role  string `json:"role" validate:"required"`
}

// CreateUser handles POST /api/users. The body must carry name, email and
// role; a missing field 400s naming the field.
func CreateUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Create(r.Context(), usersvc.CreateInput{
			Name:  payload.Name,
			Email: payload.Email,
			Role:  payload.Role,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, "User created successfully", user)
	}
}
