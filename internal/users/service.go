package users

import (
	"context"

	"github.com/acmelabs/storefront-api/internal/store"
	pkgerrors "github.com/acmelabs/storefront-api/pkg/errors"
)

// Service exposes read and create operations over the users collection.
type Service interface {
	List(ctx context.Context, params ListParams) []store.User
	Get(ctx context.Context, id int) (*store.User, error)
	Create(ctx context.Context, input CreateInput) (*store.User, error)
}

// ListParams are optional filters; nil means "no filter".
type ListParams struct {
	Role  *string
	Limit *int
}

// CreateInput is the validated create payload. Field presence is enforced
// at the HTTP boundary before it reaches the service.
type CreateInput struct {
	Name  string
	Email string
	Role  string
}

type service struct {
	store *store.Store
}

func NewService(s *store.Store) Service {
	return &service{store: s}
}

func (s *service) List(_ context.Context, params ListParams) []store.User {
	users := s.store.Users()

	if params.Role != nil {
		filtered := make([]store.User, 0, len(users))
		for _, u := range users {
			if store.MatchFold(u.Role, *params.Role) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	return store.Truncate(users, params.Limit)
}

func (s *service) Get(_ context.Context, id int) (*store.User, error) {
	u, ok := s.store.FindUser(id)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "User not found")
	}
	return &u, nil
}

func (s *service) Create(_ context.Context, input CreateInput) (*store.User, error) {
	created := s.store.AppendUser(store.User{
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	})
	return &created, nil
}
