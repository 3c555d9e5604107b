package remote

import (
	"context"
	"net/http"

	"reactivities/internal/models/domain_models"
	"reactivities/internal/models/request_models"
)

type UserAPIInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*domain_models.User, error)
	Register(ctx context.Context, request request_models.SignUpRequest) (*domain_models.User, error)
	Current(ctx context.Context) (*domain_models.User, error)
}

type UserAPI struct {
	client *Client
}

func NewUserAPI(client *Client) UserAPIInterface {
	return &UserAPI{client: client}
}

func (u *UserAPI) Login(ctx context.Context, request request_models.LoginRequest) (*domain_models.User, error) {
	var user domain_models.User
	if err := u.client.do(ctx, http.MethodPost, "/accounts/login", request, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserAPI) Register(ctx context.Context, request request_models.SignUpRequest) (*domain_models.User, error) {
	var user domain_models.User
	if err := u.client.do(ctx, http.MethodPost, "/accounts/register", request, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserAPI) Current(ctx context.Context) (*domain_models.User, error) {
	var user domain_models.User
	if err := u.client.do(ctx, http.MethodGet, "/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
