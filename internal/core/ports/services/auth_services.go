package services

import (
	"context"

	"github.com/SscSPs/offering_tracker/internal/dto"
)

// AuthSvcFacade authenticates the administrator and issues access tokens.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
