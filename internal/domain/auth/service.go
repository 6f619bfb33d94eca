package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	LoginWithEmployeeCode(ctx context.Context, req LoginEmployeeCodeRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context) (string, error)
	OAuthCallbackGoogle(ctx context.Context, state, code string) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}
