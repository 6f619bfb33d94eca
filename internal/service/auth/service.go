package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workzen/hrms-backend-go/internal/domain/auth"
	"github.com/workzen/hrms-backend-go/internal/domain/employee"
	"github.com/workzen/hrms-backend-go/internal/pkg/database"
	"github.com/workzen/hrms-backend-go/internal/pkg/jwt"
	"github.com/workzen/hrms-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	jwt.Service
	google oauth.GoogleService

	mu            sync.Mutex
	pendingStates map[string]struct{}
}

func NewAuthService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		Service:            jwtService,
		google:             googleService,
		pendingStates:      make(map[string]struct{}),
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(emp, req.Password)
}

// LoginWithEmployeeCode implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithEmployeeCode(ctx context.Context, req auth.LoginEmployeeCodeRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(emp, req.Password)
}

func (a *AuthServiceImpl) issueTokens(emp employee.Employee, password string) (auth.TokenResponse, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !emp.Status.CanLogin() {
		return auth.TokenResponse{}, auth.ErrAccountDisabled
	}

	return a.tokensFor(emp)
}

func (a *AuthServiceImpl) tokensFor(emp employee.Employee) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := a.Service.GenerateAccessToken(emp.ID, emp.EmployeeCode, emp.Email, emp.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := a.Service.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	slog.Info("Employee logged in", "employee_id", emp.ID, "employee_code", emp.EmployeeCode)

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
		Employee:              employee.ToResponse(emp),
	}, nil
}

// LoginWithGoogle implements auth.AuthService. Returns the consent URL
// the client should redirect to.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context) (string, error) {
	if a.google == nil {
		return "", auth.ErrGoogleNotLinked
	}

	state := a.google.GenerateState("")
	if state == "" {
		return "", fmt.Errorf("failed to generate oauth state")
	}

	a.mu.Lock()
	a.pendingStates[state] = struct{}{}
	a.mu.Unlock()

	return a.google.RedirectURL(state), nil
}

// OAuthCallbackGoogle implements auth.AuthService.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, state, code string) (auth.TokenResponse, error) {
	if a.google == nil {
		return auth.TokenResponse{}, auth.ErrGoogleNotLinked
	}

	a.mu.Lock()
	_, known := a.pendingStates[state]
	delete(a.pendingStates, state)
	a.mu.Unlock()
	if !known {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	oauthToken, err := a.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	info, err := a.google.VerifyUser(ctx, oauthToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrGoogleNotLinked
		}
		return auth.TokenResponse{}, err
	}
	if !emp.Status.CanLogin() {
		return auth.TokenResponse{}, auth.ErrAccountDisabled
	}

	return a.tokensFor(emp)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	token, err := jwtauth.VerifyToken(a.Service.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	if a.Service.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrTokenRevoked
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if !emp.Status.CanLogin() {
		return auth.AccessTokenResponse{}, auth.ErrAccountDisabled
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(emp.ID, emp.EmployeeCode, emp.Email, emp.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// Logout implements auth.AuthService. Both tokens are revoked so neither
// can be replayed.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if accessToken != "" {
		a.Service.RevokeToken(accessToken)
	}
	if refreshToken != "" {
		a.Service.RevokeToken(refreshToken)
	}
	return nil
}

// ChangePassword implements auth.AuthService.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	emp.PasswordHash = string(hash)

	if err := a.EmployeeRepository.Update(ctx, emp); err != nil {
		return err
	}

	slog.Info("Password changed", "employee_id", emp.ID)

	return nil
}
