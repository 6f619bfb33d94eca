package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workzen/hrms-backend-go/internal/domain/auth"
	"github.com/workzen/hrms-backend-go/internal/domain/employee"
	"github.com/workzen/hrms-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testPassword   = "password123"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range emps {
		repo.employees[emp.ID] = emp
	}
	return repo
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeCode == code {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeEmployeeRepo) ListByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	return nil, nil
}

func testEmployee(t *testing.T) employee.Employee {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	return employee.Employee{
		ID:           "emp-1",
		EmployeeCode: "EMP-0001",
		FirstName:    "Asha",
		LastName:     "Verma",
		Email:        "asha@example.com",
		PasswordHash: string(hash),
		Role:         employee.RoleSeniorDeveloper,
		Status:       employee.StatusActive,
	}
}

func newTestService(t *testing.T, repo *fakeEmployeeRepo) auth.AuthService {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(nil, repo, jwtService, nil)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newFakeEmployeeRepo(testEmployee(t)))

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	assert.Greater(t, resp.RefreshTokenExpiresIn, int64(0))
	assert.Equal(t, "EMP-0001", resp.Employee.EmployeeCode)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newFakeEmployeeRepo(testEmployee(t)))

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newFakeEmployeeRepo())

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: testPassword})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_TerminatedAccount(t *testing.T) {
	ctx := context.Background()
	emp := testEmployee(t)
	emp.Status = employee.StatusTerminated
	svc := newTestService(t, newFakeEmployeeRepo(emp))

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: testPassword})
	assert.ErrorIs(t, err, auth.ErrAccountDisabled)
}

func TestLoginWithEmployeeCode_Success(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newFakeEmployeeRepo(testEmployee(t)))

	resp, err := svc.LoginWithEmployeeCode(ctx, auth.LoginEmployeeCodeRequest{
		EmployeeCode: "EMP-0001",
		Password:     testPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLoginWithEmployeeCode_MalformedCode(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newFakeEmployeeRepo(testEmployee(t)))

	_, err := svc.LoginWithEmployeeCode(ctx, auth.LoginEmployeeCodeRequest{
		EmployeeCode: "emp_1",
		Password:     testPassword,
	})
	assert.Error(t, err)
}

func TestRefreshToken_IssuesNewAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newFakeEmployeeRepo(testEmployee(t)))

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: testPassword})
	require.NoError(t, err)

	resp, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newFakeEmployeeRepo(testEmployee(t)))

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: testPassword})
	require.NoError(t, err)

	// An access token carries type "access" and must not refresh.
	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshToken_GarbageRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newFakeEmployeeRepo(testEmployee(t)))

	_, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newFakeEmployeeRepo(testEmployee(t)))

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.AccessToken, login.RefreshToken))

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestChangePassword_Success(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo(testEmployee(t))
	svc := newTestService(t, repo)

	err := svc.ChangePassword(ctx, auth.ChangePasswordRequest{
		EmployeeID:      "emp-1",
		CurrentPassword: testPassword,
		NewPassword:     "brand-new-pass",
		ConfirmPassword: "brand-new-pass",
	})
	require.NoError(t, err)

	// The old password no longer works, the new one does.
	_, err = svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: testPassword})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: "brand-new-pass"})
	assert.NoError(t, err)
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newFakeEmployeeRepo(testEmployee(t)))

	err := svc.ChangePassword(ctx, auth.ChangePasswordRequest{
		EmployeeID:      "emp-1",
		CurrentPassword: "wrong-pass",
		NewPassword:     "brand-new-pass",
		ConfirmPassword: "brand-new-pass",
	})
	assert.ErrorIs(t, err, auth.ErrPasswordMismatch)
}

func TestChangePassword_ConfirmMismatch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newFakeEmployeeRepo(testEmployee(t)))

	err := svc.ChangePassword(ctx, auth.ChangePasswordRequest{
		EmployeeID:      "emp-1",
		CurrentPassword: testPassword,
		NewPassword:     "brand-new-pass",
		ConfirmPassword: "different-pass",
	})
	assert.Error(t, err)
}

func TestLoginWithGoogle_NotConfigured(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newFakeEmployeeRepo(testEmployee(t)))

	_, err := svc.LoginWithGoogle(ctx)
	assert.ErrorIs(t, err, auth.ErrGoogleNotLinked)
}

func TestOAuthCallbackGoogle_NotConfigured(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newFakeEmployeeRepo(testEmployee(t)))

	_, err := svc.OAuthCallbackGoogle(ctx, "state", "code")
	assert.ErrorIs(t, err, auth.ErrGoogleNotLinked)
}
