package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/supplyline-io/supplyline-backend/internal/customers"
	"github.com/supplyline-io/supplyline-backend/internal/employees"
	"github.com/supplyline-io/supplyline-backend/internal/users"
	pkgauth "github.com/supplyline-io/supplyline-backend/pkg/auth"
	"github.com/supplyline-io/supplyline-backend/pkg/auth/session"
	"github.com/supplyline-io/supplyline-backend/pkg/config"
	"github.com/supplyline-io/supplyline-backend/pkg/db"
	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
	"github.com/supplyline-io/supplyline-backend/pkg/enums"
	pkgerrors "github.com/supplyline-io/supplyline-backend/pkg/errors"
)

var testJWTConfig = config.JWTConfig{
	Secret:            "test-secret",
	Issuer:            "supplyline",
	ExpirationMinutes: 30,
}

type stubSessionManager struct {
	refreshToken string
	rotated      []string
	revoked      []string
	rotateErr    error
}

func (s *stubSessionManager) Generate(ctx context.Context, accessID string) (string, error) {
	return s.refreshToken, nil
}

func (s *stubSessionManager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	if s.rotateErr != nil {
		return "", "", s.rotateErr
	}
	s.rotated = append(s.rotated, oldAccessID)
	return session.NewAccessID(), "rotated-" + s.refreshToken, nil
}

func (s *stubSessionManager) Revoke(ctx context.Context, accessID string) error {
	s.revoked = append(s.revoked, accessID)
	return nil
}

func setupAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	usersTable := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	customersTable := `
CREATE TABLE IF NOT EXISTS customers (
  customer_id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT,
  address TEXT,
  payment_terms TEXT
);`
	employeesTable := `
CREATE TABLE IF NOT EXISTS employees (
  employee_id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  job_title TEXT NOT NULL DEFAULT '',
  salary NUMERIC,
  join_date DATETIME
);`
	require.NoError(t, conn.Exec(usersTable).Error)
	require.NoError(t, conn.Exec(customersTable).Error)
	require.NoError(t, conn.Exec(employeesTable).Error)
	return conn
}

func newAuthService(t *testing.T, conn *gorm.DB) (Service, *stubSessionManager) {
	t.Helper()

	sessions := &stubSessionManager{refreshToken: "refresh-token"}
	svc, err := NewService(
		users.NewRepository(conn),
		customers.NewRepository(conn),
		employees.NewRepository(conn),
		db.NewWithConn(conn),
		sessions,
		testJWTConfig,
		config.PasswordConfig{},
	)
	require.NoError(t, err)
	return svc, sessions
}

func TestServiceRegisterCustomer_createsIdentityAndProfile(t *testing.T) {
	conn := setupAuthTestDB(t)
	svc, _ := newAuthService(t, conn)

	result, err := svc.RegisterCustomer(context.Background(), RegisterCustomerInput{
		Email:        "  Buyer@Example.COM ",
		Password:     "long-enough",
		CustomerName: "Acme Retail",
	})
	require.NoError(t, err)

	assert.Equal(t, "buyer@example.com", result.Identity.Email)
	assert.Equal(t, string(enums.UserRoleCustomer), result.Identity.Role)
	assert.Equal(t, "refresh-token", result.Tokens.RefreshToken)
	assert.Equal(t, 30*60, result.Tokens.ExpiresIn)

	claims, err := pkgauth.ParseAccessToken(testJWTConfig, result.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.Identity.UserID, claims.UserID)
	assert.Equal(t, enums.UserRoleCustomer, claims.Role)
	assert.NotEmpty(t, claims.ID)

	var profile models.Customer
	require.NoError(t, conn.First(&profile, "customer_id = ?", result.Identity.UserID).Error)
	assert.Equal(t, "Acme Retail", profile.CustomerName)
}

func TestServiceRegisterCustomer_duplicateEmailConflicts(t *testing.T) {
	conn := setupAuthTestDB(t)
	svc, _ := newAuthService(t, conn)

	input := RegisterCustomerInput{
		Email:        "dup@example.com",
		Password:     "long-enough",
		CustomerName: "First",
	}
	_, err := svc.RegisterCustomer(context.Background(), input)
	require.NoError(t, err)

	input.CustomerName = "Second"
	_, err = svc.RegisterCustomer(context.Background(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}

	// The failed attempt must not leave a second profile behind.
	var count int64
	require.NoError(t, conn.Model(&models.Customer{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestServiceRegisterCustomer_rejectsWeakInput(t *testing.T) {
	conn := setupAuthTestDB(t)
	svc, _ := newAuthService(t, conn)

	cases := []struct {
		name  string
		input RegisterCustomerInput
	}{
		{"bad email", RegisterCustomerInput{Email: "not-an-email", Password: "long-enough", CustomerName: "X"}},
		{"short password", RegisterCustomerInput{Email: "a@b.com", Password: "short", CustomerName: "X"}},
		{"missing name", RegisterCustomerInput{Email: "a@b.com", Password: "long-enough", CustomerName: "  "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterCustomer(context.Background(), tc.input)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestServiceRegisterEmployee_createsRosterProfile(t *testing.T) {
	conn := setupAuthTestDB(t)
	svc, _ := newAuthService(t, conn)

	result, err := svc.RegisterEmployee(context.Background(), RegisterEmployeeInput{
		Email:    "picker@example.com",
		Password: "long-enough",
		Name:     "Pat Picker",
		JobTitle: "Warehouse Worker",
	})
	require.NoError(t, err)
	assert.Equal(t, string(enums.UserRoleEmployee), result.Identity.Role)

	var profile models.Employee
	require.NoError(t, conn.First(&profile, "employee_id = ?", result.Identity.UserID).Error)
	assert.Equal(t, "Pat Picker", profile.Name)
	assert.Equal(t, "Warehouse Worker", profile.JobTitle)
}

func TestServiceLogin_verifiesCredentials(t *testing.T) {
	conn := setupAuthTestDB(t)
	svc, _ := newAuthService(t, conn)

	_, err := svc.RegisterCustomer(context.Background(), RegisterCustomerInput{
		Email:        "login@example.com",
		Password:     "long-enough",
		CustomerName: "Login Co",
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "login@example.com",
		Password: "long-enough",
	})
	require.NoError(t, err)
	assert.Equal(t, string(enums.UserRoleCustomer), result.Identity.Role)

	var user models.User
	require.NoError(t, conn.First(&user, "email = ?", "login@example.com").Error)
	assert.NotNil(t, user.LastLoginAt, "login should stamp last_login_at")

	_, err = svc.Login(context.Background(), LoginInput{
		Email:    "login@example.com",
		Password: "wrong-password",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for bad password, got %v", err)
	}

	_, err = svc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "long-enough",
	})
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for unknown email, got %v", err)
	}
}

func TestServiceLogin_rejectsDisabledAccount(t *testing.T) {
	conn := setupAuthTestDB(t)
	svc, _ := newAuthService(t, conn)

	result, err := svc.RegisterCustomer(context.Background(), RegisterCustomerInput{
		Email:        "disabled@example.com",
		Password:     "long-enough",
		CustomerName: "Disabled Co",
	})
	require.NoError(t, err)

	require.NoError(t, conn.Model(&models.User{}).
		Where("id = ?", result.Identity.UserID).
		Update("is_active", false).Error)

	_, err = svc.Login(context.Background(), LoginInput{
		Email:    "disabled@example.com",
		Password: "long-enough",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for disabled account, got %v", err)
	}
}

func TestServiceRefresh_rotatesSession(t *testing.T) {
	conn := setupAuthTestDB(t)
	svc, sessions := newAuthService(t, conn)

	result, err := svc.RegisterCustomer(context.Background(), RegisterCustomerInput{
		Email:        "refresh@example.com",
		Password:     "long-enough",
		CustomerName: "Refresh Co",
	})
	require.NoError(t, err)

	pair, err := svc.Refresh(context.Background(), result.Tokens.AccessToken, result.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "rotated-refresh-token", pair.RefreshToken)
	assert.NotEqual(t, result.Tokens.AccessToken, pair.AccessToken)
	require.Len(t, sessions.rotated, 1)

	claims, err := pkgauth.ParseAccessToken(testJWTConfig, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.Identity.UserID, claims.UserID)
}

func TestServiceRefresh_invalidRefreshToken(t *testing.T) {
	conn := setupAuthTestDB(t)
	svc, sessions := newAuthService(t, conn)
	sessions.rotateErr = session.ErrInvalidRefreshToken

	result, err := svc.RegisterCustomer(context.Background(), RegisterCustomerInput{
		Email:        "badrefresh@example.com",
		Password:     "long-enough",
		CustomerName: "Bad Refresh Co",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), result.Tokens.AccessToken, "forged")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for invalid refresh token, got %v", err)
	}
}

func TestServiceLogout_revokesSession(t *testing.T) {
	conn := setupAuthTestDB(t)
	svc, sessions := newAuthService(t, conn)

	require.NoError(t, svc.Logout(context.Background(), "access-id-1"))
	require.Len(t, sessions.revoked, 1)
	assert.Equal(t, "access-id-1", sessions.revoked[0])

	err := svc.Logout(context.Background(), " ")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for blank access id, got %v", err)
	}
}
