package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
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
	"github.com/supplyline-io/supplyline-backend/pkg/security"
)

// Service exposes registration, login, and session lifecycle operations.
type Service interface {
	RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*AuthResultDTO, error)
	RegisterEmployee(ctx context.Context, input RegisterEmployeeInput) (*AuthResultDTO, error)
	Login(ctx context.Context, input LoginInput) (*AuthResultDTO, error)
	Refresh(ctx context.Context, accessToken, refreshToken string) (*TokenPairDTO, error)
	Logout(ctx context.Context, accessID string) error
	Identity(ctx context.Context, userID uuid.UUID) (*IdentityDTO, error)
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

// service implements the auth service.
type service struct {
	userRepo     *users.Repository
	customerRepo *customers.Repository
	employeeRepo *employees.Repository
	dbClient     *db.Client
	sessions     sessionManager
	jwtCfg       config.JWTConfig
	passwordCfg  config.PasswordConfig
	now          func() time.Time
}

// NewService constructs an auth service instance.
func NewService(
	userRepo *users.Repository,
	customerRepo *customers.Repository,
	employeeRepo *employees.Repository,
	dbClient *db.Client,
	sessions sessionManager,
	jwtCfg config.JWTConfig,
	passwordCfg config.PasswordConfig,
) (Service, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	if customerRepo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	if employeeRepo == nil {
		return nil, fmt.Errorf("employee repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	return &service{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		dbClient:     dbClient,
		sessions:     sessions,
		jwtCfg:       jwtCfg,
		passwordCfg:  passwordCfg,
		now:          time.Now,
	}, nil
}

// RegisterCustomer creates the identity and the customer profile in one
// transaction, then opens a session.
func (s *service) RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*AuthResultDTO, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer_name is required")
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var user *models.User
	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		created, err := s.userRepo.WithTx(tx).CreateUser(ctx, &models.User{
			Email:        email,
			PasswordHash: hash,
			Role:         enums.UserRoleCustomer,
			IsActive:     true,
		})
		if err != nil {
			return classifyCreateUserErr(err)
		}
		user = created

		_, err = s.customerRepo.WithTx(tx).CreateCustomer(ctx, &models.Customer{
			CustomerID:   created.ID,
			CustomerName: strings.TrimSpace(input.CustomerName),
			Email:        email,
			Phone:        input.Phone,
			Address:      input.Address,
			PaymentTerms: input.PaymentTerms,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert customer profile")
		}
		return nil
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "register customer")
	}

	return s.openSession(ctx, user)
}

// RegisterEmployee creates the identity and the employee profile in one
// transaction, then opens a session.
func (s *service) RegisterEmployee(ctx context.Context, input RegisterEmployeeInput) (*AuthResultDTO, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Salary != nil && input.Salary.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "salary cannot be negative")
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var user *models.User
	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		created, err := s.userRepo.WithTx(tx).CreateUser(ctx, &models.User{
			Email:        email,
			PasswordHash: hash,
			Role:         enums.UserRoleEmployee,
			IsActive:     true,
		})
		if err != nil {
			return classifyCreateUserErr(err)
		}
		user = created

		_, err = s.employeeRepo.WithTx(tx).CreateEmployee(ctx, &models.Employee{
			EmployeeID: created.ID,
			Name:       strings.TrimSpace(input.Name),
			Email:      email,
			Phone:      strings.TrimSpace(input.Phone),
			JobTitle:   strings.TrimSpace(input.JobTitle),
			Salary:     input.Salary,
			JoinDate:   input.JoinDate,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert employee profile")
		}
		return nil
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "register employee")
	}

	return s.openSession(ctx, user)
}

// Login verifies credentials and opens a new session.
func (s *service) Login(ctx context.Context, input LoginInput) (*AuthResultDTO, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load user")
	}
	if !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account disabled")
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID, s.now().UTC()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: stamp last login")
	}

	return s.openSession(ctx, user)
}

// Refresh rotates the session tied to the presented access token. The access
// token may be expired; only its signature and jti are used.
func (s *service) Refresh(ctx context.Context, accessToken, refreshToken string) (*TokenPairDTO, error) {
	claims, err := pkgauth.ParseAccessTokenAllowExpired(s.jwtCfg, accessToken)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid access token")
	}

	newAccessID, newRefresh, err := s.sessions.Rotate(ctx, claims.ID, refreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rotate session")
	}

	signed, err := pkgauth.MintAccessToken(s.jwtCfg, s.now().UTC(), pkgauth.AccessTokenPayload{
		UserID: claims.UserID,
		Role:   claims.Role,
		JTI:    newAccessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &TokenPairDTO{
		AccessToken:  signed,
		RefreshToken: newRefresh,
		ExpiresIn:    s.jwtCfg.ExpirationMinutes * 60,
	}, nil
}

// Logout revokes the session for the presented access ID.
func (s *service) Logout(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session")
	}
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

// Identity loads the principal for the /me endpoint.
func (s *service) Identity(ctx context.Context, userID uuid.UUID) (*IdentityDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing identity")
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load user")
	}
	return &IdentityDTO{UserID: user.ID, Email: user.Email, Role: user.Role.String()}, nil
}

func (s *service) openSession(ctx context.Context, user *models.User) (*AuthResultDTO, error) {
	accessID := session.NewAccessID()
	refresh, err := s.sessions.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create session")
	}

	signed, err := pkgauth.MintAccessToken(s.jwtCfg, s.now().UTC(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &AuthResultDTO{
		Identity: IdentityDTO{UserID: user.ID, Email: user.Email, Role: user.Role.String()},
		Tokens: TokenPairDTO{
			AccessToken:  signed,
			RefreshToken: refresh,
			ExpiresIn:    s.jwtCfg.ExpirationMinutes * 60,
		},
	}, nil
}

func classifyCreateUserErr(err error) error {
	if db.IsUniqueViolation(err) {
		return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert user")
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "valid email is required")
	}
	return email, nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return pkgerrors.New(pkgerrors.CodeValidation, "password must be at least 8 characters")
	}
	return nil
}
