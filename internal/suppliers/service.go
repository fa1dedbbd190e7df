package suppliers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/supplyline-io/supplyline-backend/pkg/db/models"
	pkgerrors "github.com/supplyline-io/supplyline-backend/pkg/errors"
)

// Service exposes the manager's supplier roster operations.
type Service interface {
	CreateSupplier(ctx context.Context, input CreateSupplierInput) (*SupplierDTO, error)
	GetSupplier(ctx context.Context, id int) (*SupplierDTO, error)
	ListSuppliers(ctx context.Context) ([]SupplierDTO, error)
	UpdateSupplier(ctx context.Context, id int, input UpdateSupplierInput) (*SupplierDTO, error)
	DeleteSupplier(ctx context.Context, id int) error
}

// service implements the supplier service.
type service struct {
	repo *Repository
}

// NewService constructs a supplier service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("supplier repository required")
	}
	return &service{repo: repo}, nil
}

// CreateSupplier inserts a supplier after validating the name.
func (s *service) CreateSupplier(ctx context.Context, input CreateSupplierInput) (*SupplierDTO, error) {
	if strings.TrimSpace(input.SupplierName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier_name is required")
	}

	supplier := &models.Supplier{
		SupplierName: strings.TrimSpace(input.SupplierName),
		Phone:        input.Phone,
		Email:        input.Email,
		Address:      input.Address,
		PaymentTerm:  input.PaymentTerm,
	}
	created, err := s.repo.CreateSupplier(ctx, supplier)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert supplier")
	}
	return NewSupplierDTO(created), nil
}

// GetSupplier loads a single supplier.
func (s *service) GetSupplier(ctx context.Context, id int) (*SupplierDTO, error) {
	supplier, err := s.loadSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewSupplierDTO(supplier), nil
}

// ListSuppliers returns every supplier.
func (s *service) ListSuppliers(ctx context.Context) ([]SupplierDTO, error) {
	rows, err := s.repo.ListSuppliers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list suppliers")
	}
	return NewSupplierDTOs(rows), nil
}

// UpdateSupplier applies the provided partial mutation.
func (s *service) UpdateSupplier(ctx context.Context, id int, input UpdateSupplierInput) (*SupplierDTO, error) {
	supplier, err := s.loadSupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.SupplierName != nil {
		name := strings.TrimSpace(*input.SupplierName)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier_name cannot be empty")
		}
		supplier.SupplierName = name
	}
	if input.Phone != nil {
		supplier.Phone = input.Phone
	}
	if input.Email != nil {
		supplier.Email = input.Email
	}
	if input.Address != nil {
		supplier.Address = input.Address
	}
	if input.PaymentTerm != nil {
		supplier.PaymentTerm = input.PaymentTerm
	}

	updated, err := s.repo.UpdateSupplier(ctx, supplier)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update supplier")
	}
	return NewSupplierDTO(updated), nil
}

// DeleteSupplier removes a supplier.
func (s *service) DeleteSupplier(ctx context.Context, id int) error {
	if _, err := s.loadSupplier(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteSupplier(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete supplier")
	}
	return nil
}

func (s *service) loadSupplier(ctx context.Context, id int) (*models.Supplier, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier_id must be positive")
	}
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load supplier")
	}
	return supplier, nil
}
