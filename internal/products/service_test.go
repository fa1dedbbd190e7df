package products

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/supplyline-io/supplyline-backend/pkg/errors"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	table := `
CREATE TABLE IF NOT EXISTS products (
  product_id TEXT PRIMARY KEY,
  product_name TEXT NOT NULL,
  description TEXT,
  category TEXT,
  unit_price NUMERIC NOT NULL
);`
	require.NoError(t, conn.Exec(table).Error)
	return conn
}

func newProductService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()

	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)
	return svc
}

func TestServiceCreateProduct_roundTrip(t *testing.T) {
	conn := setupProductsTestDB(t)
	svc := newProductService(t, conn)

	category := "packaging"
	created, err := svc.CreateProduct(context.Background(), CreateProductInput{
		ProductID:   " SKU-10 ",
		ProductName: " Bubble Wrap ",
		Category:    &category,
		UnitPrice:   decimal.RequireFromString("5.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "SKU-10", created.ProductID)
	assert.Equal(t, "Bubble Wrap", created.ProductName)
	assert.Equal(t, "5.50", created.UnitPrice)

	loaded, err := svc.GetProduct(context.Background(), "SKU-10")
	require.NoError(t, err)
	assert.Equal(t, created, loaded)
}

func TestServiceCreateProduct_duplicateConflicts(t *testing.T) {
	conn := setupProductsTestDB(t)
	svc := newProductService(t, conn)

	input := CreateProductInput{
		ProductID:   "SKU-11",
		ProductName: "Packing Peanuts",
		UnitPrice:   decimal.RequireFromString("1.25"),
	}
	_, err := svc.CreateProduct(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.CreateProduct(context.Background(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict for duplicate product id, got %v", err)
	}
}

func TestServiceCreateProduct_rejectsBadInput(t *testing.T) {
	conn := setupProductsTestDB(t)
	svc := newProductService(t, conn)

	cases := []struct {
		name  string
		input CreateProductInput
	}{
		{"missing id", CreateProductInput{ProductName: "X", UnitPrice: decimal.NewFromInt(1)}},
		{"missing name", CreateProductInput{ProductID: "SKU-X", UnitPrice: decimal.NewFromInt(1)}},
		{"negative price", CreateProductInput{ProductID: "SKU-X", ProductName: "X", UnitPrice: decimal.NewFromInt(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tc.input)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestServiceUpdateProduct_partialMutation(t *testing.T) {
	conn := setupProductsTestDB(t)
	svc := newProductService(t, conn)

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		ProductID:   "SKU-12",
		ProductName: "Label Roll",
		UnitPrice:   decimal.RequireFromString("3.00"),
	})
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("3.75")
	updated, err := svc.UpdateProduct(context.Background(), "SKU-12", UpdateProductInput{
		UnitPrice: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "3.75", updated.UnitPrice)
	assert.Equal(t, "Label Roll", updated.ProductName, "untouched fields must survive")

	empty := " "
	_, err = svc.UpdateProduct(context.Background(), "SKU-12", UpdateProductInput{ProductName: &empty})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
}

func TestServiceDeleteProduct(t *testing.T) {
	conn := setupProductsTestDB(t)
	svc := newProductService(t, conn)

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		ProductID:   "SKU-13",
		ProductName: "Void Fill",
		UnitPrice:   decimal.RequireFromString("2.10"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), "SKU-13"))

	err = svc.DeleteProduct(context.Background(), "SKU-13")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	rows, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
