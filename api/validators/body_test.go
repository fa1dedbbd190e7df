package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/supplyline-io/supplyline-backend/pkg/errors"
)

type samplePayload struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

func decode(t *testing.T, body string) (samplePayload, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var payload samplePayload
	err := DecodeJSONBody(req, &payload)
	return payload, err
}

func TestDecodeJSONBody_valid(t *testing.T) {
	payload, err := decode(t, `{"name":"crate","quantity":3}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Name != "crate" || payload.Quantity != 3 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestDecodeJSONBody_rejectsUnknownFields(t *testing.T) {
	_, err := decode(t, `{"name":"crate","bogus":true}`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown field, got %v", err)
	}
}

func TestDecodeJSONBody_rejectsMalformedJSON(t *testing.T) {
	_, err := decode(t, `{"name":`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for malformed body, got %v", err)
	}
}

func TestDecodeJSONBody_fieldErrorsUseJSONNames(t *testing.T) {
	_, err := decode(t, `{"quantity":-1,"email":"nope"}`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if _, ok := details["name"]; !ok {
		t.Fatalf("expected error keyed by json name, got %v", details)
	}
	if _, ok := details["quantity"]; !ok {
		t.Fatalf("expected quantity error, got %v", details)
	}
	if _, ok := details["email"]; !ok {
		t.Fatalf("expected email error, got %v", details)
	}
}
