package errors

import (
	stderrors "errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kuyka38/mijawharati-sub000/domain/catalog"
	"github.com/kuyka38/mijawharati-sub000/domain/inbox"
	"github.com/kuyka38/mijawharati-sub000/domain/shared"
)

func TestMapDomainError(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		wantCode  ErrorCode
		wantField string
	}{
		{"validation with field", catalog.NewInvalidPriceError(decimal.RequireFromString("-1")), CodeValidation, "price"},
		{"product not found", catalog.NewProductNotFoundError(7), CodeProductNotFound, ""},
		{"message not found", inbox.NewMessageNotFoundError(3), CodeMessageNotFound, ""},
		{"generic not found", shared.NewNotFoundError("user"), CodeNotFound, ""},
		{"storage", shared.NewStorageError("product", stderrors.New("disk full")), CodeStorage, ""},
		{"io", shared.NewIOError("asset", stderrors.New("permission denied")), CodeIO, ""},
		{"unknown", stderrors.New("mystery"), CodeInternal, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapDomainError(tc.err)
			if mapped.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, mapped.Code)
			}
			if mapped.Field != tc.wantField {
				t.Errorf("expected field %q, got %q", tc.wantField, mapped.Field)
			}
		})
	}
}

func TestMapDomainErrorNil(t *testing.T) {
	if mapped := MapDomainError(nil); mapped != nil {
		t.Fatalf("expected nil for nil error, got %v", mapped)
	}
}

func TestMapDomainErrorPassesThroughAppError(t *testing.T) {
	original := Validation("name", "name cannot be empty")
	mapped := MapDomainError(original)
	if mapped != original {
		t.Error("existing AppError must pass through unchanged")
	}
}

func TestIs(t *testing.T) {
	err := MapDomainError(catalog.NewInvalidNameError())
	if !Is(err, CodeValidation) {
		t.Error("expected Is to match CodeValidation")
	}
	if Is(err, CodeNotFound) {
		t.Error("expected Is not to match CodeNotFound")
	}
	if Is(stderrors.New("plain"), CodeInternal) {
		t.Error("plain errors carry no code")
	}
}
