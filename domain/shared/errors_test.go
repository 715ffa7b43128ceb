package shared

import (
	"errors"
	"io/fs"
	"testing"
)

func TestErrorConstructorsMatchSentinels(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NewNotFoundError("product"), ErrNotFound},
		{"validation", NewValidationError("product", "name", "name cannot be empty"), ErrInvalidInput},
		{"storage", NewStorageError("product", errors.New("disk full")), ErrStorage},
		{"io", NewIOError("asset", fs.ErrPermission), ErrIO},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.sentinel) {
				t.Errorf("expected errors.Is to match sentinel %v", tc.sentinel)
			}

			var domainErr *DomainError
			if !errors.As(tc.err, &domainErr) {
				t.Fatal("expected errors.As to extract *DomainError")
			}
			if domainErr.Entity == "" {
				t.Error("expected entity to be set")
			}
		})
	}
}

// 包装错误时底层原因必须保留在错误链中，调用方才能对驱动错误做精确判断
func TestWrappedCauseStaysInChain(t *testing.T) {
	cause := errors.New("database is locked")

	err := NewStorageError("product", cause)
	if !errors.Is(err, cause) {
		t.Error("expected storage error chain to reach the original cause")
	}
	if !errors.Is(err, ErrStorage) {
		t.Error("expected storage error chain to reach ErrStorage")
	}

	ioErr := NewIOError("asset", fs.ErrNotExist)
	if !errors.Is(ioErr, fs.ErrNotExist) {
		t.Error("expected io error chain to reach the original cause")
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	err := NewValidationError("product", "price", "price must be non-negative")

	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatal("expected *DomainError")
	}
	if domainErr.Field != "price" {
		t.Errorf("expected field %q, got %q", "price", domainErr.Field)
	}
	if len(domainErr.Stack()) == 0 {
		t.Error("expected a captured stack")
	}
}
