package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewDomainError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}
	body := appErr.ToHTTPError()
	if body.Error != "An internal error occurred" || body.Detail != "dynamodb timeout" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Issues != nil {
		t.Fatalf("expected no issues, got %+v", body.Issues)
	}
}

func TestNewValidationError(t *testing.T) {
	appErr := NewValidationError("Invalid request", map[string]string{"plannedDate": "required"})
	if appErr.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", appErr.HTTPStatus)
	}
	if appErr.ToHTTPError().Issues["plannedDate"] != "required" {
		t.Fatalf("expected issue for plannedDate")
	}
}

func TestWithDetailDoesNotMutate(t *testing.T) {
	base := NewDomainErrorSimple("ADDRESS_NOT_FOUND", "Address not found", http.StatusBadRequest)
	withDetail := base.WithDetail("Rua X")
	if base.Detail != "" {
		t.Fatalf("base error mutated: %+v", base)
	}
	if withDetail.Detail != "Rua X" {
		t.Fatalf("unexpected detail: %q", withDetail.Detail)
	}
}
