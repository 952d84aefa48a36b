package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	err := NewDomainError("TMS-TEST-0001", "something failed")
	if got := err.Error(); got != "[TMS-TEST-0001] something failed" {
		t.Fatalf("Error() = %q", got)
	}

	withDetails := err.WithDetails("more context")
	if got := withDetails.Error(); got != "[TMS-TEST-0001] something failed: more context" {
		t.Fatalf("Error() with details = %q", got)
	}
}

func TestDomainError_Is(t *testing.T) {
	if !errors.Is(ErrTaskNotFound.WithDetails("id 42"), ErrTaskNotFound) {
		t.Fatal("errors.Is should match on code")
	}
	if errors.Is(ErrTaskNotFound, ErrUserNotFound) {
		t.Fatal("errors.Is should not match different codes")
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := ErrInternal.WithCause(cause)
	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause should be reachable via errors.Is")
	}
}

func TestIsDomainError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrDuplicateEmail)

	if !IsDomainError(wrapped, "") {
		t.Fatal("IsDomainError with empty code = false, want true")
	}
	if !IsDomainError(wrapped, "TMS-USER-4090") {
		t.Fatal("IsDomainError with matching code = false, want true")
	}
	if IsDomainError(wrapped, "TMS-TASK-4040") {
		t.Fatal("IsDomainError with other code = true, want false")
	}
	if IsDomainError(errors.New("plain"), "") {
		t.Fatal("IsDomainError on plain error = true, want false")
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(ErrTokenExpired); code != "TMS-TOKN-4031" {
		t.Fatalf("GetErrorCode = %q, want TMS-TOKN-4031", code)
	}
	if code := GetErrorCode(errors.New("plain")); code != "" {
		t.Fatalf("GetErrorCode on plain error = %q, want empty", code)
	}
}

func TestTokenErrors_ShareClientMessage(t *testing.T) {
	// Parse failures and expiry are distinct internally but must be
	// indistinguishable in the message shown to clients.
	if ErrTokenMalformed.Message != ErrTokenExpired.Message {
		t.Fatalf("messages differ: %q vs %q", ErrTokenMalformed.Message, ErrTokenExpired.Message)
	}
	if ErrTokenMalformed.Code == ErrTokenExpired.Code {
		t.Fatal("codes should stay distinct")
	}
}
