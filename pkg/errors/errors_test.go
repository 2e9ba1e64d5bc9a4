package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := Wrap(CodeDependency, cause, "lookup profile")

	if !stdErrors.Is(err, cause) {
		t.Fatalf("expected wrapped error to match cause")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestAsFindsTypedErrorInChain(t *testing.T) {
	inner := New(CodeHandleTaken, "handle exists")
	wrapped := fmt.Errorf("signup: %w", inner)

	typed := As(wrapped)
	if typed == nil {
		t.Fatalf("expected typed error in chain")
	}
	if typed.Code() != CodeHandleTaken {
		t.Fatalf("unexpected code %s", typed.Code())
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", meta.HTTPStatus)
	}
	if meta.FieldKey != "general" {
		t.Fatalf("unexpected field key %q", meta.FieldKey)
	}
}

func TestConflictCodesAreBadRequests(t *testing.T) {
	for _, code := range []Code{CodeHandleTaken, CodeEmailTaken} {
		if got := MetadataFor(code).HTTPStatus; got != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", code, got)
		}
	}
}

func TestDumpCollectsChain(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeInternal, cause, "outer")

	dump := Dump(err)
	if dump.Code != CodeInternal {
		t.Fatalf("unexpected code %s", dump.Code)
	}
	if len(dump.Chain) < 2 {
		t.Fatalf("expected chain with cause, got %v", dump.Chain)
	}
}
