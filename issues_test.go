package genoskema_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	genoskema "github.com/reoring/genoskema"
)

func TestIssues_ErrorSummary(t *testing.T) {
	var iss genoskema.Issues
	if iss.Error() != "" {
		t.Fatalf("empty issues should render empty")
	}
	iss = genoskema.AppendIssues(iss,
		genoskema.Issue{Field: "start", Code: genoskema.CodeInvalidValue},
		genoskema.Issue{Field: "strand", Code: genoskema.CodeInvalidValue},
	)
	got := iss.Error()
	if !strings.Contains(got, "invalid_value at start") || !strings.Contains(got, "invalid_value at strand") {
		t.Fatalf("unexpected summary %q", got)
	}

	for i := 0; i < 5; i++ {
		iss = genoskema.AppendIssues(iss, genoskema.Issue{Field: "end", Code: genoskema.CodeOutOfRange})
	}
	if got := iss.Error(); !strings.Contains(got, "total 7") {
		t.Fatalf("expected truncated summary with total, got %q", got)
	}
}

func TestAsIssues(t *testing.T) {
	iss := genoskema.Issues{{Field: "phase", Code: genoskema.CodeInvalidValue}}
	wrapped := fmt.Errorf("record 12: %w", iss)
	got, ok := genoskema.AsIssues(wrapped)
	if !ok || len(got) != 1 || got[0].Field != "phase" {
		t.Fatalf("AsIssues through wrap = %v, %v", got, ok)
	}
	if _, ok := genoskema.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error should not extract")
	}
	if _, ok := genoskema.AsIssues(nil); ok {
		t.Fatalf("nil error should not extract")
	}
}

func TestConfigError_Message(t *testing.T) {
	err := &genoskema.ConfigError{Format: "gtf", Reason: "empty field table"}
	if got := err.Error(); got != "genoskema: gtf: empty field table" {
		t.Fatalf("unexpected message %q", got)
	}
	err = &genoskema.ConfigError{Reason: "empty field table"}
	if got := err.Error(); got != "genoskema: empty field table" {
		t.Fatalf("unexpected message %q", got)
	}
}
