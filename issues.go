package genoskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidValue = "invalid_value"
	CodeUnknownKind  = "unknown_kind"
	CodeMissingMatch = "missing_match"
	CodeOutOfRange   = "out_of_range"
)

// Issue represents a single validation entry for one field value.
type Issue struct {
	Field   string // Field name from the descriptor's field order.
	Code    string // One of the codes listed above.
	Message string
	Value   string // The offending raw value, best-effort.
	// Kind optionally records the validator kind that produced this issue.
	Kind Kind
}

// Issues is a collection of validation failures that implements error.
// Per-value outcomes are always returned as data so a caller can validate a
// full record and collect every failure before deciding how to react.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_value at strand
		fmt.Fprintf(b, "%s at %s", it.Code, it.Field)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ConfigError reports a malformed format definition at setup time. It is the
// fatal half of the error model: a descriptor must never silently operate with
// an empty field table, so Set* methods and loaders fail hard with this type.
type ConfigError struct {
	Format string // Format name, may be empty during construction.
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Format == "" {
		return "genoskema: " + e.Reason
	}
	return "genoskema: " + e.Format + ": " + e.Reason
}

func configErrf(format, reason string, args ...any) *ConfigError {
	return &ConfigError{Format: format, Reason: fmt.Sprintf(reason, args...)}
}
