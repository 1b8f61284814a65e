package goxapi

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies an Issue.
type Code string

// Issue codes raised by the context codec.
const (
	CodeMissingValue  Code = "missing_value"
	CodeInvalidFormat Code = "invalid_format"
	CodeTypeMismatch  Code = "type_mismatch"
)

// Issue codes raised around the codec (wire formats, dispatch).
const (
	CodeParseError      Code = "parse_error"
	CodeDuplicateKey    Code = "duplicate_key"
	CodeTooLarge        Code = "too_large"
	CodeTooDeep         Code = "too_deep"
	CodeUnsupportedKind Code = "unsupported_kind"
)

// Sentinel errors matched by errors.Is against any *Issue of the same code.
var (
	ErrMissingValue    = errors.New("missing value")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrParse           = errors.New("parse error")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrTooLarge        = errors.New("document too large")
	ErrTooDeep         = errors.New("document nested too deeply")
	ErrUnsupportedKind = errors.New("unsupported entity kind")
)

var sentinels = map[Code]error{
	CodeMissingValue:    ErrMissingValue,
	CodeInvalidFormat:   ErrInvalidFormat,
	CodeTypeMismatch:    ErrTypeMismatch,
	CodeParseError:      ErrParse,
	CodeDuplicateKey:    ErrDuplicateKey,
	CodeTooLarge:        ErrTooLarge,
	CodeTooDeep:         ErrTooDeep,
	CodeUnsupportedKind: ErrUnsupportedKind,
}

// Issue is a single validation failure.
type Issue struct {
	Path     string // JSON Pointer of the offending value, e.g. /team/objectType.
	Field    string // Top-level wire key the issue belongs to; empty for the document itself.
	Code     Code
	Template string // Message catalog key the Message was rendered from.
	Message  string
	Params   map[string]any
	Cause    error // Optional underlying error (e.g. from a format parser).
}

func (i *Issue) Error() string {
	if i.Message == "" {
		return fmt.Sprintf("%s at %s", i.Code, i.pointer())
	}
	return fmt.Sprintf("%s at %s: %s", i.Code, i.pointer(), i.Message)
}

func (i *Issue) pointer() string {
	if i.Path == "" {
		return "/"
	}
	return i.Path
}

// Unwrap exposes the sentinel for the issue code and the cause, if any.
func (i *Issue) Unwrap() []error {
	var errs []error
	if s, ok := sentinels[i.Code]; ok {
		errs = append(errs, s)
	}
	if i.Cause != nil {
		errs = append(errs, i.Cause)
	}
	return errs
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].pointer())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap lets errors.Is find the sentinel of any contained issue.
func (iss Issues) Unwrap() []error {
	errs := make([]error, 0, len(iss))
	for i := range iss {
		errs = append(errs, &iss[i])
	}
	return errs
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssue extracts the first *Issue from err.
func AsIssue(err error) (*Issue, bool) {
	if err == nil {
		return nil, false
	}
	var is *Issue
	if errors.As(err, &is) {
		return is, true
	}
	return nil, false
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
