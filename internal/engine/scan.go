// Package engine scans raw JSON tokens for problems that disappear once the
// input is decoded into maps: duplicate object keys and excessive nesting.
package engine

import (
	"bytes"
	"errors"
	"io"

	j "github.com/goccy/go-json"

	goxapi "github.com/reoring/goxapi"
)

// Issue codes produced by Scan.
const (
	CodeDuplicateKey = "duplicate_key"
	CodeTooDeep      = "too_deep"
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code string
	Path string // JSON Pointer of the offending key or container.
	Key  string
}

// ScanOptions controls what Scan reports.
type ScanOptions struct {
	DetectDuplicates bool
	// MaxDepth limits container nesting; zero disables the check.
	MaxDepth int
	// MaxIssues stops the scan after that many issues; zero means unlimited.
	MaxIssues int
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         goxapi.PathRef
	nextIndex    int
	lastKey      string
}

// Scan walks the JSON tokens of data. Syntax errors are returned as err.
func Scan(data []byte, opt ScanOptions) ([]SimpleIssue, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		issues []SimpleIssue
		stack  []frame
	)
	full := func() bool { return opt.MaxIssues > 0 && len(issues) >= opt.MaxIssues }

	for !full() {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if len(stack) > 0 {
				return issues, io.ErrUnexpectedEOF
			}
			break
		}
		if err != nil {
			return issues, err
		}

		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{', '[':
				p := valuePath(stack)
				f := frame{kind: kindArray, path: p}
				if v == '{' {
					f = frame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true, path: p}
				}
				stack = append(stack, f)
				if opt.MaxDepth > 0 && len(stack) > opt.MaxDepth {
					return append(issues, SimpleIssue{Code: CodeTooDeep, Path: p.Pointer()}), nil
				}
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				endValue(stack)
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].kind == kindObject && stack[n-1].expectingKey {
				top := &stack[n-1]
				if _, dup := top.keys[v]; dup && opt.DetectDuplicates {
					issues = append(issues, SimpleIssue{Code: CodeDuplicateKey, Path: top.path.Field(v).Pointer(), Key: v})
				}
				top.keys[v] = struct{}{}
				top.lastKey = v
				top.expectingKey = false
				continue
			}
			valuePath(stack)
			endValue(stack)
		default:
			valuePath(stack)
			endValue(stack)
		}
	}
	return issues, nil
}

// valuePath returns the pointer of the value about to start and advances the
// array index when inside an array.
func valuePath(stack []frame) goxapi.PathRef {
	if len(stack) == 0 {
		return goxapi.Root()
	}
	top := &stack[len(stack)-1]
	if top.kind == kindObject {
		return top.path.Field(top.lastKey)
	}
	p := top.path.Index(top.nextIndex)
	top.nextIndex++
	return p
}

func endValue(stack []frame) {
	if len(stack) == 0 {
		return
	}
	if top := &stack[len(stack)-1]; top.kind == kindObject {
		top.expectingKey = true
	}
}
