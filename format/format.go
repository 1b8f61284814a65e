// Package format holds the field-level checks used when decoding documents:
// UUID and language-tag grammars plus type guards for raw wire values.
package format

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	goxapi "github.com/reoring/goxapi"
)

var (
	errUndashedUUID = errors.New("uuid must be in hyphenated form")
	errEmptyTag     = errors.New("empty language tag")
)

// UUID reports whether s is a syntactically valid UUID. The canonical form
// is accepted along with its braced and urn:uuid: spellings. The bare 32
// hex digit form is rejected.
func UUID(s string) error {
	if err := uuid.Validate(s); err != nil {
		return err
	}
	if len(s) == 32 {
		return errUndashedUUID
	}
	return nil
}

// LanguageTag reports whether s is a well-formed RFC 5646 language tag.
// Tags that are well-formed but use subtags missing from the IANA registry
// are accepted.
func LanguageTag(s string) error {
	if s == "" {
		return errEmptyTag
	}
	// x/text accepts '_' as a separator; RFC 5646 does not.
	if i := strings.IndexFunc(s, func(r rune) bool { return !isAlnum(r) && r != '-' }); i >= 0 {
		return fmt.Errorf("invalid character %q in language tag", s[i])
	}
	_, err := language.Parse(s)
	var unknown language.ValueError
	if err != nil && !errors.As(err, &unknown) {
		return err
	}
	return nil
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// String returns v when it holds a string.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Object returns v as a document when it is a mapping.
func Object(v any) (goxapi.Document, bool) {
	return goxapi.AsDocument(v)
}

// IsEmpty reports whether v counts as an empty wire value: null, "", "0",
// false, a numeric zero of any width, or an empty object or array.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == "" || t == "0"
	case bool:
		return !t
	case interface{ Float64() (float64, error) }:
		f, err := t.Float64()
		return err == nil && f == 0
	case []any:
		return len(t) == 0
	case goxapi.EmptyObject, *goxapi.EmptyObject:
		return true
	}
	if d, ok := goxapi.AsDocument(v); ok {
		return len(d) == 0
	}
	// Decoders pick the narrowest numeric type (msgpack int8, bson int32).
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	}
	return false
}
