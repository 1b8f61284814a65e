package wire

import (
	"bytes"
	"errors"

	j "github.com/goccy/go-json"

	"github.com/reoring/goxapi/internal/engine"
)

var errTrailingData = errors.New("trailing data after document")

// JSON returns the JSON format backed by goccy/go-json. Numbers are kept as
// json.Number so no precision is lost before nested codecs see them.
func JSON() Format { return jsonFormat{} }

type jsonFormat struct{}

func (jsonFormat) Name() string        { return "json" }
func (jsonFormat) ContentType() string { return "application/json" }

func (jsonFormat) Unmarshal(data []byte) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errTrailingData
	}
	return normalizeIn(v), nil
}

func (jsonFormat) Marshal(v any) ([]byte, error) {
	return j.Marshal(normalizeOut(v))
}

// scan reports duplicate keys and nesting depth on the raw tokens.
func (jsonFormat) scan(data []byte, opt engine.ScanOptions) ([]engine.SimpleIssue, error) {
	return engine.Scan(data, opt)
}

// tokenScanner is implemented by formats whose raw input can be checked
// before decoding.
type tokenScanner interface {
	scan(data []byte, opt engine.ScanOptions) ([]engine.SimpleIssue, error)
}
