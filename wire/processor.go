package wire

import (
	"context"
	"io"
	"strconv"
	"time"

	goxapi "github.com/reoring/goxapi"
	"github.com/reoring/goxapi/codec"
	"github.com/reoring/goxapi/i18n"
	"github.com/reoring/goxapi/internal/engine"
	"github.com/reoring/goxapi/model"
)

// Processor decodes and encodes statement contexts in one wire format.
// It is safe for concurrent use when the nested codec behind cc is.
type Processor struct {
	format Format
	cc     *codec.ContextCodec
	opts   Options
}

// NewProcessor binds f to cc. At most one Options value is used.
func NewProcessor(f Format, cc *codec.ContextCodec, opts ...Options) *Processor {
	p := &Processor{format: f, cc: cc}
	if len(opts) > 0 {
		p.opts = opts[0]
	}
	if p.opts.Serialization.Format == "" {
		p.opts.Serialization.Format = f.Name()
	}
	return p
}

// Format returns the wire format of p.
func (p *Processor) Format() Format { return p.format }

// Receive parses data and decodes it into a Context.
func (p *Processor) Receive(ctx context.Context, data []byte) (model.Context, error) {
	var out model.Context
	err := p.receive(ctx, data, func(doc any) (err error) {
		out, err = p.cc.Decode(ctx, doc, p.opts.Serialization)
		return err
	})
	if err != nil {
		return model.Context{}, err
	}
	return out, nil
}

// ReceiveReader reads r to the end and decodes it like Receive. With
// MaxBytes set, at most MaxBytes+1 bytes are read.
func (p *Processor) ReceiveReader(ctx context.Context, r io.Reader) (model.Context, error) {
	if limit := p.opts.MaxBytes; limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Context{}, wireIssue(goxapi.CodeParseError, i18n.ParseFailed, "", nil, err)
	}
	return p.Receive(ctx, data)
}

// ReceiveWithMeta is Receive with top-level presence recorded, so that
// SendPreserving can write explicit nulls back.
func (p *Processor) ReceiveWithMeta(ctx context.Context, data []byte) (goxapi.Decoded[model.Context], error) {
	var out goxapi.Decoded[model.Context]
	err := p.receive(ctx, data, func(doc any) (err error) {
		out, err = p.cc.DecodeWithMeta(ctx, doc, p.opts.Serialization)
		return err
	})
	if err != nil {
		return goxapi.Decoded[model.Context]{}, err
	}
	return out, nil
}

// Send encodes c and marshals it.
func (p *Processor) Send(ctx context.Context, c model.Context) ([]byte, error) {
	return p.send(ctx, p.cc.Encode(ctx, c, p.opts.Serialization))
}

// SendPreserving encodes a value obtained from ReceiveWithMeta.
func (p *Processor) SendPreserving(ctx context.Context, d goxapi.Decoded[model.Context]) ([]byte, error) {
	return p.send(ctx, p.cc.EncodePreserving(ctx, d, p.opts.Serialization))
}

func (p *Processor) receive(ctx context.Context, data []byte, decode func(doc any) error) (retErr error) {
	ct := p.format.ContentType()
	start := time.Now()
	emitReceiveStart(ctx, ct, len(data))

	fields := 0
	defer func() {
		emitReceiveComplete(ctx, ct, len(data), time.Since(start), fields, retErr)
	}()

	if limit := p.opts.MaxBytes; limit > 0 && int64(len(data)) > limit {
		return wireIssue(goxapi.CodeTooLarge, i18n.TooLarge, "", map[string]string{"max": strconv.FormatInt(limit, 10)}, nil)
	}
	if err := p.check(ctx, data); err != nil {
		return err
	}
	doc, err := p.format.Unmarshal(data)
	if err != nil {
		return wireIssue(goxapi.CodeParseError, i18n.ParseFailed, "", nil, err)
	}
	if err := decode(doc); err != nil {
		return err
	}
	fields = countFields(doc)
	return nil
}

// check runs the token scan for formats that support it. Excessive depth
// always rejects; duplicate keys follow opts.DuplicateKeys.
func (p *Processor) check(ctx context.Context, data []byte) error {
	ts, ok := p.format.(tokenScanner)
	if !ok {
		return nil
	}
	opt := engine.ScanOptions{
		DetectDuplicates: p.opts.DuplicateKeys != goxapi.Ignore,
		MaxDepth:         p.opts.MaxDepth,
	}
	if !opt.DetectDuplicates && opt.MaxDepth <= 0 {
		return nil
	}
	found, err := ts.scan(data, opt)
	if err != nil {
		return wireIssue(goxapi.CodeParseError, i18n.ParseFailed, "", nil, err)
	}
	var (
		reject goxapi.Issues
		dups   []engine.SimpleIssue
	)
	for _, si := range found {
		switch si.Code {
		case engine.CodeTooDeep:
			is := wireIssue(goxapi.CodeTooDeep, i18n.TooDeep, si.Path, map[string]string{"max": strconv.Itoa(p.opts.MaxDepth)}, nil)
			reject = append(reject, *is)
		case engine.CodeDuplicateKey:
			if p.opts.DuplicateKeys == goxapi.Error {
				is := wireIssue(goxapi.CodeDuplicateKey, i18n.DuplicateKey, si.Path, map[string]string{"key": si.Key}, nil)
				reject = append(reject, *is)
				continue
			}
			dups = append(dups, si)
		}
	}
	if len(reject) > 0 {
		return reject
	}
	emitDuplicateKeys(ctx, p.format.ContentType(), dups)
	return nil
}

func (p *Processor) send(ctx context.Context, doc any) (out []byte, retErr error) {
	ct := p.format.ContentType()
	start := time.Now()
	emitSendStart(ctx, ct)
	defer func() {
		emitSendComplete(ctx, ct, len(out), time.Since(start), retErr)
	}()
	return p.format.Marshal(doc)
}

func wireIssue(code goxapi.Code, key, path string, data map[string]string, cause error) *goxapi.Issue {
	var params map[string]any
	if len(data) > 0 {
		params = make(map[string]any, len(data))
		for k, v := range data {
			params[k] = v
		}
	}
	is := goxapi.IssueAt(goxapi.At(path), code, i18n.T(key, data), params)
	is.Template = key
	is.Cause = cause
	return is
}

var contextKeys = []string{
	codec.KeyRegistration,
	codec.KeyInstructor,
	codec.KeyTeam,
	codec.KeyContextActivities,
	codec.KeyRevision,
	codec.KeyPlatform,
	codec.KeyLanguage,
	codec.KeyStatement,
	codec.KeyExtensions,
}

// countFields reports how many recognized keys carry a value.
func countFields(doc any) int {
	d, ok := goxapi.AsDocument(doc)
	if !ok {
		return 0
	}
	n := 0
	for _, k := range contextKeys {
		if _, p := goxapi.Lookup(d, k); p.HasValue() {
			n++
		}
	}
	return n
}
