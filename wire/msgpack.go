package wire

import (
	"github.com/vmihailenco/msgpack/v5"
)

// MsgPack returns the MessagePack format backed by vmihailenco/msgpack.
func MsgPack() Format { return msgpackFormat{} }

type msgpackFormat struct{}

func (msgpackFormat) Name() string        { return "msgpack" }
func (msgpackFormat) ContentType() string { return "application/msgpack" }

func (msgpackFormat) Unmarshal(data []byte) (any, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalizeIn(v), nil
}

func (msgpackFormat) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(normalizeOut(v))
}
