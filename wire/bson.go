package wire

import (
	"go.mongodb.org/mongo-driver/bson"
)

// BSON returns the BSON format backed by the MongoDB driver. A BSON payload
// is always a document, so only mappings can be marshaled.
func BSON() Format { return bsonFormat{} }

type bsonFormat struct{}

func (bsonFormat) Name() string        { return "bson" }
func (bsonFormat) ContentType() string { return "application/bson" }

func (bsonFormat) Unmarshal(data []byte) (any, error) {
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return normalizeIn(m), nil
}

func (bsonFormat) Marshal(v any) ([]byte, error) {
	return bson.Marshal(normalizeOut(v))
}
