package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// JSONCodec implements the Codec interface for canonical JSON (RFC 8785).
// Equal values always encode to identical bytes.
type JSONCodec struct {
	// Strict rejects unknown object keys when decoding.
	Strict bool
}

func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

func (j *JSONCodec) Marshal(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("canonicalize json: %w", err)
	}
	return canonical, nil
}

func (j *JSONCodec) Unmarshal(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if j.Strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(v)
}
