package darwin

import (
	"encoding/json"
	"errors"
)

// ErrEmptyEnvelope is returned for broker messages whose envelope carries
// no inner document.
var ErrEmptyEnvelope = errors.New("darwin: envelope has no payload")

// envelope is the outer broker message: the Darwin document travels as a
// JSON string under the "bytes" key.
type envelope struct {
	Bytes string `json:"bytes"`
}

// DecodeEnvelope unpacks one raw broker message and returns the inner
// Darwin document bytes.
func DecodeEnvelope(raw []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	if env.Bytes == "" {
		return nil, ErrEmptyEnvelope
	}
	return []byte(env.Bytes), nil
}

// DecodeDocument parses an inner Darwin document.
func DecodeDocument(doc []byte) (*Pport, error) {
	var pp Pport
	if err := json.Unmarshal(doc, &pp); err != nil {
		return nil, err
	}
	return &pp, nil
}

// Decode unpacks one raw broker message into a Pport document.
func Decode(raw []byte) (*Pport, error) {
	doc, err := DecodeEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return DecodeDocument(doc)
}
