package pkg

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// DecodeJSON decodes a single JSON value from r into v. Unknown fields and trailing data are errors.
func DecodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after json value")
	}
	return nil
}

// DecodeJSONBytes is DecodeJSON over a byte slice.
func DecodeJSONBytes(raw []byte, v any) error {
	return DecodeJSON(bytes.NewReader(raw), v)
}
