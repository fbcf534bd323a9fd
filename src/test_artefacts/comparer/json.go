package comparer

import (
	"bytes"
	"encoding/json"

	"github.com/google/go-cmp/cmp"
)

// DecodeJSON decodes a document with UseNumber so that 14.99 stays "14.99".
func DecodeJSON(content []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

// JSONRawMessage compara json.RawMessage ignorando a ordem das chaves e espaços
func JSONRawMessage() cmp.Option {
	return cmp.Comparer(func(x, y json.RawMessage) bool {
		if len(x) == 0 && len(y) == 0 {
			return true
		}
		if len(x) == 0 || len(y) == 0 {
			return false
		}

		xObj, err := DecodeJSON(x)
		if err != nil {
			return false
		}
		yObj, err := DecodeJSON(y)
		if err != nil {
			return false
		}
		return cmp.Equal(xObj, yObj)
	})
}
