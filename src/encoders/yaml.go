package encoders

import (
	"bytes"

	"mockapi/src/domain"

	"gopkg.in/yaml.v3"
)

// YAMLEncoder writes the collection as a block-style sequence.
type YAMLEncoder struct{}

func (YAMLEncoder) Format() Format {
	return YAML
}

func (YAMLEncoder) Encode(_ domain.EntityKey, records []domain.Record) ([]byte, error) {
	if records == nil {
		records = []domain.Record{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
