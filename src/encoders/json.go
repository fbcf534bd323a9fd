package encoders

import (
	"bytes"
	"encoding/json"

	"mockapi/src/domain"
)

// JSONEncoder writes the whole collection as one array, indented with two
// spaces or minified.
type JSONEncoder struct {
	Indent bool
}

func (e JSONEncoder) Format() Format {
	if e.Indent {
		return JSON
	}
	return MinJSON
}

func (e JSONEncoder) Encode(_ domain.EntityKey, records []domain.Record) ([]byte, error) {
	if records == nil {
		records = []domain.Record{}
	}
	if e.Indent {
		return json.MarshalIndent(records, "", "  ")
	}
	return json.Marshal(records)
}

// NDJSONEncoder writes one compact object per line, lines joined by '\n'.
type NDJSONEncoder struct{}

func (NDJSONEncoder) Format() Format {
	return NDJSON
}

func (NDJSONEncoder) Encode(_ domain.EntityKey, records []domain.Record) ([]byte, error) {
	var buf bytes.Buffer
	for i, record := range records {
		line, err := json.Marshal(record)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(line)
	}
	return buf.Bytes(), nil
}
