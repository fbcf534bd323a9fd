package encoders

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"mockapi/src/domain"
)

// FlattenPolicy decides how nested fields reach a CSV row.
type FlattenPolicy string

const (
	// FlattenScalar keeps only top-level scalar fields; nested objects and arrays are dropped.
	FlattenScalar FlattenPolicy = "scalar"
	// FlattenDotted expands nested objects into "a.b.c" columns and arrays into "a.0.b".
	FlattenDotted FlattenPolicy = "dotted"
	// FlattenJSON keeps every top-level field and writes nested values as compact JSON text.
	FlattenJSON FlattenPolicy = "json"
)

func ParseFlattenPolicy(s string) (FlattenPolicy, error) {
	switch p := FlattenPolicy(s); p {
	case FlattenScalar, FlattenDotted, FlattenJSON:
		return p, nil
	default:
		return "", fmt.Errorf("unknown csv flatten policy %q", s)
	}
}

// CSVEncoder takes its header from the first record. Any later record with
// a different column set fails the whole artifact with ErrIncompatibleRecord.
type CSVEncoder struct {
	Policy FlattenPolicy
}

func (CSVEncoder) Format() Format {
	return CSV
}

func (e CSVEncoder) Encode(_ domain.EntityKey, records []domain.Record) ([]byte, error) {
	var buf bytes.Buffer
	if len(records) == 0 {
		return buf.Bytes(), nil
	}

	policy := e.Policy
	if policy == "" {
		policy = FlattenScalar
	}

	w := csv.NewWriter(&buf)

	var (
		header []string
		column map[string]int
	)
	for i, record := range records {
		tree, err := toTree(record)
		if err != nil {
			return nil, err
		}
		obj, ok := tree.(object)
		if !ok {
			return nil, fmt.Errorf("record %d is not an object: %w", i, domain.ErrIncompatibleRecord)
		}

		cells, err := flatten(obj, policy)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		if header == nil {
			if len(cells) == 0 {
				return nil, fmt.Errorf("record %d has no flat fields: %w", i, domain.ErrIncompatibleRecord)
			}
			header = make([]string, len(cells))
			column = make(map[string]int, len(cells))
			for j, c := range cells {
				header[j] = c.key
				column[c.key] = j
			}
			if err := w.Write(header); err != nil {
				return nil, err
			}
		}

		row, err := alignRow(cells, header, column)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type cell struct {
	key   string
	value string
}

func flatten(obj object, policy FlattenPolicy) ([]cell, error) {
	var cells []cell
	switch policy {
	case FlattenScalar:
		for _, m := range obj {
			if isScalar(m.value) {
				cells = append(cells, cell{key: m.key, value: scalarText(m.value)})
			}
		}
	case FlattenJSON:
		for _, m := range obj {
			if isScalar(m.value) {
				cells = append(cells, cell{key: m.key, value: scalarText(m.value)})
				continue
			}
			raw, err := json.Marshal(m.value)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell{key: m.key, value: string(raw)})
		}
	case FlattenDotted:
		for _, m := range obj {
			cells = appendDotted(cells, m.key, m.value)
		}
	default:
		return nil, fmt.Errorf("unknown csv flatten policy %q", policy)
	}
	return cells, nil
}

func appendDotted(cells []cell, prefix string, value any) []cell {
	switch t := value.(type) {
	case object:
		for _, m := range t {
			cells = appendDotted(cells, prefix+"."+m.key, m.value)
		}
	case []any:
		for i, elem := range t {
			cells = appendDotted(cells, prefix+"."+strconv.Itoa(i), elem)
		}
	default:
		cells = append(cells, cell{key: prefix, value: scalarText(t)})
	}
	return cells
}

func alignRow(cells []cell, header []string, column map[string]int) ([]string, error) {
	if len(cells) != len(header) {
		return nil, fmt.Errorf("%d columns, header has %d: %w", len(cells), len(header), domain.ErrIncompatibleRecord)
	}

	row := make([]string, len(header))
	seen := make([]bool, len(header))
	for _, c := range cells {
		j, ok := column[c.key]
		if !ok || seen[j] {
			return nil, fmt.Errorf("unexpected column %q: %w", c.key, domain.ErrIncompatibleRecord)
		}
		seen[j] = true
		row[j] = c.value
	}
	return row, nil
}
