package encoders

import (
	"fmt"
	"strings"

	"mockapi/src/domain"
)

// Format is the artifact file suffix, e.g. "min.json".
type Format string

const (
	JSON    Format = "json"
	MinJSON Format = "min.json"
	XML     Format = "xml"
	CSV     Format = "csv"
	YAML    Format = "yaml"
	NDJSON  Format = "ndjson"
	BSON    Format = "bson"
)

// GraphQL is only used by the schema document, never by an entity artifact.
const GraphQL Format = "graphql"

// Run-level documents published next to the entity artifacts.
const (
	SchemaFile   = "schema.graphql"
	ManifestFile = "manifest.json"
)

var formats = []Format{JSON, MinJSON, XML, CSV, YAML, NDJSON, BSON}

func AllFormats() []Format {
	all := make([]Format, len(formats))
	copy(all, formats)
	return all
}

func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == strings.ToLower(strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownFormat, s)
}

func (f Format) ContentType() string {
	switch f {
	case JSON, MinJSON:
		return "application/json"
	case XML:
		return "application/xml"
	case CSV:
		return "text/csv; charset=utf-8"
	case YAML:
		return "application/yaml"
	case NDJSON:
		return "application/x-ndjson"
	case BSON:
		return "application/bson"
	case GraphQL:
		return "application/graphql; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

func (f Format) Binary() bool {
	return f == BSON
}

// FileName is the artifact name for one (entity, format) pair.
func FileName(key domain.EntityKey, f Format) string {
	return fmt.Sprintf("%s.%s", key, f)
}

// SplitFileName is the inverse of FileName. The longest matching format
// suffix wins, so "users.min.json" is (users, min.json).
func SplitFileName(name string) (domain.EntityKey, Format, error) {
	var (
		best Format
		stem string
	)
	for _, f := range formats {
		suffix := "." + string(f)
		if strings.HasSuffix(name, suffix) && len(f) > len(best) {
			best = f
			stem = strings.TrimSuffix(name, suffix)
		}
	}
	if best == "" {
		return "", "", fmt.Errorf("%w: %q", domain.ErrUnknownFormat, name)
	}

	key, err := domain.ParseEntityKey(stem)
	if err != nil {
		return "", "", err
	}
	return key, best, nil
}

// ResolveName validates a published file name and returns its format.
// Entity is empty for the run-level documents.
func ResolveName(name string) (domain.EntityKey, Format, error) {
	switch name {
	case SchemaFile:
		return "", GraphQL, nil
	case ManifestFile:
		return "", JSON, nil
	}
	return SplitFileName(name)
}
