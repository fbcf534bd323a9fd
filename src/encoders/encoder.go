package encoders

import (
	"fmt"

	"mockapi/src/domain"
)

// Artifact is one encoded output file.
type Artifact struct {
	Name    string
	Entity  domain.EntityKey
	Format  Format
	Content []byte
}

func (a Artifact) ContentType() string {
	return a.Format.ContentType()
}

// Encoder turns a read-only collection into the bytes of one format.
type Encoder interface {
	Format() Format
	Encode(key domain.EntityKey, records []domain.Record) ([]byte, error)
}

// EncodingError is the single failure type of every encoder. It never
// escapes the (entity, format) pair it belongs to.
type EncodingError struct {
	Entity domain.EntityKey
	Format Format
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode %s as %s: %v", e.Entity, e.Format, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Encode runs enc and wraps any failure, panics included, into an
// *EncodingError.
func Encode(enc Encoder, key domain.EntityKey, records []domain.Record) (art Artifact, err error) {
	format := enc.Format()
	defer func() {
		if r := recover(); r != nil {
			art = Artifact{}
			err = &EncodingError{Entity: key, Format: format, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	content, encErr := enc.Encode(key, records)
	if encErr != nil {
		return Artifact{}, &EncodingError{Entity: key, Format: format, Err: encErr}
	}

	return Artifact{
		Name:    FileName(key, format),
		Entity:  key,
		Format:  format,
		Content: content,
	}, nil
}

// NewSet returns one encoder per requested format, in the given order.
func NewSet(formats []Format, policy FlattenPolicy) ([]Encoder, error) {
	set := make([]Encoder, 0, len(formats))
	for _, f := range formats {
		switch f {
		case JSON:
			set = append(set, JSONEncoder{Indent: true})
		case MinJSON:
			set = append(set, JSONEncoder{})
		case XML:
			set = append(set, XMLEncoder{})
		case CSV:
			set = append(set, CSVEncoder{Policy: policy})
		case YAML:
			set = append(set, YAMLEncoder{})
		case NDJSON:
			set = append(set, NDJSONEncoder{})
		case BSON:
			set = append(set, BSONEncoder{})
		default:
			return nil, fmt.Errorf("encoders.NewSet - %w: %q", domain.ErrUnknownFormat, f)
		}
	}
	return set, nil
}
