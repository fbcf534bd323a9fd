package encoders

import (
	"bytes"
	"encoding/xml"

	"mockapi/src/domain"
)

const xmlItemElement = "item"

// XMLEncoder writes <key><item>...</item>...</key>. Nested objects become
// nested elements and every array element repeats its parent field name.
type XMLEncoder struct{}

func (XMLEncoder) Format() Format {
	return XML
}

func (XMLEncoder) Encode(key domain.EntityKey, records []domain.Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: string(key)}}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}

	for _, record := range records {
		tree, err := toTree(record)
		if err != nil {
			return nil, err
		}
		if err := writeElement(enc, xmlItemElement, tree); err != nil {
			return nil, err
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeElement(enc *xml.Encoder, name string, value any) error {
	if arr, ok := value.([]any); ok {
		for _, elem := range arr {
			if err := writeElement(enc, name, elem); err != nil {
				return err
			}
		}
		return nil
	}

	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	if obj, ok := value.(object); ok {
		for _, m := range obj {
			if err := writeElement(enc, m.key, m.value); err != nil {
				return err
			}
		}
	} else if text := scalarText(value); text != "" {
		if err := enc.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}
