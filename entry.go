package richtext

import (
	"bytes"
	"context"
	"encoding/json"
	"slices"
)

// DefaultLocale is the locale code used when none is configured.
const DefaultLocale = "en-US"

// Field is a named value of a source content record.
type Field struct {
	Name  string
	Value any
}

// Content is a source content record. Field order is preserved.
type Content []Field

// ContentFromJSON decodes a JSON object into Content, keeping the key order
// of the input. Nested values decode as generic JSON values with numbers
// kept as json.Number.
func ContentFromJSON(data []byte) (Content, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, Errorf(EINVALID, "invalid content JSON: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, Errorf(EINVALID, "content must be a JSON object")
	}

	var content Content
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, Errorf(EINVALID, "invalid content JSON: %v", err)
		}
		name, _ := tok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, Errorf(EINVALID, "invalid value for field %q: %v", name, err)
		}
		content = append(content, Field{Name: name, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, Errorf(EINVALID, "invalid content JSON: %v", err)
	}

	return content, nil
}

// Rendered is the "rendered HTML" shape many CMS APIs use for text fields,
// e.g. {"rendered": "<p>Hello</p>"}.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// LocalizedField maps a single locale to a field value. The value is a
// string, a *Document, or a pre-structured value passed through unchanged.
type LocalizedField struct {
	Locale string
	Value  any
}

// Document returns the field value as a rich-text document, if it is one.
func (f LocalizedField) Document() (*Document, bool) {
	doc, ok := f.Value.(*Document)
	return doc, ok
}

// MarshalJSON encodes the field as a one-key object, e.g. {"en-US": "Hello"}.
func (f LocalizedField) MarshalJSON() ([]byte, error) {
	locale := f.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	return json.Marshal(map[string]any{locale: f.Value})
}

// EntryField is a named, localized field of a formatted entry.
type EntryField struct {
	Name  string
	Field LocalizedField
}

// FormattedEntry holds the localized fields of an entry in source order.
// It is the field payload the CMS expects on create and update.
type FormattedEntry []EntryField

// Get returns the localized field with the given name.
func (e FormattedEntry) Get(name string) (LocalizedField, bool) {
	for _, f := range e {
		if f.Name == name {
			return f.Field, true
		}
	}
	return LocalizedField{}, false
}

// Names returns the field names in order.
func (e FormattedEntry) Names() []string {
	names := make([]string, 0, len(e))
	for _, f := range e {
		names = append(names, f.Name)
	}
	return names
}

// Filter returns the fields whose names appear in fieldIDs, in entry order.
// It is used to drop fields the target content type does not declare.
func (e FormattedEntry) Filter(fieldIDs []string) FormattedEntry {
	out := make(FormattedEntry, 0, len(e))
	for _, f := range e {
		if slices.Contains(fieldIDs, f.Name) {
			out = append(out, f)
		}
	}
	return out
}

// MarshalJSON encodes the entry as a JSON object with keys in entry order.
func (e FormattedEntry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(f.Field)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EntryWriter persists formatted entries.
type EntryWriter interface {
	// WriteEntry stores entry under name, replacing any previous version.
	WriteEntry(ctx context.Context, name string, entry FormattedEntry) error
}
