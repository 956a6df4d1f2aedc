package richtext

import (
	"encoding/json"
	"regexp"
	"strconv"
)

// TitleField is the field name that is never converted to rich text.
// Title fields in the CMS are plain text.
const TitleField = "title"

var htmlTagRe = regexp.MustCompile(`<[a-zA-Z/!][^<>]*>`)

// Formatter wraps record fields into localized values, converting HTML
// fields to rich-text documents.
type Formatter struct {
	Converter Converter
	Locale    string
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithLocale sets the locale key fields are stored under.
// Defaults to DefaultLocale.
func WithLocale(locale string) FormatterOption {
	return func(f *Formatter) {
		if locale != "" {
			f.Locale = locale
		}
	}
}

// NewFormatter creates a Formatter that converts HTML with conv.
func NewFormatter(conv Converter, opts ...FormatterOption) *Formatter {
	f := &Formatter{
		Converter: conv,
		Locale:    DefaultLocale,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FormatEntry localizes every field of content, keeping names and order.
func (f *Formatter) FormatEntry(content Content) FormattedEntry {
	entry := make(FormattedEntry, 0, len(content))
	for _, field := range content {
		entry = append(entry, EntryField{
			Name:  field.Name,
			Field: f.LocalizeField(field.Name, field.Value),
		})
	}
	return entry
}

// LocalizeField wraps value under the formatter's locale.
//
// Strings containing HTML tags, and rendered objects whose HTML contains
// tags, become rich-text documents, except for the title field which is
// always kept as plain text. Other strings and numbers are coerced to
// strings, rendered objects yield their rendered value (coerced the same
// way when it is a string or number), and anything else is passed through
// unchanged.
func (f *Formatter) LocalizeField(key string, value any) LocalizedField {
	locale := f.Locale
	if locale == "" {
		locale = DefaultLocale
	}

	if key != TitleField {
		if html, ok := htmlOf(value); ok {
			return LocalizedField{Locale: locale, Value: f.Converter.Convert(html)}
		}
	}

	if s, ok := scalarString(value); ok {
		return LocalizedField{Locale: locale, Value: s}
	}
	if rendered, ok := renderedValue(value); ok {
		if s, ok := scalarString(rendered); ok {
			return LocalizedField{Locale: locale, Value: s}
		}
		return LocalizedField{Locale: locale, Value: rendered}
	}
	return LocalizedField{Locale: locale, Value: value}
}

// htmlOf returns the HTML carried by value, if value is a string or a
// rendered object containing at least one tag.
func htmlOf(value any) (string, bool) {
	if rendered, ok := renderedValue(value); ok {
		value = rendered
	}
	s, ok := value.(string)
	if !ok || !htmlTagRe.MatchString(s) {
		return "", false
	}
	return s, true
}

// renderedValue returns the rendered property of value, if it has one.
func renderedValue(value any) (any, bool) {
	switch v := value.(type) {
	case Rendered:
		return v.Rendered, true
	case *Rendered:
		if v == nil {
			return nil, false
		}
		return v.Rendered, true
	case map[string]any:
		rendered, ok := v["rendered"]
		return rendered, ok
	}
	return nil, false
}

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case int:
		return strconv.Itoa(v), true
	case int8, int16, int32, int64:
		return strconv.FormatInt(toInt64(v), 10), true
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(toUint64(v), 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

func toUint64(v any) uint64 {
	switch n := v.(type) {
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	}
	return 0
}
