package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/richtext"
)

// Ensure LoggingConverter implements richtext.Converter.
var _ richtext.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   richtext.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next richtext.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the result size.
func (c *LoggingConverter) Convert(html string) *richtext.Document {
	begin := time.Now()
	doc := c.next.Convert(html)
	c.logger.Debug("convert",
		"bytes", len(html),
		"blocks", len(doc.Content),
		"duration", time.Since(begin),
	)
	return doc
}
