package slogx

import (
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// Error returns a slog.Attr representing the provided error.
// The attribute key is "error" and the value is the error's message.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Stringer creates a slog.Attr with the provided key and the string representation
// of the given fmt.Stringer value.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

const (
	// KeyLoggerName is the key for the logger name attribute.
	KeyLoggerName = "logger"
	// KeyRequestID correlates all records of one classification.
	KeyRequestID = "request_id"
	// KeyNumber is the integer being classified.
	KeyNumber = "number"
)

// LoggerName creates a slog.Attr with the provided logger name.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}

// RequestID creates the correlation attribute for one classification.
func RequestID(id fmt.Stringer) slog.Attr {
	return Stringer(KeyRequestID, id)
}

// Number creates the attribute for the integer being classified.
func Number(n int64) slog.Attr {
	return slog.Int64(KeyNumber, n)
}

// Truncated logs at most limit bytes of value, which keeps raw model output
// from flooding debug logs. The cut never splits a multi-byte rune.
func Truncated(key, value string, limit int) slog.Attr {
	if limit <= 0 || len(value) <= limit {
		return slog.String(key, value)
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return slog.String(key, value[:cut]+"…")
}
