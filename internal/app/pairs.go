package app

import (
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/bft-labs/apiq/internal/domain"
)

// ParseHeader parses a "Name: value" header flag. Name and value are trimmed.
// A missing colon, an empty name or an invalid name/value is a usage error.
func ParseHeader(raw string) (domain.Header, error) {
	name, value, ok := strings.Cut(raw, ":")
	if !ok {
		return domain.Header{}, fmt.Errorf("%w: header %q must have the form \"Name: value\"", domain.ErrUsage, raw)
	}
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)

	if !httpguts.ValidHeaderFieldName(name) {
		return domain.Header{}, fmt.Errorf("%w: invalid header name %q", domain.ErrUsage, name)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return domain.Header{}, fmt.Errorf("%w: invalid value for header %q", domain.ErrUsage, name)
	}
	return domain.Header{Name: name, Value: value}, nil
}

// Assignment is a parsed "key=value" pair.
type Assignment struct {
	Key   string
	Value string
}

// ParseAssignment parses a "key=value" pair. The value may be empty and may
// contain further '=' characters; a missing '=' or empty key is a usage error.
func ParseAssignment(raw string) (Assignment, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return Assignment{}, fmt.Errorf("%w: %q must have the form key=value", domain.ErrUsage, raw)
	}
	if key == "" {
		return Assignment{}, fmt.Errorf("%w: %q has an empty key", domain.ErrUsage, raw)
	}
	return Assignment{Key: key, Value: value}, nil
}
