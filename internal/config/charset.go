package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// ErrUnknownCharset reports a charset name htmlindex cannot resolve.
var ErrUnknownCharset = errors.New("unknown charset")

func isUTF8Name(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// LookupCharset resolves a charset name to an encoding. UTF-8 (and the empty
// name) resolve to a nil encoding, meaning bytes pass through untouched.
func LookupCharset(name string) (encoding.Encoding, error) {
	if isUTF8Name(name) {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	return enc, nil
}

// DecodeBytes converts data from the named charset to UTF-8.
func DecodeBytes(name string, data []byte) ([]byte, error) {
	enc, err := LookupCharset(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return data, nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s input: %w", name, err)
	}
	return out, nil
}

// EncodeBytes converts UTF-8 data to the named charset.
func EncodeBytes(name string, data []byte) ([]byte, error) {
	enc, err := LookupCharset(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return data, nil
	}
	out, err := enc.NewEncoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s output: %w", name, err)
	}
	return out, nil
}
