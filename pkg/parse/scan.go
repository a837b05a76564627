package parse

import (
	"bytes"
	"fmt"
	"strconv"
)

// ScanParser (V2) locates each required key by a linear byte scan for the
// literal pattern `"k":"..."` (or `"k":n` for the bare-integer update id),
// reading until the closing delimiter and parsing in place. Field order is
// not assumed. It converts the symbol and each numeric field's bytes to a
// string before parsing them with strconv, and builds no intermediate
// struct or map — the hand-tuned
// counterpart to JSONParser, grounded on the original implementation's
// extract_json_field linear scan.
type ScanParser struct{}

func (ScanParser) Parse(raw []byte) (Update, error) {
	symbol, err := scanStringField(raw, 's')
	if err != nil {
		return Update{}, err
	}
	if symbol == "" {
		return Update{}, fmt.Errorf("%w: s is empty", ErrMalformedField)
	}

	bidStr, err := scanStringField(raw, 'b')
	if err != nil {
		return Update{}, err
	}
	bidQtyStr, err := scanStringField(raw, 'B')
	if err != nil {
		return Update{}, err
	}
	askStr, err := scanStringField(raw, 'a')
	if err != nil {
		return Update{}, err
	}
	askQtyStr, err := scanStringField(raw, 'A')
	if err != nil {
		return Update{}, err
	}
	updateID, err := scanUintField(raw, 'u')
	if err != nil {
		return Update{}, err
	}

	bid, err := parseNumericField('b', bidStr)
	if err != nil {
		return Update{}, err
	}
	bidQty, err := parseNumericField('B', bidQtyStr)
	if err != nil {
		return Update{}, err
	}
	ask, err := parseNumericField('a', askStr)
	if err != nil {
		return Update{}, err
	}
	askQty, err := parseNumericField('A', askQtyStr)
	if err != nil {
		return Update{}, err
	}

	return Update{
		Symbol:       symbol,
		BestBidPrice: bid,
		BestBidQty:   bidQty,
		BestAskPrice: ask,
		BestAskQty:   askQty,
		UpdateID:     updateID,
	}, nil
}

// parseNumericField rejects zero-length numeric strings as malformed
// (rather than letting strconv report a generic syntax error) and reports
// any other conversion failure as a bad number.
func parseNumericField(key byte, s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: %c is empty", ErrMalformedField, key)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %c=%q: %v", ErrBadNumber, key, s, err)
	}
	return v, nil
}

// scanStringField locates `"<key>":"` and returns the bytes up to the next
// double quote, converted to a string. Backslash escapes are not
// recognised: an escaped quote ends the value.
func scanStringField(raw []byte, key byte) (string, error) {
	pattern := []byte{'"', key, '"', ':', '"'}
	idx := bytes.Index(raw, pattern)
	if idx < 0 {
		return "", fmt.Errorf("%w: %c", ErrMissingField, key)
	}
	start := idx + len(pattern)
	end := bytes.IndexByte(raw[start:], '"')
	if end < 0 {
		return "", fmt.Errorf("%w: %c: unterminated string", ErrMalformedField, key)
	}
	return string(raw[start : start+end]), nil
}

// scanUintField locates `"<key>":` followed by an integer and returns it.
// Accepts either an unquoted JSON number or a quoted numeric
// string, matching "extra fields ignored, field order not assumed" without
// assuming which shape the exchange uses for update ids.
func scanUintField(raw []byte, key byte) (uint64, error) {
	pattern := []byte{'"', key, '"', ':'}
	idx := bytes.Index(raw, pattern)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %c", ErrMissingField, key)
	}
	start := idx + len(pattern)
	if start < len(raw) && raw[start] == '"' {
		start++
		end := bytes.IndexByte(raw[start:], '"')
		if end < 0 {
			return 0, fmt.Errorf("%w: %c: unterminated string", ErrMalformedField, key)
		}
		n, err := strconv.ParseUint(string(raw[start:start+end]), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %c=%q: %v", ErrBadNumber, key, raw[start:start+end], err)
		}
		return n, nil
	}

	end := start
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == start {
		return 0, fmt.Errorf("%w: %c is not numeric", ErrMalformedField, key)
	}
	n, err := strconv.ParseUint(string(raw[start:end]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %c=%q: %v", ErrBadNumber, key, raw[start:end], err)
	}
	return n, nil
}
