package parse

import (
	"encoding/json"
	"fmt"
)

// JSONParser (V1) decodes a message into an intermediate map of raw fields,
// requiring each of the known keys be present, then coerces the numeric
// strings to float64. Prioritizes clarity over allocation count, the same
// tradeoff the teacher's own encoding/json-based config loader makes.
type JSONParser struct{}

func (JSONParser) Parse(raw []byte) (Update, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Update{}, fmt.Errorf("%w: %v", ErrMalformedField, err)
	}

	symbol, err := requiredString(fields, "s")
	if err != nil {
		return Update{}, err
	}
	bidStr, err := requiredString(fields, "b")
	if err != nil {
		return Update{}, err
	}
	bidQtyStr, err := requiredString(fields, "B")
	if err != nil {
		return Update{}, err
	}
	askStr, err := requiredString(fields, "a")
	if err != nil {
		return Update{}, err
	}
	askQtyStr, err := requiredString(fields, "A")
	if err != nil {
		return Update{}, err
	}
	updateID, err := requiredUint(fields, "u")
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

func requiredString(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: %s is not a string", ErrMalformedField, key)
	}
	if s == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrMalformedField, key)
	}
	return s, nil
}

func requiredUint(fields map[string]json.RawMessage, key string) (uint64, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	var n uint64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer", ErrMalformedField, key)
	}
	return n, nil
}
