// Package phone normalizes clinic phone numbers. Listings are US-only, so
// parsing defaults to the US region; stored numbers are E.164 and display
// numbers are national format.
package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "US"

// Normalize parses a raw phone string and returns its E.164 form
// (+15551234567). Invalid or empty numbers return an error.
func Normalize(raw string) (string, error) {
	parsed, err := parse(raw)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// Display returns the national display form ((555) 123-4567) of a raw phone
// string.
func Display(raw string) (string, error) {
	parsed, err := parse(raw)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(parsed, phonenumbers.NATIONAL), nil
}

// Valid reports whether the raw string parses to a valid number.
func Valid(raw string) bool {
	_, err := parse(raw)
	return err == nil
}

func parse(raw string) (*phonenumbers.PhoneNumber, error) {
	if raw == "" {
		return nil, fmt.Errorf("phone number cannot be empty")
	}
	parsed, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return nil, fmt.Errorf("invalid phone number: %s", raw)
	}
	return parsed, nil
}
