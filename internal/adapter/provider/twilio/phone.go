package twilio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ttacon/libphonenumber"
)

var errInvalidNumber = errors.New("invalid phone number")

// NormalizeE164 parses a user-entered phone number and formats it as E.164.
// Numbers without a country prefix are read in defaultRegion.
func NormalizeE164(raw, defaultRegion string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", errInvalidNumber)
	}

	num, err := libphonenumber.Parse(raw, defaultRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", errInvalidNumber, raw, err)
	}
	if !libphonenumber.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %q", errInvalidNumber, raw)
	}

	return libphonenumber.Format(num, libphonenumber.E164), nil
}
