package messaging

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	ErrMissingPhone = errors.New("missing phone number")
	ErrInvalidPhone = errors.New("invalid phone number")
)

// NormalizePhone returns num in E.164 form. Numbers without a leading "+" are
// parsed against defaultRegion (ISO 3166 code, e.g. "US"); with an empty region
// they are rejected.
func NormalizePhone(num, defaultRegion string) (string, error) {
	num = strings.TrimSpace(num)
	if num == "" {
		return "", ErrMissingPhone
	}
	if !strings.HasPrefix(num, "+") && defaultRegion == "" {
		return "", ErrInvalidPhone
	}

	parsed, err := phonenumbers.Parse(num, defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
