package validation

import (
	"regexp"
	"strings"

	"github.com/dosadiner/dosa-api/utils"
)

// PhonePattern is the only accepted phone format (US-style, dash-grouped).
const PhonePattern = `^\d{3}-\d{3}-\d{4}$`

var phoneRe = regexp.MustCompile(PhonePattern)

// CustomerName rejects empty or whitespace-only names.
func CustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return utils.Validationf("customer name must not be empty")
	}
	return nil
}

// ItemName rejects empty or whitespace-only names.
func ItemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return utils.Validationf("item name must not be empty")
	}
	return nil
}

// Phone enforces the 111-111-1111 format.
func Phone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return utils.Validationf("phone number must be entered in the following format: 111-111-1111")
	}
	return nil
}

// Price accepts any non-negative value. Integer JSON input arrives here
// already widened to float64 by the decoder; malformed numerics never make
// it past binding.
func Price(price float64) error {
	if price < 0 {
		return utils.Validationf("price must be a non-negative number")
	}
	return nil
}
