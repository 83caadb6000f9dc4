// Defines the validation interface and shared field validators.

package notion

import (
	"net/mail"
	"net/url"
	"strconv"
)

// Validatable is implemented by model types that can validate their
// fields. Validation is structural: it checks discriminator/payload
// agreement, enumeration membership, and field formats. It does not
// consult the API, so it cannot catch constraints the server enforces
// (such as referenced objects existing).
type Validatable interface {
	Validate() error
}

// validateEmail checks the field as an email address.
func validateEmail(field, s string) error {
	if s == "" {
		return MissingField(field)
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return InvalidField(field, "not a valid email address")
	}
	return nil
}

// validateURL checks the field as an absolute http(s) URL.
func validateURL(field, s string) error {
	if s == "" {
		return MissingField(field)
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return InvalidField(field, "not a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return InvalidField(field, "URL scheme must be http or https")
	}
	return nil
}

// validateColor checks the field as a color name.
func validateColor(field string, c Color) error {
	if !c.Valid() {
		return InvalidField(field, "unknown color "+strconv.Quote(string(c)))
	}
	return nil
}

// validateRichText validates each segment of a rich text array.
func validateRichText(field string, rts []RichText) error {
	for i := range rts {
		if err := rts[i].Validate(); err != nil {
			return prefixField(field, err)
		}
	}
	return nil
}
