package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Browser (ECMAScript) whitespace: ASCII space and controls, NBSP, the Zs
// spaces, line/paragraph separators and the BOM. U+0085 is not included.
const spaceClass = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

// Regex patterns
var (
	// local@domain.tld with no whitespace and a single @. Deliberately loose.
	contactEmailRegex = regexp.MustCompile(`^[^` + spaceClass + `@]+@[^` + spaceClass + `@]+\.[^` + spaceClass + `@]+$`)
)

// IsSpace reports whether r is whitespace for form input purposes
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00A0', '\u1680', '\u2028', '\u2029', '\u202F', '\u205F', '\u3000', '\uFEFF':
		return true
	}
	return r >= '\u2000' && r <= '\u200A'
}

// TrimSpace strips leading and trailing IsSpace runes
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_email", ContactEmail)
}

// New returns a validator with the custom tags already registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// ContactEmail validates the minimal local@domain.tld shape used by the contact form
func ContactEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return IsContactEmail(val)
}

func IsContactEmail(s string) bool {
	return contactEmailRegex.MatchString(s)
}
