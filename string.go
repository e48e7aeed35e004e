package schema

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// StringValidator validates that input is a string and applies length,
// pattern, and format constraints to it.
type StringValidator struct {
	base[string]
}

func (v *StringValidator) checkType(value any) (string, *Error) {
	s, ok := value.(string)
	if !ok {
		return "", newError("Value must be a string")
	}
	return s, nil
}

// Validate checks value against the configured constraints.
func (v *StringValidator) Validate(value any) Result[string] {
	return v.base.validate(value, v.checkType)
}

// ValidateAny implements AnyValidator.
func (v *StringValidator) ValidateAny(value any) Result[any] {
	return erase(v.Validate(value))
}

// Optional returns a copy that accepts nil input as trivially valid. Rules
// attached before the call still fire for present values.
func (v *StringValidator) Optional() *StringValidator {
	return &StringValidator{base: v.base.asOptional()}
}

// WithMessage returns a copy whose type-check failure reports msg instead of
// the default message. Rule messages are not affected.
func (v *StringValidator) WithMessage(msg string) *StringValidator {
	return &StringValidator{base: v.base.withMessage(msg)}
}

// MinLength requires the string to be at least n characters long.
func (v *StringValidator) MinLength(n int, msg ...string) *StringValidator {
	m := override(fmt.Sprintf("String must be at least %d characters long", n), msg)
	return &StringValidator{base: v.base.withRule(func(s string) *Error {
		if len(s) < n {
			return newError(m)
		}
		return nil
	})}
}

// MaxLength requires the string to be at most n characters long.
func (v *StringValidator) MaxLength(n int, msg ...string) *StringValidator {
	m := override(fmt.Sprintf("String must be at most %d characters long", n), msg)
	return &StringValidator{base: v.base.withRule(func(s string) *Error {
		if len(s) > n {
			return newError(m)
		}
		return nil
	})}
}

// Length requires the string to be exactly n characters long.
func (v *StringValidator) Length(n int, msg ...string) *StringValidator {
	m := override(fmt.Sprintf("String must be exactly %d characters long", n), msg)
	return &StringValidator{base: v.base.withRule(func(s string) *Error {
		if len(s) != n {
			return newError(m)
		}
		return nil
	})}
}

// Pattern requires the string to match re.
func (v *StringValidator) Pattern(re *regexp.Regexp, msg ...string) *StringValidator {
	m := override("String does not match required pattern", msg)
	return &StringValidator{base: v.base.withRule(func(s string) *Error {
		if !re.MatchString(s) {
			return newError(m)
		}
		return nil
	})}
}

// Email requires the string to be a valid email address per RFC 5322, with
// additional checks for typical web use.
func (v *StringValidator) Email(msg ...string) *StringValidator {
	m := override("String must be a valid email address", msg)
	return &StringValidator{base: v.base.withRule(func(s string) *Error {
		if !isEmail(s) {
			return newError(m)
		}
		return nil
	})}
}

// UUID requires the string to be a valid UUID in standard 36-character form.
func (v *StringValidator) UUID(msg ...string) *StringValidator {
	m := override("String must be a valid UUID", msg)
	return &StringValidator{base: v.base.withRule(func(s string) *Error {
		if !isUUID(s) {
			return newError(m)
		}
		return nil
	})}
}

func isEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	// mail.ParseAddress accepts forms that are impractical on the web, such
	// as domains without a dot. Tighten to local@domain with a dotted,
	// non-empty-label domain.
	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}
	local, domain := parts[0], parts[1]
	if local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

func isUUID(s string) bool {
	// Fast rejection on length and hyphen positions before parsing.
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
