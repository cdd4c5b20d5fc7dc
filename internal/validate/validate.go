// Package validate implements the field grammar checks for every value the
// command interpreter accepts. The grammars are registered as custom tags on
// a go-playground validator instance; parse helpers return typed values for
// fields that carry one.
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks single fields against the interpreter's grammars.
// It is stateless and safe to share.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with all custom grammar tags registered.
func New() *Validator {
	v := validator.New()

	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	must("identifier", func(fl validator.FieldLevel) bool { return identifierOK(fl.Field().String()) })
	must("username", func(fl validator.FieldLevel) bool { return usernameOK(fl.Field().String()) })
	must("isbn", func(fl validator.FieldLevel) bool { return isbnOK(fl.Field().String()) })
	must("bookfield", func(fl validator.FieldLevel) bool { return bookFieldOK(fl.Field().String()) })
	must("keywordset", func(fl validator.FieldLevel) bool { return keywordSetOK(fl.Field().String()) })

	return &Validator{v: v}
}

// UserID reports whether s is a valid account identifier:
// 1–30 characters, each alphanumeric or '_'.
func (vd *Validator) UserID(s string) bool { return vd.v.Var(s, "identifier") == nil }

// Password shares the identifier grammar.
func (vd *Validator) Password(s string) bool { return vd.v.Var(s, "identifier") == nil }

// Username reports whether s is a valid display name:
// 1–30 printable bytes (>= 0x20).
func (vd *Validator) Username(s string) bool { return vd.v.Var(s, "username") == nil }

// ISBN reports whether s is a valid book key: 1–20 printable bytes.
func (vd *Validator) ISBN(s string) bool { return vd.v.Var(s, "isbn") == nil }

// BookField reports whether s is a valid book name or author:
// 1–60 printable bytes, no double quote.
func (vd *Validator) BookField(s string) bool { return vd.v.Var(s, "bookfield") == nil }

// KeywordSet reports whether s is a valid pipe-separated keyword field:
// the book-field grammar plus non-empty, duplicate-free tokens.
func (vd *Validator) KeywordSet(s string) bool { return vd.v.Var(s, "keywordset") == nil }

// SingleKeyword reports whether s is a valid keyword filter value for show:
// a keyword set that consists of exactly one token.
func (vd *Validator) SingleKeyword(s string) bool {
	return vd.KeywordSet(s) && !strings.Contains(s, "|")
}

// ParsePrivilege parses a privilege code: exactly one digit with value
// 1, 3 or 7.
func ParsePrivilege(s string) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	p := int(s[0] - '0')
	if p != 1 && p != 3 && p != 7 {
		return 0, false
	}
	return p, true
}

// ParseQuantity parses a count: 1–10 digit characters, value within the
// signed 32-bit range. Positivity requirements are the caller's business.
func ParseQuantity(s string) (int64, bool) {
	if s == "" || len(s) > 10 {
		return 0, false
	}
	var v int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int64(c-'0')
	}
	if v > 2147483647 {
		return 0, false
	}
	return v, true
}

func identifierOK(s string) bool {
	if s == "" || len(s) > 30 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_') {
			return false
		}
	}
	return true
}

func usernameOK(s string) bool {
	return s != "" && len(s) <= 30 && printableOK(s)
}

func isbnOK(s string) bool {
	return s != "" && len(s) <= 20 && printableOK(s)
}

func bookFieldOK(s string) bool {
	return s != "" && len(s) <= 60 && printableOK(s) && !strings.Contains(s, `"`)
}

func keywordSetOK(s string) bool {
	if !bookFieldOK(s) {
		return false
	}
	seen := make(map[string]struct{})
	for _, tok := range strings.Split(s, "|") {
		if tok == "" {
			return false
		}
		if _, dup := seen[tok]; dup {
			return false
		}
		seen[tok] = struct{}{}
	}
	return true
}

func printableOK(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 {
			return false
		}
	}
	return true
}
