// Package validation turns raw API requests into normalized service inputs.
//
// Each rule set is a request struct carrying go-playground/validator tags.
// Strings are trimmed before the rules run, every violated field is reported,
// and accepted values are normalized (emails canonicalized, item text
// HTML-escaped) on the way out.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/itemkeeper/internal/server/auth"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// messageSource maps a violated (field, tag) pair to a client-facing message
// and hands back the type mismatches found by DecodeJSON.
type messageSource interface {
	message(field, tag string) string
	mismatches() Errors
}

// Validator applies the rule sets. It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// registration of static tags only fails on programmer error
	mustRegister(v, "username_chars", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "password_strength", func(fl validator.FieldLevel) bool {
		return isStrongPassword(fl.Field().String())
	})
	mustRegister(v, "password_bytes", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= auth.MaxPasswordBytes
	})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// check runs the struct rules of req and converts failures to Errors. Type
// mismatches recorded while decoding come first; a field that has one gets
// no further rule messages.
func (v *Validator) check(req messageSource) error {
	out := slices.Clone(req.mismatches())

	if err := v.v.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return err
		}
		for _, fe := range ve {
			if out.has(fe.Field()) {
				continue
			}
			out = append(out, FieldError{
				Field:    fe.Field(),
				Message:  req.message(fe.Field(), fe.Tag()),
				Location: "body",
			})
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func isStrongPassword(s string) bool {
	var lower, upper, digit bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// lookup resolves "field.tag" first, then "field".
func lookup(messages map[string]string, field, tag string) string {
	if m, ok := messages[field+"."+tag]; ok {
		return m
	}
	if m, ok := messages[field]; ok {
		return m
	}
	return "Invalid value"
}
