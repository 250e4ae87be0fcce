package dto

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"dashqard-redemption/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Digits, spaces, dashes, parentheses and a single leading plus.
var phoneCharsRe = regexp.MustCompile(`^\+?[0-9 ()\-]*$`)

const maxPhoneDigits = 12

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("card_type", validateCardType)
		_ = v.RegisterValidation("redemption_method", validateRedemptionMethod)
		_ = v.RegisterValidation("gh_phone", validateGhanaPhone)
	}
}

// validateCardType accepts any spelling ParseCardType understands.
func validateCardType(fl validator.FieldLevel) bool {
	_, ok := domain.ParseCardType(fl.Field().String())
	return ok
}

func validateRedemptionMethod(fl validator.FieldLevel) bool {
	return domain.RedemptionMethod(fl.Field().String()).IsValid()
}

// validateGhanaPhone accepts empty, partial and complete numbers in local or
// international form.
func validateGhanaPhone(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	if !phoneCharsRe.MatchString(raw) {
		return false
	}
	return len(domain.DigitsOnly(raw)) <= maxPhoneDigits
}

// SanitizeStruct trims whitespace and strips control characters from every
// exported string field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

// Queries go upstream verbatim, so HTML entities are left alone.
func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
