package validation

import (
	"errors"
	"unicode"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FirstLetterUppercase rejects values whose first letter differs from its
// own upper-case form. Empty values pass; emptiness is the Required rule's
// business.
var FirstLetterUppercase = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok || s == "" {
		return nil
	}

	first, _ := utf8.DecodeRuneInString(s)
	if first == unicode.ToUpper(first) {
		return nil
	}

	return errors.New("first letter must be uppercase")
})
