// Package validate wraps struct validation and id generation for the
// rest of the application.
package validate

import (
	"errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"
)

var validate *validator.Validate

var translator ut.Translator

func init() {
	validate = validator.New()

	translator, _ = ut.New(en.New(), en.New()).GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validate, translator)
}

// Check validates val against its struct tags and returns the first
// violation as a human-readable error.
func Check(val any) error {
	err := validate.Struct(val)
	if err == nil {
		return nil
	}

	verrors, ok := err.(validator.ValidationErrors)
	if !ok || len(verrors) == 0 {
		return err
	}

	return errors.New(verrors[0].Translate(translator))
}

// GenerateID allocates a random identifier with negligible collision
// probability. Module and file ids are never reused after deletion, so
// randomness rather than a counter keeps them unique for the lifetime
// of a product across editing sessions.
func GenerateID() string {
	return uuid.NewString()
}
