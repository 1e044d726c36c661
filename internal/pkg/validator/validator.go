// Package validator wraps go-playground/validator with a package-level
// instance, Solana-aware custom tags and standardized error formatting.
//
// Besides the stock tags it registers:
//
//   - solana_pubkey: the string must decode as a base58 Solana public key.
package validator

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned by Validate
// when any rule is violated.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

// errStringFormat describes one violated rule.
//
// Example: "'Config.Telegram.BotToken': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("solana_pubkey", isSolanaPublicKey); err != nil {
		panic(err)
	}
}

// isSolanaPublicKey reports whether the field holds a base58 encoded 32 byte key.
func isSolanaPublicKey(fl gvalidator.FieldLevel) bool {
	_, err := solana.PublicKeyFromBase58(fl.Field().String())
	return err == nil
}

// formatError turns validator errors into ErrValidationFailed joined with one
// message per violated field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
//
// It returns nil when every rule holds. Otherwise the error matches
// ErrValidationFailed with errors.Is and lists each violation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}
	return nil
}
