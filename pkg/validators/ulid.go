package validators

import (
	"errors"
	"fmt"

	"github.com/asaskevich/govalidator"

	"github.com/plaenen/ulid/pkg/ulid"
)

// canonicalULIDPattern matches the form String produces: upper case, with a
// first symbol of 0-7 so no padding bits are set.
const canonicalULIDPattern = `^[0-7][0-9A-HJKMNP-TV-Z]{25}$`

// ValidateULID checks that value parses as a ULID. Lower-case input and a
// set padding bit are accepted, matching ulid.Parse.
func ValidateULID(value string, fieldName string) *ValidationResult {
	if result := ValidateStringEmpty(value, fieldName); !result.IsValid {
		return result
	}

	userFriendlyName := ToUserFriendlyName(fieldName)

	_, err := ulid.Parse(value)

	var charErr *ulid.CharacterError
	switch {
	case err == nil:
		return NewValidationResult(true, fieldName,
			WithValue(value),
			WithValidationCode(ValidationCodeSuccess),
		)
	case errors.Is(err, ulid.ErrInvalidLength):
		return NewValidationResult(false, fieldName,
			WithValue(value),
			WithMessage(fmt.Sprintf("%s must be exactly %d characters long.", userFriendlyName, ulid.EncodedSize)),
			WithSuggestedAction(fmt.Sprintf("Please provide a %d-character %s.", ulid.EncodedSize, userFriendlyName)),
			WithValidationCode(ValidationCodeInvalidLength),
			WithMetadata("length", len(value)),
		)
	case errors.As(err, &charErr):
		return NewValidationResult(false, fieldName,
			WithValue(value),
			WithMessage(fmt.Sprintf("%s contains the invalid character %q at position %d.", userFriendlyName, charErr.Char, charErr.Pos+1)),
			WithSuggestedAction(fmt.Sprintf("Please use only the characters %s in %s.", ulid.Alphabet, userFriendlyName)),
			WithValidationCode(ValidationCodeInvalidCharacter),
			WithMetadata("position", charErr.Pos),
		)
	default:
		return NewValidationResult(false, fieldName,
			WithValue(value),
			WithMessage(fmt.Sprintf("%s is not a valid identifier.", userFriendlyName)),
			WithValidationCode(ValidationCodeUnspecified),
		)
	}
}

// ValidateCanonicalULID additionally requires the exact form ULID.String
// produces, so the stored value round-trips byte for byte.
func ValidateCanonicalULID(value string, fieldName string) *ValidationResult {
	result := ValidateULID(value, fieldName)
	if !result.IsValid {
		return result
	}

	if !govalidator.Matches(value, canonicalULIDPattern) {
		userFriendlyName := ToUserFriendlyName(fieldName)
		id, _ := ulid.Parse(value)
		return NewValidationResult(false, fieldName,
			WithValue(value),
			WithMessage(fmt.Sprintf("%s is not in canonical form.", userFriendlyName)),
			WithSuggestedAction(fmt.Sprintf("Please use %s.", id.String())),
			WithValidationCode(ValidationCodeNonCanonical),
			WithMetadata("canonical", id.String()),
		)
	}

	return result
}
