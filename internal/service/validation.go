package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"hydroponics/internal/models"
)

const (
	msgRequired = "This field is required."
	msgBlank    = "This field may not be blank."
)

// Field limits of the stored records.
const (
	maxTitleLength    = 100
	maxLocationLength = 100
	maxUsernameLength = 150
)

// fixedLimit is the precision of a stored reading: total digits and
// digits after the decimal point.
type fixedLimit struct {
	digits int
	places int32
}

var (
	phLimit          = fixedLimit{digits: 4, places: 2}
	temperatureLimit = fixedLimit{digits: 5, places: 2}
	tdsLimit         = fixedLimit{digits: 5, places: 2}
)

// checkText validates an optional text field. Missing values are an
// error only when required is set.
func checkText(v *ValidationError, field string, value *string, required bool, maxLen int) {
	if value == nil {
		if required {
			v.Add(field, msgRequired)
		}
		return
	}
	if strings.TrimSpace(*value) == "" {
		v.Add(field, msgBlank)
		return
	}
	if utf8.RuneCountInString(*value) > maxLen {
		v.Add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", maxLen))
	}
}

func checkFixed(v *ValidationError, field string, value *models.Fixed, required bool, lim fixedLimit) {
	if value == nil {
		if required {
			v.Add(field, msgRequired)
		}
		return
	}
	places := value.Places()
	whole := value.IntegerDigits()
	switch {
	case places > lim.places:
		v.Add(field, fmt.Sprintf("Ensure that there are no more than %d decimal places.", lim.places))
	case whole > lim.digits-int(lim.places):
		v.Add(field, fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", lim.digits-int(lim.places)))
	}
}
