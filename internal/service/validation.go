package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/campusdine/mess-manager-api/internal/models"
)

var (
	regNoPattern = regexp.MustCompile(`^\d{2}[A-Z]{3}\d{4}$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]*$`)
	blockPattern = regexp.MustCompile(`^[A-Z]$`)
	roomPattern  = regexp.MustCompile(`^\d{3}$`)
)

// NewValidator builds the shared validator with the domain's custom rules
// registered. The rules are pure format checks; nothing here touches storage.
func NewValidator() *validator.Validate {
	v := validator.New()

	mustRegister(v, "reg_no", matches(regNoPattern))
	mustRegister(v, "name_chars", matches(namePattern))
	mustRegister(v, "block_letter", matches(blockPattern))
	mustRegister(v, "room_number", matches(roomPattern))
	mustRegister(v, "mess_name", oneOf(models.Messes))
	mustRegister(v, "mess_type", oneOf(models.MessTypes))
	mustRegister(v, "waste_type", oneOf(models.WasteTypes))
	mustRegister(v, "meal_type", oneOf(models.MealTypes))
	mustRegister(v, "priority", oneOf(models.Priorities))

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, candidate := range allowed {
			if value == candidate {
				return true
			}
		}
		return false
	}
}

// fieldMessages maps a failing validation tag to a human-readable message.
// Templates containing %s are interpolated with the offending value.
type fieldMessages map[string]string

// validationMessages translates validator output into the full ordered list
// of field-level messages. One message per failing field; every failing
// field is reported, not just the first.
func validationMessages(err error, catalog map[string]fieldMessages) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		tags, ok := catalog[fe.Field()]
		if !ok {
			messages = append(messages, fmt.Sprintf("%s is invalid", fe.Field()))
			continue
		}
		template, ok := tags[fe.Tag()]
		if !ok {
			messages = append(messages, fmt.Sprintf("%s is invalid", fe.Field()))
			continue
		}
		if strings.Contains(template, "%s") {
			messages = append(messages, fmt.Sprintf(template, fmt.Sprintf("%v", fe.Value())))
		} else {
			messages = append(messages, template)
		}
	}
	return messages
}
