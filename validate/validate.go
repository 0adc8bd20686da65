package validate

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct checks the `validate` tags on a payload struct and flattens the
// first failure into a message the form can show inline.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "required" {
			return fmt.Errorf("le champ %s est obligatoire", fe.Field())
		}
		return fmt.Errorf("le champ %s est invalide", fe.Field())
	}
	return err
}

// Date parses a form date (YYYY-MM-DD).
func Date(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date invalide: %s", value)
	}
	return t, nil
}
