package submission

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldErrors flattens a validation error into the field-keyed message map
// carried by a failed Progress descriptor. Non-validation errors land under
// a catch-all key so they are never silently dropped.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			fields[field] = ferr.Error()
		}
		return fields
	}

	return map[string]string{"_form": err.Error()}
}
