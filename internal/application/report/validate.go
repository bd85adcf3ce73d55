package report

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vladislav25v/sales-bonus/internal/domain/sales"
)

// inputValidator checks only the structural contract of a dataset: the
// three collections must be present and non-empty. Element fields and
// foreign keys are not inspected here.
var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New()
	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput rejects a run before any accumulator is built
func validateInput(data *sales.Dataset, opts *sales.Options) error {
	if data == nil {
		return sales.NewValidationError(sales.MsgIncorrectData)
	}
	if err := inputValidator.Struct(data); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return sales.NewValidationError(sales.MsgIncorrectData)
		}
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}
		return sales.NewValidationError(sales.MsgIncorrectData, fields...)
	}
	if opts == nil {
		return sales.NewValidationError(sales.MsgIncorrectOptions)
	}
	return opts.Validate()
}
