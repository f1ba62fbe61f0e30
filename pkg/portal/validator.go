package portal

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	driver *validator.Validate
	errors map[string]string
}

func GetDefaultValidator() *Validator {
	return MakeValidatorFrom(
		validator.New(validator.WithRequiredStructEnabled()),
	)
}

func MakeValidatorFrom(driver *validator.Validate) *Validator {
	registerCustomValidations(driver)

	return &Validator{
		driver: driver,
		errors: make(map[string]string),
	}
}

func (v *Validator) Passes(abstract any) (bool, error) {
	v.errors = make(map[string]string)

	err := v.driver.Struct(abstract)

	if err == nil {
		return true, nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return false, err
	}

	for _, violation := range violations {
		v.errors[violation.Namespace()] = fmt.Sprintf(
			"failed on the [%s] rule", violation.Tag(),
		)
	}

	return false, err
}

func (v *Validator) Rejects(abstract any) (bool, error) {
	passes, err := v.Passes(abstract)

	return !passes, err
}

func (v *Validator) GetErrors() map[string]string {
	return v.errors
}

func (v *Validator) GetErrorsAsJson() string {
	if len(v.errors) == 0 {
		return ""
	}

	bytes, err := json.Marshal(v.errors)

	if err != nil {
		return ""
	}

	return string(bytes)
}
