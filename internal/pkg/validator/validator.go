package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate runs struct-tag validation and returns a field -> failed-rule
// map, or nil when the value passes.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		errs[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return errs
}

// Var validates a single value against a rule expression, e.g. "e164".
func Var(v interface{}, rule string) bool {
	return validate.Var(v, rule) == nil
}
