package validator

import (
	"encoding/json"
	"fmt"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerDayValidation accepts a calendar day in constant.DateFormat.
func registerDayValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.Parse(constant.DateFormat, str)

	return err == nil
}

// registerNotAfterValidation checks that a day is not after the day held by the named sibling
// field. Either side being empty passes.
func registerNotAfterValidation(field val.FieldLevel) bool {
	from, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	to := field.Parent().FieldByName(field.Param())
	if !to.IsValid() || to.Kind() != reflect.String {
		return false
	}

	if from == constant.Empty || to.String() == constant.Empty {
		return true
	}

	fromDay, err := timezone.Parse(constant.DateFormat, from)
	if err != nil {
		return true
	}

	toDay, err := timezone.Parse(constant.DateFormat, to.String())
	if err != nil {
		return true
	}

	return !fromDay.After(toDay)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != constant.Empty && name != "-" {
				return name
			}
		}

		return field.Name
	})

	err := validate.RegisterValidation("day", registerDayValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("notafter", registerNotAfterValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
