package repository

import (
	"errors"
	"reflect"
	"strings"

	"assistencia_tecnica/internal/domain/dataerr"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// validateInput runs the struct tags of in. Missing or blank required
// fields produce the generic "fill every required field" message; other
// failures name the offending field.
func validateInput(op string, in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return dataerr.Validation(op, "%s", err.Error())
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" || fe.Tag() == "notblank" {
			return dataerr.New(dataerr.KindValidation, op, "")
		}
	}
	return dataerr.Validation(op, "Valor inválido para o campo %s.", verrs[0].Field())
}

func requireID(op, id string) error {
	if strings.TrimSpace(id) == "" {
		return dataerr.Validation(op, "Identificador não informado.")
	}
	return nil
}

// notBlank rejects patches that would clear a required field.
func notBlank(op string, fields map[string]*string) error {
	for name, v := range fields {
		if v != nil && strings.TrimSpace(*v) == "" {
			return dataerr.Validation(op, "O campo %s não pode ficar vazio.", name)
		}
	}
	return nil
}
