package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/Tiendas-api/internal/application/dto"
)

// validate instancia única del validador; se configura para reportar los
// nombres JSON de los campos, que es lo que el cliente envió.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct valida el DTO contra sus tags `validate` y devuelve la lista
// de errores por campo, o nil si el payload es válido. Se invoca ANTES del
// use case: un payload malformado nunca llega a los repositorios.
func validateStruct(in any) []dto.FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dto.FieldError{{Field: "", Message: "payload inválido"}}
	}
	out := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, dto.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "min":
		return "debe tener al menos " + fe.Param() + " caracteres"
	case "max":
		return "supera el largo máximo de " + fe.Param()
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "uuid":
		return "debe ser un UUID válido"
	}
	return "valor inválido"
}
