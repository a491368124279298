package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/invoice-studio/internal/domain"
)

// validate instancia única (cachea la metadata de los structs).
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate aplica las etiquetas `validate` del DTO. Los errores se devuelven envueltos en
// domain.ErrInvalidInput con los campos que fallaron.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
