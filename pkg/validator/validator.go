package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ParseError turns a gin binding error into per-field Spanish messages.
func ParseError(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		campo := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("El campo %s es obligatorio", campo))
		case "min":
			msgs = append(msgs, fmt.Sprintf("El campo %s debe tener al menos %s caracteres", campo, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("El campo %s no puede exceder %s caracteres", campo, fe.Param()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("El campo %s no es un email válido", campo))
		default:
			msgs = append(msgs, fmt.Sprintf("El campo %s no es válido", campo))
		}
	}
	return msgs
}
