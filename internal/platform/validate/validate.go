// Package validate centraliza la instancia de go-playground/validator que
// usan los handlers para validar requests decodificados.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un request y devuelve un error legible con el primer campo
// inválido (suficiente para respuestas 400; no acumulamos todos los errores).
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("campo %s inválido (%s)", strings.ToLower(fe.Field()), fe.Tag())
	}
	return err
}

// Var valida un valor suelto con un tag, p.ej. Var(email, "required,email").
func Var(value any, tag string) error {
	return v.Var(value, tag)
}
