package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var Validate = validator.New()

// ValidationError maps validator.v10 failures to the standard 422 envelope.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], msg)
	}
	return JsonValidationError(c, fieldErrors)
}

// BindAndValidate parses the body then runs struct validation.
func BindAndValidate(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := Validate.Struct(dst); err != nil {
		return ValidationError(c, err)
	}
	return nil
}
