package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"book-catalog/internal/api/models"
)

// Report validation failures under the JSON field names clients sent,
// not the Go struct field names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// respondValidationError answers a failed request binding with a 422 carrying
// field-level detail, without echoing the offending values back.
func respondValidationError(c *gin.Context, err error) {
	var fieldErrors []models.FieldError

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field: fe.Field(),
				Msg:   validationMessage(fe),
			})
		}
	} else {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "body",
			Msg:   "Invalid request body",
		})
	}

	c.AbortWithStatusJSON(http.StatusUnprocessableEntity,
		models.ValidationErrorResponse{Detail: fieldErrors})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "max":
		return fmt.Sprintf("String should have at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("String should have at least %s characters", fe.Param())
	case "email":
		return "value is not a valid email address"
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}
