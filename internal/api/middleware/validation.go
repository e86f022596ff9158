package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// passwordSpecials is the allowed special-character set for the password rule.
const passwordSpecials = "!@#$%^&*"

// SetupValidator configures the binding validator: JSON tag names in error
// output and the custom password complexity rule.
func SetupValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}

	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v.RegisterValidation("password", validatePassword)
}

// validatePassword enforces the credential rule: 8-16 characters with at
// least one uppercase letter and one of !@#$%^&*.
func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 || len(password) > 16 {
		return false
	}

	hasUpper := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
			break
		}
	}

	return hasUpper && strings.ContainsAny(password, passwordSpecials)
}

// HandleValidationError writes a 400 carrying every violated field rule, not
// just the first one.
func HandleValidationError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]gin.H, 0, len(validationErrors))
		for _, e := range validationErrors {
			details = append(details, gin.H{
				"param": e.Field(),
				"msg":   validationMessage(e),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": details})
		return
	}

	// Malformed JSON and other binding failures
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}

// validationMessage returns a human-readable message for a field error.
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Please provide a valid email"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "password":
		return "Password must be 8-16 characters with an uppercase letter and one of " + passwordSpecials
	case "eqfield":
		return "Must match " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	default:
		return "Invalid value"
	}
}
