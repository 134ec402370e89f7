package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pageza/recipes/backend/internal/middleware"
	"github.com/pageza/recipes/backend/internal/model"
)

const (
	detailRecipeNotFound = "Recipe not found"
	detailInternal       = "Internal Server Error"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the body of 422 responses.
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}

var registerTagNames sync.Once

// useJSONFieldNames makes validator report fields by their json tag so 422
// details name the same keys the client sent.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

func abortWithValidation(c *gin.Context, details ...FieldError) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: details})
}

func abortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, middleware.ErrorResponse{Detail: detail})
}

// bindingErrorDetails turns an error from ShouldBindJSON into field errors.
func bindingErrorDetails(err error) []FieldError {
	var (
		verrs     validator.ValidationErrors
		timeErr   *model.TimeOfDayError
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)

	switch {
	case errors.As(err, &verrs):
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Message: validationMessage(fe)})
		}
		return details
	case errors.As(err, &timeErr):
		return []FieldError{{Field: "cooking_time", Message: timeErr.Error()}}
	case errors.As(err, &typeErr):
		return []FieldError{{Field: typeErr.Field, Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return []FieldError{{Field: "body", Message: "malformed JSON"}}
	case errors.Is(err, io.EOF):
		return []FieldError{{Field: "body", Message: "request body is required"}}
	default:
		return []FieldError{{Field: "body", Message: err.Error()}}
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
