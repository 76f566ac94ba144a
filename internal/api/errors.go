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
	"go.uber.org/zap"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

var registerTagNames sync.Once

// useJSONFieldNames makes validator report fields by their json tag.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes the body into dst and writes the error response when it
// cannot. It reports whether the handler should continue.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		tooLarge  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &verrs):
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{
				Loc:  []string{"body", fe.Field()},
				Msg:  validationMessage(fe),
				Type: validationType(fe),
			})
		}
		h.rejectInvalid(c, details)
	case errors.As(err, &typeErr):
		h.rejectInvalid(c, []FieldError{{
			Loc:  []string{"body", typeErr.Field},
			Msg:  fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			Type: "type_error",
		}})
	case errors.As(err, &tooLarge):
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":  "payload_too_large",
			"detail": fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
		})
	case errors.Is(err, io.EOF):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  "invalid_payload",
			"detail": "request body is required",
		})
	case errors.As(err, &syntaxErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  "invalid_payload",
			"detail": fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset),
		})
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  "invalid_payload",
			"detail": err.Error(),
		})
	}
	return false
}

func (h *Handler) rejectInvalid(c *gin.Context, details []FieldError) {
	h.logger.Info("request validation failed",
		zap.String("path", c.FullPath()),
		zap.Any("detail", details),
	)
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
		"error":  "validation_failed",
		"detail": details,
	})
}

// fail logs err and answers 500 with the operation-prefixed message.
func (h *Handler) fail(c *gin.Context, operation string, err error) {
	h.logger.Error(operation,
		zap.String("path", c.FullPath()),
		zap.String("request_id", RequestIDFrom(c)),
		zap.Error(err),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"detail": fmt.Sprintf("%s: %v", operation, err),
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return "must be greater than or equal to " + fe.Param()
	case "max":
		return "must be less than or equal to " + fe.Param()
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

func validationType(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "missing"
	}
	return "value_error." + fe.Tag()
}
