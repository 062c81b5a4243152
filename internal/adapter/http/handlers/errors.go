package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"fundacoes_backoffice/internal/usecase"
	"fundacoes_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// Binding errors report fields by their JSON name.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// bindError maps a ShouldBindJSON failure to a 400. Tag violations become
// field issues; malformed JSON stays a plain invalid payload.
func bindError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errInvalidPayload
	}
	issues := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		issues[fe.Field()] = bindingMessage(fe)
	}
	return pkg.NewValidationError("Invalid request", issues)
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	}
	return "invalid"
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// asValidationError maps a *usecase.ValidationError to a 400 carrying its
// field issues.
func asValidationError(err error) (*pkg.AppError, bool) {
	var verr *usecase.ValidationError
	if !errors.As(err, &verr) {
		return nil, false
	}
	return pkg.NewValidationError("Invalid request", verr.Issues), true
}

func validationIssue(field, msg string) *pkg.AppError {
	return pkg.NewValidationError("Invalid request", map[string]string{field: msg})
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// detailOf returns what err adds on top of the sentinel it wraps, if anything.
func detailOf(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error()
	if msg == prefix {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, prefix), ":"))
}
