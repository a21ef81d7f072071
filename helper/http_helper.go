package helper

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"

	"go-blog-platform/models"
	"go-blog-platform/tokens"
)

// HTTPHelper validates form submissions and renders error pages. One instance
// is shared by all handlers.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		log.Fatal("Failed to register validator translations: ", err)
	}

	return &HTTPHelper{Validate: validate, Translator: trans}
}

// ValidateForm returns translated field errors keyed by snake_case field name,
// or nil when the form is valid.
func (u *HTTPHelper) ValidateForm(form interface{}) map[string][]string {
	err := u.Validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string][]string{"form": {"invalid submission"}}
	}

	translated := validationErrors.Translate(u.Translator)
	fieldErrors := map[string][]string{}
	for _, fe := range validationErrors {
		key := Underscore(fe.StructField())
		fieldErrors[key] = append(fieldErrors[key], translated[fe.Namespace()])
	}
	return fieldErrors
}

// FirstError flattens a ValidateForm result into a single user-facing line.
func (u *HTTPHelper) FirstError(fieldErrors map[string][]string) string {
	for _, msgs := range fieldErrors {
		if len(msgs) > 0 {
			return msgs[0]
		}
	}
	return ""
}

// GetStatusCode maps a domain error to the HTTP status of its rendered page.
func (u *HTTPHelper) GetStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrDuplicateIdentity):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, tokens.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// RenderError renders the shared error page. Storage faults are logged with
// detail; the page only ever shows the message passed in.
func (u *HTTPHelper) RenderError(c *gin.Context, err error, message string) {
	status := u.GetStatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.HTML(status, "error.html", gin.H{
		"title":   "Error",
		"message": message,
	})
}

// Render404 renders the catch-all not-found page.
func (u *HTTPHelper) Render404(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{"title": "404"})
}

// Underscore converts a Go struct field name to its snake_case form key.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
