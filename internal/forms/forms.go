package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CommentForm carries a submitted comment. Name is optional; empty means
// the comment displays as anonymous.
type CommentForm struct {
	Name string `form:"name"`
	Body string `form:"body"`
}

// Validate returns per-field messages; an empty map means the form is good
// to persist.
func (f *CommentForm) Validate() map[string]string {
	errs := map[string]string{}
	f.Name = strings.TrimSpace(f.Name)
	if len(f.Name) > 80 {
		errs["name"] = "Name must be at most 80 characters."
	}
	if strings.TrimSpace(f.Body) == "" {
		errs["body"] = "Comment body must not be empty."
	}
	return errs
}

// RequestForm is the post correction request. The binding tags drive gin's
// form binding and validator.
type RequestForm struct {
	Name    string `form:"name" binding:"omitempty,max=25"`
	Email   string `form:"email" binding:"required,email"`
	Subject string `form:"subject" binding:"required,max=50"`
	Request string `form:"request" binding:"required"`
}

// FieldErrors flattens a binding error into per-field messages keyed by the
// lowercased field name, for re-rendering the form alongside the rejected
// input.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				out[field] = "This field is required."
			case "email":
				out[field] = "Enter a valid e-mail address."
			case "max":
				out[field] = fmt.Sprintf("Must be at most %s characters.", fe.Param())
			default:
				out[field] = "Invalid value."
			}
		}
		return out
	}
	if err != nil {
		out["form"] = "Invalid form submission."
	}
	return out
}
