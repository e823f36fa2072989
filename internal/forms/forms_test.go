package forms

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestCommentFormValidate(t *testing.T) {
	form := CommentForm{Name: "  alice  ", Body: "nice one"}
	assert.Empty(t, form.Validate())
	assert.Equal(t, "alice", form.Name)

	form = CommentForm{Body: "anonymous praise"}
	assert.Empty(t, form.Validate())

	form = CommentForm{Name: "bob", Body: "   "}
	errs := form.Validate()
	assert.Contains(t, errs, "body")

	form = CommentForm{Name: strings.Repeat("x", 81), Body: "hi"}
	errs = form.Validate()
	assert.Contains(t, errs, "name")
}

func TestRequestFormFieldErrors(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	err := v.Struct(RequestForm{Email: "not-an-email", Subject: strings.Repeat("x", 60)})
	errs := FieldErrors(err)
	assert.Equal(t, "Enter a valid e-mail address.", errs["email"])
	assert.Equal(t, "Must be at most 50 characters.", errs["subject"])
	assert.Equal(t, "This field is required.", errs["request"])
	assert.NotContains(t, errs, "name")

	err = v.Struct(RequestForm{
		Name:    "alice",
		Email:   "a@b.com",
		Subject: "Wrong tag",
		Request: "Please fix the tags.",
	})
	assert.NoError(t, err)
	assert.Empty(t, FieldErrors(err))
}

func TestFieldErrorsNonValidatorError(t *testing.T) {
	errs := FieldErrors(assert.AnError)
	assert.Contains(t, errs, "form")
}
