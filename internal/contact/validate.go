// Package contact validates the contact form and runs its simulated
// submission. No message is delivered anywhere.
package contact

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Draft holds the contact form field values.
type Draft struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,contactemail"`
	Subject string `form:"subject"`
	Message string `form:"message" validate:"required"`
}

// Errors maps a field name to its message. An empty map means valid.
type Errors map[string]string

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	err := v.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic("contact: register email rule: " + err.Error())
	}
	return v
}

var messages = map[string]map[string]string{
	FieldName:    {"required": "Name is required"},
	FieldEmail:   {"required": "Email is required", "contactemail": "Please enter a valid email"},
	FieldMessage: {"required": "Message is required"},
}

// Validate returns the errors for d. Values are trimmed before checking, so
// whitespace-only fields count as blank.
func Validate(d Draft) Errors {
	d = d.Trimmed()
	errs := Errors{}

	err := validate.Struct(d)
	if err == nil {
		return errs
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs
	}
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		if msg, ok := messages[field][fe.Tag()]; ok {
			errs[field] = msg
		}
	}
	return errs
}

// Trimmed returns d with surrounding whitespace removed from every field.
func (d Draft) Trimmed() Draft {
	return Draft{
		Name:    strings.TrimSpace(d.Name),
		Email:   strings.TrimSpace(d.Email),
		Subject: strings.TrimSpace(d.Subject),
		Message: strings.TrimSpace(d.Message),
	}
}

// Set updates one field by name. Unknown names are ignored.
func (d *Draft) Set(field, value string) {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldSubject:
		d.Subject = value
	case FieldMessage:
		d.Message = value
	}
}
