package contact

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Reason identifies the first check a submission failed.
type Reason string

const (
	ReasonFormConstraint  Reason = "form_constraint"
	ReasonMissingFields   Reason = "missing_fields"
	ReasonNameTooShort    Reason = "name_too_short"
	ReasonNameTooLong     Reason = "name_too_long"
	ReasonEmailTooLong    Reason = "email_too_long"
	ReasonEmailWhitespace Reason = "email_whitespace"
	ReasonEmailFormat     Reason = "email_format"
	ReasonMessageTooShort Reason = "message_too_short"
	ReasonMessageTooLong  Reason = "message_too_long"
)

// ErrInvalid matches every *ValidationError through errors.Is.
var ErrInvalid = errors.New("contact: invalid submission")

// ValidationError reports the field and reason of the first failed check.
// Field is empty for checks that span all fields.
type ValidationError struct {
	Field  string
	Reason Reason
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("contact: %s", e.Reason)
	}
	return fmt.Sprintf("contact: invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// ReasonOf extracts the reason from a validation error, or "" for any other error.
func ReasonOf(err error) Reason {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Reason
	}
	return ""
}

// formConstraints mirrors the required/minlength/maxlength attributes of the HTML form.
type formConstraints struct {
	Name    string `validate:"required,min=2,max=80"`
	Email   string `validate:"required,max=254"`
	Message string `validate:"required,min=10,max=2000"`
}

type rule struct {
	field  string
	tag    string
	reason Reason
}

// formRules run on normalized values after the native form constraints passed.
var formRules = []rule{
	{"name", "min=2", ReasonNameTooShort},
	{"name", "max=80", ReasonNameTooLong},
	{"email", "max=254", ReasonEmailTooLong},
	{"email", "nospace", ReasonEmailWhitespace},
	{"message", "min=10", ReasonMessageTooShort},
	{"message", "max=2000", ReasonMessageTooLong},
}

// relayRules never trust the form: they also require an "@" in the address.
var relayRules = []rule{
	{"name", "min=2", ReasonNameTooShort},
	{"name", "max=80", ReasonNameTooLong},
	{"email", "max=254", ReasonEmailTooLong},
	{"email", "nospace", ReasonEmailWhitespace},
	{"email", "contains=@", ReasonEmailFormat},
	{"message", "min=10", ReasonMessageTooShort},
	{"message", "max=2000", ReasonMessageTooLong},
}

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("nospace", noSpace); err != nil {
		panic(err)
	}
	return v
})

func noSpace(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}

// ValidateForm runs the browser-side sequence: native form constraints on the raw input,
// then presence, then the per-field limits on the normalized values. The first failing
// check wins.
func ValidateForm(raw Submission) (Submission, error) {
	if err := validate().Struct(formConstraints(raw)); err != nil {
		field, reason := constraintFailure(err)
		return Submission{}, &ValidationError{Field: field, Reason: reason}
	}
	return check(Normalize(raw), formRules)
}

// Check runs the relay-side sequence on untrusted input.
func Check(raw Submission) (Submission, error) {
	return check(Normalize(raw), relayRules)
}

func check(s Submission, rules []rule) (Submission, error) {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return Submission{}, &ValidationError{Reason: ReasonMissingFields}
	}
	for _, r := range rules {
		if err := validate().Var(s.field(r.field), r.tag); err != nil {
			return Submission{}, &ValidationError{Field: r.field, Reason: r.reason}
		}
	}
	return s, nil
}

func (s Submission) field(name string) string {
	switch name {
	case "name":
		return s.Name
	case "email":
		return s.Email
	case "message":
		return s.Message
	}
	return ""
}

// constraintReasons maps a failed form attribute to the reason of the matching field limit.
var constraintReasons = map[string]map[string]Reason{
	"name":    {"min": ReasonNameTooShort, "max": ReasonNameTooLong},
	"email":   {"max": ReasonEmailTooLong},
	"message": {"min": ReasonMessageTooShort, "max": ReasonMessageTooLong},
}

// constraintFailure names the first field whose form attribute failed. A missing value reports
// ReasonMissingFields; anything unmapped falls back to ReasonFormConstraint.
func constraintFailure(err error) (string, Reason) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", ReasonFormConstraint
	}
	field := strings.ToLower(verrs[0].Field())
	if verrs[0].Tag() == "required" {
		return field, ReasonMissingFields
	}
	if reason, ok := constraintReasons[field][verrs[0].Tag()]; ok {
		return field, reason
	}
	return field, ReasonFormConstraint
}
