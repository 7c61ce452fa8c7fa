package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultPasswordMinLength = 6
	// bcrypt ignores everything after the 72nd byte
	PasswordMaxBytes = 72

	NameMaxLength  = 64
	EmailMaxLength = 254
)

// RegisterFields is the normalized result of a successful registration check.
type RegisterFields struct {
	Name     string
	Email    string
	Password string
}

type Validator struct {
	v              *validator.Validate
	passwordMinLen int
}

func New(passwordMinLen int) *Validator {
	if passwordMinLen <= 0 {
		passwordMinLen = DefaultPasswordMinLength
	}

	v := validator.New()
	if err := v.RegisterValidation("pwdbytes", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= PasswordMaxBytes
	}); err != nil {
		panic(err)
	}

	return &Validator{v: v, passwordMinLen: passwordMinLen}
}

type fieldRule struct {
	label string
	value string
	tag   string
}

// RegisterInput checks every field and returns all violations found. It
// never touches storage. On success the returned fields are normalized:
// name trimmed, email trimmed and lower-cased, password untouched.
func (val *Validator) RegisterInput(name, email, password string) (RegisterFields, []string) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	rules := []fieldRule{
		{"Name", name, fmt.Sprintf("required,max=%d", NameMaxLength)},
		{"Email", email, fmt.Sprintf("required,email,max=%d", EmailMaxLength)},
		{"Password", password, fmt.Sprintf("required,min=%d,pwdbytes", val.passwordMinLen)},
	}

	var violations []string
	for _, r := range rules {
		if msg := val.check(r); msg != "" {
			violations = append(violations, msg)
		}
	}
	if len(violations) > 0 {
		return RegisterFields{}, violations
	}

	return RegisterFields{
		Name:     name,
		Email:    strings.ToLower(email),
		Password: password,
	}, nil
}

func (val *Validator) check(r fieldRule) string {
	err := val.v.Var(r.value, r.tag)
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Sprintf("%s is invalid", r.label)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", r.label)
	case "email":
		return "Please provide a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", r.label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", r.label, fe.Param())
	case "pwdbytes":
		return fmt.Sprintf("%s must be at most %d bytes long", r.label, PasswordMaxBytes)
	default:
		return fmt.Sprintf("%s is invalid", r.label)
	}
}
