package errs

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

type Error interface {
	Error() string
	Code() int32
	Msg() string
	// Violations lists field level problems, only set on ParamError.
	Violations() []string
	Unwrap() error
	SetErr(err error) Error
	SetMsg(msg string) Error
	SetViolations(violations []string) Error
}

type bizError struct {
	code       int32
	msg        string
	violations []string
	cause      error
}

func (bizErr *bizError) Error() string {
	if bizErr.cause != nil {
		return fmt.Sprintf("%d:%s: %v", bizErr.code, bizErr.msg, bizErr.cause)
	}
	return fmt.Sprintf("%d:%s", bizErr.code, bizErr.msg)
}

func (bizErr *bizError) Code() int32 {
	return bizErr.code
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

func (bizErr *bizError) Violations() []string {
	return bizErr.violations
}

func (bizErr *bizError) Unwrap() error {
	return bizErr.cause
}

// SetErr attaches the underlying cause. The public message is kept, the
// cause is only exposed through Error() and Unwrap().
func (bizErr *bizError) SetErr(err error) Error {
	cp := *bizErr
	if err != nil {
		cp.cause = pkgerrors.WithStack(err)
	}
	return &cp
}

func (bizErr *bizError) SetMsg(msg string) Error {
	cp := *bizErr
	cp.msg = msg
	return &cp
}

func (bizErr *bizError) SetViolations(violations []string) Error {
	cp := *bizErr
	cp.violations = append([]string(nil), violations...)
	return &cp
}

func New(code int32, msg string) Error {
	return &bizError{
		code: code,
		msg:  msg,
	}
}

// As extracts a biz error from an error chain.
func As(err error) (Error, bool) {
	var bizErr Error
	if errors.As(err, &bizErr) {
		return bizErr, true
	}
	return nil, false
}

func ErrorEqual(err1, err2 Error) bool {
	// 都为空
	if err1 == nil && err2 == nil {
		return true
	}

	// 只有一个不为空
	if err1 == nil || err2 == nil {
		return false
	}

	// 都不为空
	return err1.Code() == err2.Code()
}

var (
	Success            = New(0, "success")
	ServerError        = New(1_0001, "Server Error")
	ParamError         = New(1_0002, "Validation Error")
	TooManyRequest     = New(1_0004, "too many request")
	RequestBlocked     = New(1_0006, "request is blocked")
	MalformedReference = New(1_0008, "Invalid ID format")
	BadRequestBody     = New(1_0009, "Invalid request body")

	UserNotExist    = New(2_0001, "User not found")
	EmailDuplicated = New(2_0003, "Email already registered")

	// ValidationFailed is the registration flavour of ParamError.
	ValidationFailed = ParamError
)
