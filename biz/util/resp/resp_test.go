package resp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"blog_api/biz/model/dto"
	"blog_api/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
)

type teapotErr struct{}

func (teapotErr) Error() string   { return "short and stout" }
func (teapotErr) StatusCode() int { return http.StatusTeapot }

func TestTranslate(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", errs.ValidationFailed.SetViolations([]string{"Name is required"}), 400, "Validation Error"},
		{"duplicate", errs.EmailDuplicated, 400, "Email already registered"},
		{"malformed id", errs.MalformedReference.SetErr(errors.New("bad hex")), 400, "Invalid ID format"},
		{"not found", errs.UserNotExist, 404, "User not found"},
		{"too many", errs.TooManyRequest, 429, "too many request"},
		{"status coder", teapotErr{}, http.StatusTeapot, "short and stout"},
		{"server error", errs.ServerError.SetErr(errors.New("db down")), 500, "Server Error"},
		{"plain error", errors.New("boom"), 500, "Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := Translate(tt.err, false)
			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Empty(t, body.Detail)
		})
	}
}

func TestTranslate_Violations(t *testing.T) {
	violations := []string{"Name is required", "Please provide a valid email address"}
	_, body := Translate(errs.ValidationFailed.SetViolations(violations), false)
	assert.Equal(t, violations, body.Errors)
	assert.Equal(t, int(errs.ParamError.Code()), body.Code)
}

func TestTranslate_DevDetail(t *testing.T) {
	err := errs.ServerError.SetErr(errors.New("connection refused"))

	status, body := Translate(err, true)
	assert.Equal(t, 500, status)
	assert.Contains(t, body.Detail, "connection refused")
	// pkg/errors stack frame
	assert.Contains(t, body.Detail, "resp_test.go")

	_, body = Translate(err, false)
	assert.Empty(t, body.Detail)
}

func TestTranslate_WrappedBizErr(t *testing.T) {
	err := errors.Join(errors.New("ctx"), errs.EmailDuplicated)
	status, body := Translate(err, false)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Email already registered", body.Message)
}

func TestFailResp(t *testing.T) {
	c := app.NewContext(0)
	FailResp(context.Background(), c, errs.EmailDuplicated)

	assert.Equal(t, 400, c.Response.StatusCode())
	var body dto.CommonResp
	assert.NoError(t, json.Unmarshal(c.Response.Body(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Email already registered", body.Message)
	assert.Nil(t, body.Errors)
}

func TestAbortWithErr(t *testing.T) {
	c := app.NewContext(0)
	AbortWithErr(context.Background(), c, errs.TooManyRequest)

	assert.True(t, c.IsAborted())
	assert.Equal(t, 429, c.Response.StatusCode())
}

func TestSucceed(t *testing.T) {
	r := Succeed("User registered successfully")
	assert.True(t, r.Success)
	assert.Equal(t, 0, r.Code)
}
