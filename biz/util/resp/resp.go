package resp

import (
	"context"
	"fmt"
	"net/http"

	"blog_api/biz/config"
	"blog_api/biz/model/dto"
	"blog_api/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// StatusCoder is implemented by errors that carry their own HTTP status.
type StatusCoder interface {
	StatusCode() int
}

var bizStatus = map[int32]int{
	errs.ParamError.Code():         http.StatusBadRequest,
	errs.BadRequestBody.Code():     http.StatusBadRequest,
	errs.EmailDuplicated.Code():    http.StatusBadRequest,
	errs.MalformedReference.Code(): http.StatusBadRequest,
	errs.UserNotExist.Code():       http.StatusNotFound,
	errs.RequestBlocked.Code():     http.StatusForbidden,
	errs.TooManyRequest.Code():     http.StatusTooManyRequests,
}

// Translate maps any error to an HTTP status and the failure body.
// Unclassified errors become a 500 whose detail is only filled in dev.
func Translate(err error, dev bool) (int, *dto.CommonResp) {
	if bizErr, ok := errs.As(err); ok {
		if status, ok := bizStatus[bizErr.Code()]; ok {
			return status, &dto.CommonResp{
				Success: false,
				Code:    int(bizErr.Code()),
				Message: bizErr.Msg(),
				Errors:  bizErr.Violations(),
			}
		}
	} else if sc, ok := err.(StatusCoder); ok && sc.StatusCode() > 0 {
		return sc.StatusCode(), &dto.CommonResp{
			Success: false,
			Code:    int(errs.ServerError.Code()),
			Message: err.Error(),
		}
	}

	body := &dto.CommonResp{
		Success: false,
		Code:    int(errs.ServerError.Code()),
		Message: errs.ServerError.Msg(),
	}
	if dev && err != nil {
		body.Detail = detail(err)
	}
	return http.StatusInternalServerError, body
}

func detail(err error) string {
	if bizErr, ok := errs.As(err); ok && bizErr.Unwrap() != nil {
		return fmt.Sprintf("%+v", bizErr.Unwrap())
	}
	return fmt.Sprintf("%+v", err)
}

// Succeed builds the common part of a successful response.
func Succeed(msg string) dto.CommonResp {
	return dto.CommonResp{
		Success: true,
		Code:    int(errs.Success.Code()),
		Message: msg,
	}
}

func FailResp(ctx context.Context, c *app.RequestContext, err error) {
	status, body := translateAndLog(ctx, err)
	c.JSON(status, body)
}

func AbortWithErr(ctx context.Context, c *app.RequestContext, err error) {
	status, body := translateAndLog(ctx, err)
	c.AbortWithStatusJSON(status, body)
}

func translateAndLog(ctx context.Context, err error) (int, *dto.CommonResp) {
	status, body := Translate(err, config.IsDevelopment())
	if status >= http.StatusInternalServerError {
		hlog.CtxErrorf(ctx, "request failed: %+v", err)
	} else {
		hlog.CtxInfof(ctx, "request rejected: %v", err)
	}
	return status, body
}
