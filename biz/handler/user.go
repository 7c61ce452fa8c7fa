package handler

import (
	"context"
	"net/http"

	"blog_api/biz/model/convert"
	"blog_api/biz/model/dto"
	"blog_api/biz/model/errs"
	"blog_api/biz/service/user"
	"blog_api/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type UserHandler struct {
	svc *user.Service
}

func NewUserHandler(svc *user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register 用户注册接口
//
//	@Tags			user
//	@Summary		用户注册接口
//	@Description	Registers a user with name, email and password. The email is stored lower-cased.
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.RegisterReq	true	"register request body"
//	@Success		201	{object}	dto.RegisterResp
//	@Failure		400	{object}	dto.CommonResp
//	@Failure		500	{object}	dto.CommonResp
//	@Router			/api/users/register [POST]
func (h *UserHandler) Register(ctx context.Context, c *app.RequestContext) {
	var req dto.RegisterReq
	if err := c.Bind(&req); err != nil {
		hlog.CtxNoticef(ctx, "Bind err: %v", err)
		resp.AbortWithErr(ctx, c, errs.BadRequestBody.SetErr(err))
		return
	}

	u, bizErr := h.svc.Register(ctx, req.Name, req.Email, req.Password)
	if bizErr != nil {
		resp.FailResp(ctx, c, bizErr)
		return
	}

	c.JSON(http.StatusCreated, &dto.RegisterResp{
		CommonResp: resp.Succeed("User registered successfully"),
		User:       convert.UserDomainToView(u),
	})
}

// GetUser 查询用户接口
//
//	@Tags			user
//	@Summary		查询用户接口
//	@Description	Returns the public fields of a user.
//	@Produce		json
//	@Param			id	path		string	true	"user id"
//	@Success		200	{object}	dto.GetUserResp
//	@Failure		400	{object}	dto.CommonResp
//	@Failure		404	{object}	dto.CommonResp
//	@Router			/api/users/{id} [GET]
func (h *UserHandler) GetUser(ctx context.Context, c *app.RequestContext) {
	u, bizErr := h.svc.GetByUserID(ctx, c.Param("id"))
	if bizErr != nil {
		resp.FailResp(ctx, c, bizErr)
		return
	}

	c.JSON(http.StatusOK, &dto.GetUserResp{
		CommonResp: resp.Succeed(errs.Success.Msg()),
		User:       convert.UserDomainToView(u),
	})
}
