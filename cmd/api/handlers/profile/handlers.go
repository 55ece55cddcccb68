package handlers

import (
	"context"

	"ClipStream.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type GetProfileParam struct {
	UserID   int64  `query:"user_id"`
	Username string `query:"username"`
}

type UpdateProfileParam struct {
	UserID             int64   `json:"user_id"`
	DisplayName        *string `json:"display_name"`
	ChannelDescription *string `json:"channel_description"`
	AvatarURL          *string `json:"avatar_url"`
}

func sendError(ctx context.Context, c *app.RequestContext, err error) {
	e := errno.ConvertErr(err)
	if e.ErrCode == errno.ServiceErrCode {
		hlog.CtxErrorf(ctx, "profile handler error: %+v", err)
	}
	c.JSON(e.HTTPStatus(), map[string]interface{}{"error": e.ErrMsg})
}

func MethodNotAllowed(ctx context.Context, c *app.RequestContext) {
	sendError(ctx, c, errno.MethodNotAllowedErr)
}
