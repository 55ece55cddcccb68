package handlers

import (
	"context"

	"ClipStream.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type ListVideosParam struct {
	VideoID int64  `query:"id"`
	UserID  int64  `query:"user_id"`
	IsShort string `query:"is_short"`
}

type UploadVideoParam struct {
	Action      string `json:"action"`
	UserID      int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoData   string `json:"video_data"`
	Duration    int64  `json:"duration"`
	IsShort     bool   `json:"is_short"`
}

// UserRef is the owner identity embedded in video responses.
type UserRef struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
}

func sendError(ctx context.Context, c *app.RequestContext, err error) {
	e := errno.ConvertErr(err)
	if e.ErrCode == errno.ServiceErrCode {
		hlog.CtxErrorf(ctx, "video handler error: %+v", err)
	}
	c.JSON(e.HTTPStatus(), map[string]interface{}{"error": e.ErrMsg})
}

func MethodNotAllowed(ctx context.Context, c *app.RequestContext) {
	sendError(ctx, c, errno.MethodNotAllowedErr)
}
