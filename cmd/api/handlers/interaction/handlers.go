package handlers

import (
	"context"

	"ClipStream.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type InteractionParam struct {
	Action       string `json:"action" query:"action"`
	VideoID      int64  `json:"video_id" query:"video_id"`
	UserID       *int64 `json:"user_id" query:"user_id"`
	SubscriberID int64  `json:"subscriber_id" query:"subscriber_id"`
	ChannelID    int64  `json:"channel_id" query:"channel_id"`
	Content      string `json:"content"`
}

// UserRef is the commenter identity embedded in comment listings.
type UserRef struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
}

func sendError(ctx context.Context, c *app.RequestContext, err error) {
	e := errno.ConvertErr(err)
	if e.ErrCode == errno.ServiceErrCode {
		hlog.CtxErrorf(ctx, "interaction handler error: %+v", err)
	}
	c.JSON(e.HTTPStatus(), map[string]interface{}{"error": e.ErrMsg})
}

func MethodNotAllowed(ctx context.Context, c *app.RequestContext) {
	sendError(ctx, c, errno.MethodNotAllowedErr)
}
