package handlers

import (
	"context"
	"time"

	"ClipStream.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type AuthActionParam struct {
	Action      string `json:"action" query:"action"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// RegisteredUser is the public projection returned right after registration.
type RegisteredUser struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoggedInUser adds the channel fields the login response carries.
type LoggedInUser struct {
	ID                 int64     `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	DisplayName        string    `json:"display_name"`
	ChannelDescription *string   `json:"channel_description"`
	AvatarURL          *string   `json:"avatar_url"`
	CreatedAt          time.Time `json:"created_at"`
}

func sendError(ctx context.Context, c *app.RequestContext, err error) {
	e := errno.ConvertErr(err)
	if e.ErrCode == errno.ServiceErrCode {
		hlog.CtxErrorf(ctx, "auth handler error: %+v", err)
	}
	c.JSON(e.HTTPStatus(), map[string]interface{}{"error": e.ErrMsg})
}

func MethodNotAllowed(ctx context.Context, c *app.RequestContext) {
	sendError(ctx, c, errno.MethodNotAllowedErr)
}
