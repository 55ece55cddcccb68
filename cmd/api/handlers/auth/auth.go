package handlers

import (
	"context"
	"net/http"

	"ClipStream.com/cmd/auth/service"
	"ClipStream.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// AuthAction dispatches on the action field: register or login.
func AuthAction(ctx context.Context, c *app.RequestContext) {
	var param AuthActionParam
	if err := c.Bind(&param); err != nil {
		sendError(ctx, c, errno.ParamErr.WithMessage("Invalid request body"))
		return
	}

	switch param.Action {
	case "register":
		user, token, err := service.NewRegisterService(ctx).Register(
			param.Username, param.Email, param.Password, param.DisplayName)
		if err != nil {
			sendError(ctx, c, err)
			return
		}
		c.JSON(http.StatusOK, map[string]interface{}{
			"success": true,
			"token":   token,
			"user": RegisteredUser{
				ID:          user.ID,
				Username:    user.Username,
				Email:       user.Email,
				DisplayName: user.DisplayName,
				CreatedAt:   user.CreatedAt,
			},
		})
	case "login":
		user, token, err := service.NewLoginService(ctx).Login(param.Username, param.Password)
		if err != nil {
			sendError(ctx, c, err)
			return
		}
		c.JSON(http.StatusOK, map[string]interface{}{
			"success": true,
			"token":   token,
			"user": LoggedInUser{
				ID:                 user.ID,
				Username:           user.Username,
				Email:              user.Email,
				DisplayName:        user.DisplayName,
				ChannelDescription: user.ChannelDescription,
				AvatarURL:          user.AvatarURL,
				CreatedAt:          user.CreatedAt,
			},
		})
	default:
		sendError(ctx, c, errno.ParamErr.WithMessage("Invalid action"))
	}
}
