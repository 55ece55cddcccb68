package handlers

import (
	"context"
	"net/http"

	"ClipStream.com/cmd/profile/service"
	"ClipStream.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// GetProfile returns the public profile plus its aggregate counts.
func GetProfile(ctx context.Context, c *app.RequestContext) {
	var param GetProfileParam
	if err := c.Bind(&param); err != nil {
		sendError(ctx, c, errno.ParamErr.WithMessage("Invalid query parameters"))
		return
	}

	user, subscribers, videos, err := service.NewGetProfileService(ctx).GetProfile(param.UserID, param.Username)
	if err != nil {
		sendError(ctx, c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"id":                  user.ID,
		"username":            user.Username,
		"email":               user.Email,
		"display_name":        user.DisplayName,
		"channel_description": user.ChannelDescription,
		"avatar_url":          user.AvatarURL,
		"created_at":          user.CreatedAt,
		"subscribers_count":   subscribers,
		"videos_count":        videos,
	})
}
