package handlers

import (
	"context"
	"net/http"

	"ClipStream.com/cmd/profile/dal/db"
	"ClipStream.com/cmd/profile/service"
	"ClipStream.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// UpdateProfile applies the supplied optional fields only.
func UpdateProfile(ctx context.Context, c *app.RequestContext) {
	var param UpdateProfileParam
	if err := c.Bind(&param); err != nil {
		sendError(ctx, c, errno.ParamErr.WithMessage("Invalid request body"))
		return
	}

	patch := &db.UserPatch{
		DisplayName:        param.DisplayName,
		ChannelDescription: param.ChannelDescription,
		AvatarURL:          param.AvatarURL,
	}
	user, err := service.NewUpdateProfileService(ctx).UpdateProfile(param.UserID, patch)
	if err != nil {
		sendError(ctx, c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"user": map[string]interface{}{
			"id":                  user.ID,
			"username":            user.Username,
			"display_name":        user.DisplayName,
			"channel_description": user.ChannelDescription,
			"avatar_url":          user.AvatarURL,
		},
	})
}
