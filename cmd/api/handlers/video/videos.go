package handlers

import (
	"context"
	"net/http"

	"ClipStream.com/cmd/video/service"
	"ClipStream.com/pkg/errno"
	"ClipStream.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
)

// ListOrGetVideos serves GET /api/videos: a single video when id is given,
// otherwise the filtered newest-first list.
func ListOrGetVideos(ctx context.Context, c *app.RequestContext) {
	var param ListVideosParam
	if err := c.Bind(&param); err != nil {
		sendError(ctx, c, errno.ParamErr.WithMessage("Invalid query parameters"))
		return
	}

	if param.VideoID != 0 {
		detail, err := service.NewGetVideoService(ctx).GetVideo(param.VideoID)
		if err != nil {
			sendError(ctx, c, err)
			return
		}
		c.JSON(http.StatusOK, map[string]interface{}{
			"id":            detail.ID,
			"title":         detail.Title,
			"description":   detail.Description,
			"video_url":     detail.VideoURL,
			"thumbnail_url": detail.ThumbnailURL,
			"duration":      detail.Duration,
			"is_short":      detail.IsShort,
			"views_count":   detail.ViewsCount,
			"likes_count":   detail.LikesCount,
			"created_at":    detail.CreatedAt,
			"user": UserRef{
				ID:          detail.AuthorID,
				Username:    detail.AuthorUsername,
				DisplayName: detail.AuthorDisplayName,
				AvatarURL:   detail.AuthorAvatarURL,
			},
		})
		return
	}

	rows, err := service.NewListVideosService(ctx).List(param.UserID, param.IsShort != "")
	if err != nil {
		sendError(ctx, c, err)
		return
	}
	videos := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		videos = append(videos, map[string]interface{}{
			"id":            row.ID,
			"title":         row.Title,
			"video_url":     row.VideoURL,
			"thumbnail_url": row.ThumbnailURL,
			"duration":      row.Duration,
			"is_short":      row.IsShort,
			"views_count":   row.ViewsCount,
			"created_at":    row.CreatedAt,
			"user": UserRef{
				ID:          row.AuthorID,
				Username:    row.AuthorUsername,
				DisplayName: row.AuthorDisplayName,
				AvatarURL:   row.AuthorAvatarURL,
			},
		})
	}
	c.JSON(http.StatusOK, map[string]interface{}{"videos": videos})
}

// VideoAction serves POST /api/videos; upload is the only action.
func VideoAction(ctx context.Context, c *app.RequestContext) {
	var param UploadVideoParam
	if err := c.Bind(&param); err != nil {
		sendError(ctx, c, errno.ParamErr.WithMessage("Invalid request body"))
		return
	}
	if param.Action != "upload" {
		sendError(ctx, c, errno.ParamErr.WithMessage("Invalid action"))
		return
	}

	video, err := service.NewUploadVideoService(ctx, oss.Default()).Upload(&service.UploadRequest{
		UserID:      param.UserID,
		Title:       param.Title,
		Description: param.Description,
		VideoData:   param.VideoData,
		Duration:    param.Duration,
		IsShort:     param.IsShort,
	})
	if err != nil {
		sendError(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"video_id":   video.ID,
		"video_url":  video.VideoURL,
		"created_at": video.CreatedAt,
	})
}
