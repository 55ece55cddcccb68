package handlers

import (
	"context"
	"net/http"

	"ClipStream.com/cmd/interaction/service"
	"ClipStream.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// InteractionAction dispatches on the action field: like, subscribe, comment,
// view, check_subscription.
func InteractionAction(ctx context.Context, c *app.RequestContext) {
	var param InteractionParam
	if err := c.Bind(&param); err != nil {
		sendError(ctx, c, errno.ParamErr.WithMessage("Invalid request"))
		return
	}

	var userID int64
	if param.UserID != nil {
		userID = *param.UserID
	}

	switch param.Action {
	case "like":
		liked, likesCount, err := service.NewToggleLikeService(ctx).ToggleLike(param.VideoID, userID)
		if err != nil {
			sendError(ctx, c, err)
			return
		}
		c.JSON(http.StatusOK, map[string]interface{}{
			"success":     true,
			"liked":       liked,
			"likes_count": likesCount,
		})
	case "subscribe":
		subscribed, err := service.NewToggleSubscriptionService(ctx).ToggleSubscription(param.SubscriberID, param.ChannelID)
		if err != nil {
			sendError(ctx, c, err)
			return
		}
		c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"subscribed": subscribed,
		})
	case "comment":
		if string(c.Method()) == http.MethodGet {
			listComments(ctx, c, &param)
			return
		}
		postComment(ctx, c, &param, userID)
	case "view":
		viewsCount, err := service.NewRecordViewService(ctx).RecordView(param.VideoID, param.UserID)
		if err != nil {
			sendError(ctx, c, err)
			return
		}
		c.JSON(http.StatusOK, map[string]interface{}{
			"success":     true,
			"views_count": viewsCount,
		})
	case "check_subscription":
		subscribed, err := service.NewCheckSubscriptionService(ctx).CheckSubscription(param.SubscriberID, param.ChannelID)
		if err != nil {
			sendError(ctx, c, err)
			return
		}
		c.JSON(http.StatusOK, map[string]interface{}{"subscribed": subscribed})
	default:
		sendError(ctx, c, errno.ParamErr.WithMessage("Invalid action"))
	}
}

func listComments(ctx context.Context, c *app.RequestContext, param *InteractionParam) {
	rows, err := service.NewListCommentsService(ctx).ListComments(param.VideoID)
	if err != nil {
		sendError(ctx, c, err)
		return
	}
	comments := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, map[string]interface{}{
			"id":         row.ID,
			"content":    row.Content,
			"created_at": row.CreatedAt,
			"user": UserRef{
				ID:          row.AuthorID,
				Username:    row.AuthorUsername,
				DisplayName: row.AuthorDisplayName,
				AvatarURL:   row.AuthorAvatarURL,
			},
		})
	}
	c.JSON(http.StatusOK, map[string]interface{}{"comments": comments})
}

func postComment(ctx context.Context, c *app.RequestContext, param *InteractionParam, userID int64) {
	comment, err := service.NewPostCommentService(ctx).PostComment(param.VideoID, userID, param.Content)
	if err != nil {
		sendError(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"comment_id": comment.ID,
		"created_at": comment.CreatedAt,
	})
}
