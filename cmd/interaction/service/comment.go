package service

import (
	"context"
	"strings"

	"ClipStream.com/cmd/interaction/dal/db"
	"ClipStream.com/cmd/model"
	"ClipStream.com/pkg/errno"
	"github.com/pkg/errors"
)

type PostCommentService struct {
	ctx context.Context
}

func NewPostCommentService(ctx context.Context) *PostCommentService {
	return &PostCommentService{ctx: ctx}
}

// PostComment appends a comment. No counter is touched.
func (s *PostCommentService) PostComment(videoID, userID int64, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if videoID == 0 || userID == 0 || content == "" {
		return nil, errno.ParamErr.WithMessage("video_id, user_id and content are required")
	}

	comment := &model.Comment{VideoID: videoID, UserID: userID, Content: content}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dal.CreateComment failed")
	}
	return comment, nil
}

type ListCommentsService struct {
	ctx context.Context
}

func NewListCommentsService(ctx context.Context) *ListCommentsService {
	return &ListCommentsService{ctx: ctx}
}

func (s *ListCommentsService) ListComments(videoID int64) ([]db.CommentDetail, error) {
	if videoID == 0 {
		return nil, errno.ParamErr.WithMessage("video_id is required")
	}

	comments, err := db.ListComments(s.ctx, videoID)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.ListComments failed")
	}
	return comments, nil
}
