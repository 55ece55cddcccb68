package db

import (
	"context"
	"time"

	"ClipStream.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ToggleLike flips the (video, user) like inside one transaction together with
// the counter adjustment, so the likes_count can never drift from the likes
// table on a crash between statements. Delete-if-exists-else-insert; the unique
// index on the pair serializes concurrent callers.
func ToggleLike(ctx context.Context, videoID, userID int64) (liked bool, likesCount int64, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("video_id = ? AND user_id = ?", videoID, userID).Delete(&model.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			if err := tx.Model(&model.Video{}).Where("id = ?", videoID).
				UpdateColumn("likes_count", gorm.Expr("CASE WHEN likes_count > 0 THEN likes_count - 1 ELSE 0 END")).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Create(&model.Like{VideoID: videoID, UserID: userID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Video{}).Where("id = ?", videoID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error; err != nil {
				return err
			}
			liked = true
		}

		var video model.Video
		if err := tx.Select("likes_count").Where("id = ?", videoID).Take(&video).Error; err != nil {
			return err
		}
		likesCount = video.LikesCount
		return nil
	})
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, 0, errors.Wrap(err, "ToggleLike failed")
	}
	return liked, likesCount, err
}

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrap(err, "CreateComment failed")
	}
	return nil
}

// CommentDetail is a comment row annotated with its author's public identity.
type CommentDetail struct {
	ID                int64     `gorm:"column:id" json:"id"`
	Content           string    `gorm:"column:content" json:"content"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	AuthorID          int64     `gorm:"column:author_id" json:"author_id"`
	AuthorUsername    string    `gorm:"column:author_username" json:"author_username"`
	AuthorDisplayName string    `gorm:"column:author_display_name" json:"author_display_name"`
	AuthorAvatarURL   *string   `gorm:"column:author_avatar_url" json:"author_avatar_url"`
}

func ListComments(ctx context.Context, videoID int64) ([]CommentDetail, error) {
	rows := make([]CommentDetail, 0)
	err := DB.WithContext(ctx).Table("comments").
		Select("comments.id, comments.content, comments.created_at, " +
			"users.id AS author_id, users.username AS author_username, " +
			"users.display_name AS author_display_name, users.avatar_url AS author_avatar_url").
		Joins("JOIN users ON comments.user_id = users.id").
		Where("comments.video_id = ?", videoID).
		Order("comments.created_at DESC, comments.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "ListComments failed")
	}
	return rows, nil
}

// AddView appends a view row and bumps the counter in the same transaction.
// Repeat views from the same user all count.
func AddView(ctx context.Context, videoID int64, userID *int64) (viewsCount int64, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.View{VideoID: videoID, UserID: userID}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Video{}).Where("id = ?", videoID).
			UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
			return err
		}

		var video model.Video
		if err := tx.Select("views_count").Where("id = ?", videoID).Take(&video).Error; err != nil {
			return err
		}
		viewsCount = video.ViewsCount
		return nil
	})
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, errors.Wrap(err, "AddView failed")
	}
	return viewsCount, err
}
