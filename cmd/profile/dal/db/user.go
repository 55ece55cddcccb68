package db

import (
	"context"

	"ClipStream.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UserPatch carries the optional profile fields of a partial update. Nil means
// "leave untouched".
type UserPatch struct {
	DisplayName        *string
	ChannelDescription *string
	AvatarURL          *string
}

func (p *UserPatch) Empty() bool {
	return p.DisplayName == nil && p.ChannelDescription == nil && p.AvatarURL == nil
}

func GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("id = ?", userID).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "GetUserByID failed")
	}
	return &user, nil
}

func GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("username = ?", username).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "GetUserByUsername failed")
	}
	return &user, nil
}

// UpdateUser applies the supplied fields in one UPDATE and reloads the row.
func UpdateUser(ctx context.Context, userID int64, patch *UserPatch) (*model.User, error) {
	updates := map[string]interface{}{}
	if patch.DisplayName != nil {
		updates["display_name"] = *patch.DisplayName
	}
	if patch.ChannelDescription != nil {
		updates["channel_description"] = *patch.ChannelDescription
	}
	if patch.AvatarURL != nil {
		updates["avatar_url"] = *patch.AvatarURL
	}

	// RowsAffected can be 0 on a no-op update, so existence is checked explicitly.
	if _, err := GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return nil, errors.Wrap(err, "UpdateUser failed")
	}
	return GetUserByID(ctx, userID)
}

func CountSubscribers(ctx context.Context, channelID int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "CountSubscribers failed")
	}
	return count, nil
}

func CountVideos(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "CountVideos failed")
	}
	return count, nil
}
