package db

import (
	"context"

	"ClipStream.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ToggleSubscription flips the (subscriber, channel) pair. No counter rides
// along: subscriber counts are computed on demand.
func ToggleSubscription(ctx context.Context, subscriberID, channelID int64) (subscribed bool, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).Delete(&model.Subscription{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			subscribed = false
			return nil
		}
		subscribed = true
		return tx.Create(&model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}).Error
	})
	if err != nil {
		return false, errors.Wrap(err, "ToggleSubscription failed")
	}
	return subscribed, nil
}

func IsSubscribed(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "IsSubscribed failed")
	}
	return count > 0, nil
}
