package model

import "time"

// Subscription encodes "subscribed" by row presence, same toggle contract as Like.
// Subscriber counts are computed on demand, never denormalized.
type Subscription struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SubscriberID int64     `gorm:"column:subscriber_id;uniqueIndex:idx_subs_pair;not null" json:"subscriber_id"`
	ChannelID    int64     `gorm:"column:channel_id;uniqueIndex:idx_subs_pair;not null" json:"channel_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
