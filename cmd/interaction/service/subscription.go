package service

import (
	"context"

	"ClipStream.com/cmd/interaction/dal/db"
	"ClipStream.com/pkg/errno"
	"github.com/pkg/errors"
)

type ToggleSubscriptionService struct {
	ctx context.Context
}

func NewToggleSubscriptionService(ctx context.Context) *ToggleSubscriptionService {
	return &ToggleSubscriptionService{ctx: ctx}
}

func (s *ToggleSubscriptionService) ToggleSubscription(subscriberID, channelID int64) (bool, error) {
	if subscriberID == 0 || channelID == 0 {
		return false, errno.ParamErr.WithMessage("subscriber_id and channel_id are required")
	}

	subscribed, err := db.ToggleSubscription(s.ctx, subscriberID, channelID)
	if err != nil {
		return false, errors.WithMessage(err, "dal.ToggleSubscription failed")
	}
	return subscribed, nil
}

type CheckSubscriptionService struct {
	ctx context.Context
}

func NewCheckSubscriptionService(ctx context.Context) *CheckSubscriptionService {
	return &CheckSubscriptionService{ctx: ctx}
}

func (s *CheckSubscriptionService) CheckSubscription(subscriberID, channelID int64) (bool, error) {
	if subscriberID == 0 || channelID == 0 {
		return false, errno.ParamErr.WithMessage("subscriber_id and channel_id are required")
	}

	subscribed, err := db.IsSubscribed(s.ctx, subscriberID, channelID)
	if err != nil {
		return false, errors.WithMessage(err, "dal.IsSubscribed failed")
	}
	return subscribed, nil
}
