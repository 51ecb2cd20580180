package services

import (
	"context"
	"errors"
	"log"

	"citifix-be/models"
	"citifix-be/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResolveRewardPoints is credited to the reporting citizen each time one of
// their issues is marked Resolved.
const ResolveRewardPoints = 10

// RewardLedger credits reward points to users. The reward is an auxiliary
// benefit of resolving an issue, never a correctness requirement of the
// transition that triggered it.
type RewardLedger struct {
	users repository.UserStore
}

func NewRewardLedger(users repository.UserStore) *RewardLedger {
	return &RewardLedger{users: users}
}

// Credit adds points to the user's rewardPoints counter. A missing user is a
// logged no-op: losing the reward must not abort the status transition that
// triggered it.
func (l *RewardLedger) Credit(ctx context.Context, userID primitive.ObjectID, points int64) {
	if _, err := l.users.IncrementRewardPoints(ctx, userID, points); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Printf("reward credit skipped: user %s not found", userID.Hex())
			return
		}
		log.Printf("reward credit failed for user %s: %v", userID.Hex(), err)
	}
}
