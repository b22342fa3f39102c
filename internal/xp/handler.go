// Package xp handles experience grants, where both the kafka consumer and
// the HTTP API need to make the same state change.
package xp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"mc-experience-service/internal/kafka/message"
	"mc-experience-service/internal/repository"
	"mc-experience-service/internal/repository/model"
	"mc-experience-service/internal/utils/experience"
	"mc-experience-service/internal/webhook"
)

type Handler interface {
	// GrantExperience awards experience to a player, recomputes their level
	// and notifies listeners of the change. A previously unseen player is
	// created on their first grant.
	GrantExperience(ctx context.Context, playerId uuid.UUID, username string, amount int, reason string) (*Result, error)
}

// Result describes the state change a grant produced.
type Result struct {
	PreviousExperience int
	NewExperience      int

	PreviousLevel int
	NewLevel      int
}

// Notifier publishes experience change events.
type Notifier interface {
	ExperienceChange(ctx context.Context, playerId uuid.UUID, reason string, oldXP int, newXP int, oldLevel int, newLevel int)
}

// Broadcaster fans an event out to live subscribers.
type Broadcaster interface {
	Broadcast(v any)
}

var ErrNonPositiveAmount = errors.New("grant amount must be positive")

type handlerImpl struct {
	logger *zap.SugaredLogger

	repo     repository.Repository
	notifier Notifier

	// webhook and broadcaster are optional.
	webhook     webhook.Webhook
	broadcaster Broadcaster
}

func NewHandler(logger *zap.SugaredLogger, repo repository.Repository, notifier Notifier, webhook webhook.Webhook,
	broadcaster Broadcaster) Handler {

	return &handlerImpl{
		logger: logger,

		repo:     repo,
		notifier: notifier,

		webhook:     webhook,
		broadcaster: broadcaster,
	}
}

func (h *handlerImpl) GrantExperience(ctx context.Context, playerId uuid.UUID, username string, amount int,
	reason string) (*Result, error) {

	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	now := time.Now()

	p, err := h.repo.GetPlayerExperience(ctx, playerId)
	if err != nil && err == mongo.ErrNoDocuments {
		p = &model.PlayerExperience{
			Id:         playerId,
			Username:   username,
			FirstGrant: now,
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get player experience: %w", err)
	}

	if username != "" {
		p.Username = username
	}

	oldXP := p.TotalXP
	oldLevel := p.Level

	newXP := oldXP + amount
	newLevel, err := experience.LevelForXP(newXP)
	if err != nil {
		return nil, fmt.Errorf("failed to compute level: %w", err)
	}

	p.TotalXP = newXP
	p.Level = newLevel
	p.LastGrant = now

	if err := h.repo.SaveExperienceWithUpsert(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save player experience: %w", err)
	}

	grant := &model.ExperienceGrant{
		Id:         primitive.NewObjectIDFromTimestamp(now),
		PlayerId:   playerId,
		Amount:     amount,
		Reason:     reason,
		XPAfter:    newXP,
		LevelAfter: newLevel,
	}

	if err := h.repo.CreateExperienceGrant(ctx, grant); err != nil {
		h.logger.Errorw("error creating experience grant", "error", err)
	}

	h.notifier.ExperienceChange(ctx, playerId, reason, oldXP, newXP, oldLevel, newLevel)

	if h.broadcaster != nil {
		h.broadcaster.Broadcast(&message.ExperienceChangeMessage{
			PlayerId:           playerId.String(),
			Reason:             reason,
			PreviousExperience: oldXP,
			NewExperience:      newXP,
			PreviousLevel:      oldLevel,
			NewLevel:           newLevel,
		})
	}

	if newLevel > oldLevel && h.webhook != nil {
		h.webhook.SendLevelUpWebhook(p.Username, playerId, newLevel)
	}

	return &Result{
		PreviousExperience: oldXP,
		NewExperience:      newXP,
		PreviousLevel:      oldLevel,
		NewLevel:           newLevel,
	}, nil
}
