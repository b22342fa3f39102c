package repository

import (
	"context"

	"github.com/google/uuid"

	"mc-experience-service/internal/repository/model"
)

type Repository interface {
	Ping(ctx context.Context) error

	GetPlayerExperience(ctx context.Context, playerId uuid.UUID) (*model.PlayerExperience, error)
	GetPlayersExperience(ctx context.Context, playerIds []uuid.UUID) ([]*model.PlayerExperience, error)
	SaveExperienceWithUpsert(ctx context.Context, p *model.PlayerExperience) error

	// GetTopPlayers returns up to limit players ordered by total experience
	// descending.
	GetTopPlayers(ctx context.Context, limit int64) ([]*model.PlayerExperience, error)

	CreateExperienceGrant(ctx context.Context, grant *model.ExperienceGrant) error
	GetExperienceGrants(ctx context.Context, playerId uuid.UUID, page int64, size int64) ([]*model.ExperienceGrant, error)
}
