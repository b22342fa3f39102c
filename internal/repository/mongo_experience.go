package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mc-experience-service/internal/repository/model"
)

func (m *mongoRepository) GetPlayerExperience(ctx context.Context, playerId uuid.UUID) (*model.PlayerExperience, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var mongoResult model.PlayerExperience
	err := m.experienceCollection.FindOne(ctx, bson.M{"_id": playerId}).Decode(&mongoResult)
	if err != nil {
		return nil, err
	}

	return &mongoResult, nil
}

func (m *mongoRepository) GetPlayersExperience(ctx context.Context, playerIds []uuid.UUID) ([]*model.PlayerExperience, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.experienceCollection.Find(ctx, bson.M{"_id": bson.M{"$in": playerIds}})
	if err != nil {
		return nil, err
	}

	var result []*model.PlayerExperience
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (m *mongoRepository) SaveExperienceWithUpsert(ctx context.Context, p *model.PlayerExperience) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.experienceCollection.UpdateByID(ctx, p.Id, bson.M{"$set": p}, options.Update().SetUpsert(true))
	return err
}

func (m *mongoRepository) GetTopPlayers(ctx context.Context, limit int64) ([]*model.PlayerExperience, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.M{"totalXp": -1}).
		SetLimit(limit)

	cursor, err := m.experienceCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var result []*model.PlayerExperience
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (m *mongoRepository) CreateExperienceGrant(ctx context.Context, grant *model.ExperienceGrant) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.grantCollection.InsertOne(ctx, grant)
	return err
}

func (m *mongoRepository) GetExperienceGrants(ctx context.Context, playerId uuid.UUID, page int64, size int64) ([]*model.ExperienceGrant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.M{"_id": -1}).
		SetSkip(page * size).
		SetLimit(size)

	cursor, err := m.grantCollection.Find(ctx, bson.M{"playerId": playerId}, opts)
	if err != nil {
		return nil, err
	}

	var result []*model.ExperienceGrant
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}
