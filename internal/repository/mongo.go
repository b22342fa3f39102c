package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"mc-experience-service/internal/config"
	"mc-experience-service/internal/repository/registrytypes"
)

const (
	databaseName = "mc-experience-service"

	experienceCollectionName = "playerExperience"
	grantCollectionName      = "experienceGrant"
)

type mongoRepository struct {
	database *mongo.Database

	experienceCollection *mongo.Collection
	grantCollection      *mongo.Collection
}

func NewMongoRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg *config.MongoDBConfig) (Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetRegistry(createCodecRegistry()))
	if err != nil {
		return nil, err
	}

	database := client.Database(databaseName)
	repo := &mongoRepository{
		database:             database,
		experienceCollection: database.Collection(experienceCollectionName),
		grantCollection:      database.Collection(grantCollectionName),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := client.Disconnect(ctx); err != nil {
			logger.Errorw("failed to disconnect from mongo", err)
		}
	}()

	repo.createIndexes(ctx, logger)
	logger.Infow("created mongo indexes")

	return repo, nil
}

var (
	experienceIndexes = []mongo.IndexModel{
		{
			Keys:    bson.M{"totalXp": -1},
			Options: options.Index().SetName("totalXp_desc"),
		},
		{
			Keys:    bson.M{"username": 1},
			Options: options.Index().SetName("username"),
		},
	}

	grantIndexes = []mongo.IndexModel{
		{
			Keys:    bson.M{"playerId": 1},
			Options: options.Index().SetName("playerId"),
		},
		{
			Keys:    bson.D{{Key: "playerId", Value: 1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("playerId_id"),
		},
	}
)

func (m *mongoRepository) createIndexes(ctx context.Context, logger *zap.SugaredLogger) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collIndexes := map[*mongo.Collection][]mongo.IndexModel{
		m.experienceCollection: experienceIndexes,
		m.grantCollection:      grantIndexes,
	}

	wg := sync.WaitGroup{}
	wg.Add(len(collIndexes))

	for coll, indexes := range collIndexes {
		go func(coll *mongo.Collection, indexes []mongo.IndexModel) {
			defer wg.Done()
			_, err := m.createCollIndexes(ctx, coll, indexes)
			if err != nil {
				panic(fmt.Sprintf("failed to create indexes for collection %s: %s", coll.Name(), err))
			}
		}(coll, indexes)
	}

	wg.Wait()
}

func (m *mongoRepository) createCollIndexes(ctx context.Context, coll *mongo.Collection, indexes []mongo.IndexModel) (int, error) {
	result, err := coll.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return 0, err
	}

	return len(result), nil
}

func (m *mongoRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return m.database.Client().Ping(ctx, readpref.Primary())
}

func createCodecRegistry() *bsoncodec.Registry {
	return bson.NewRegistryBuilder().
		RegisterTypeEncoder(registrytypes.UUIDType, bsoncodec.ValueEncoderFunc(registrytypes.UuidEncodeValue)).
		RegisterTypeDecoder(registrytypes.UUIDType, bsoncodec.ValueDecoderFunc(registrytypes.UuidDecodeValue)).
		Build()
}
