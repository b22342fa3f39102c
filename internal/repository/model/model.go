package model

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlayerExperience struct {
	Id       uuid.UUID `bson:"_id"`
	Username string    `bson:"username"`

	TotalXP int `bson:"totalXp"`

	// Level is derived from TotalXP through the level curve. It is stored
	// alongside it so leaderboard queries can sort and display without
	// recomputing the curve.
	Level int `bson:"level"`

	FirstGrant time.Time `bson:"firstGrant"`
	LastGrant  time.Time `bson:"lastGrant"`
}

type ExperienceGrant struct {
	Id       primitive.ObjectID `bson:"_id"`
	PlayerId uuid.UUID          `bson:"playerId"`

	Amount int    `bson:"amount"`
	Reason string `bson:"reason"`

	XPAfter    int `bson:"xpAfter"`
	LevelAfter int `bson:"levelAfter"`
}

// GrantedAt is the grant time, carried by the ObjectID.
func (g *ExperienceGrant) GrantedAt() time.Time {
	return g.Id.Timestamp()
}
