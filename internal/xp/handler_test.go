package xp

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"mc-experience-service/internal/kafka/message"
	"mc-experience-service/internal/repository/model"
)

type fakeRepo struct {
	players map[uuid.UUID]*model.PlayerExperience
	grants  []*model.ExperienceGrant
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{players: make(map[uuid.UUID]*model.PlayerExperience)}
}

func (r *fakeRepo) Ping(_ context.Context) error { return nil }

func (r *fakeRepo) GetPlayerExperience(_ context.Context, playerId uuid.UUID) (*model.PlayerExperience, error) {
	p, ok := r.players[playerId]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *p
	return &copied, nil
}

func (r *fakeRepo) GetPlayersExperience(_ context.Context, playerIds []uuid.UUID) ([]*model.PlayerExperience, error) {
	var out []*model.PlayerExperience
	for _, id := range playerIds {
		if p, ok := r.players[id]; ok {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRepo) SaveExperienceWithUpsert(_ context.Context, p *model.PlayerExperience) error {
	copied := *p
	r.players[p.Id] = &copied
	return nil
}

func (r *fakeRepo) GetTopPlayers(_ context.Context, _ int64) ([]*model.PlayerExperience, error) {
	return nil, nil
}

func (r *fakeRepo) CreateExperienceGrant(_ context.Context, grant *model.ExperienceGrant) error {
	r.grants = append(r.grants, grant)
	return nil
}

func (r *fakeRepo) GetExperienceGrants(_ context.Context, _ uuid.UUID, _ int64, _ int64) ([]*model.ExperienceGrant, error) {
	return r.grants, nil
}

type notified struct {
	playerId       uuid.UUID
	reason         string
	oldXP, newXP   int
	oldLvl, newLvl int
}

type fakeNotifier struct {
	calls []notified
}

func (n *fakeNotifier) ExperienceChange(_ context.Context, playerId uuid.UUID, reason string, oldXP int, newXP int,
	oldLevel int, newLevel int) {
	n.calls = append(n.calls, notified{playerId, reason, oldXP, newXP, oldLevel, newLevel})
}

type fakeWebhook struct {
	levelUps []int
}

func (w *fakeWebhook) SendLevelUpWebhook(_ string, _ uuid.UUID, newLevel int) {
	w.levelUps = append(w.levelUps, newLevel)
}

type fakeBroadcaster struct {
	events []any
}

func (b *fakeBroadcaster) Broadcast(v any) {
	b.events = append(b.events, v)
}

func TestGrantExperienceCreatesPlayer(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	wh := &fakeWebhook{}
	bc := &fakeBroadcaster{}
	h := NewHandler(zap.NewNop().Sugar(), repo, notifier, wh, bc)

	pId := uuid.New()

	result, err := h.GrantExperience(context.Background(), pId, "Expectational", 20, "vote")
	require.NoError(t, err)

	assert.Equal(t, 0, result.PreviousExperience)
	assert.Equal(t, 20, result.NewExperience)
	assert.Equal(t, 0, result.PreviousLevel)
	assert.Equal(t, 1, result.NewLevel)

	p := repo.players[pId]
	require.NotNil(t, p)
	assert.Equal(t, "Expectational", p.Username)
	assert.Equal(t, 20, p.TotalXP)
	assert.Equal(t, 1, p.Level)
	assert.False(t, p.FirstGrant.IsZero())

	require.Len(t, repo.grants, 1)
	assert.Equal(t, 20, repo.grants[0].Amount)
	assert.Equal(t, "vote", repo.grants[0].Reason)
	assert.Equal(t, 20, repo.grants[0].XPAfter)
	assert.Equal(t, 1, repo.grants[0].LevelAfter)
}

func TestGrantExperienceAccumulates(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	h := NewHandler(zap.NewNop().Sugar(), repo, notifier, nil, nil)

	pId := uuid.New()

	_, err := h.GrantExperience(context.Background(), pId, "Expectational", 10, "kill")
	require.NoError(t, err)

	result, err := h.GrantExperience(context.Background(), pId, "", 10, "kill")
	require.NoError(t, err)

	assert.Equal(t, 10, result.PreviousExperience)
	assert.Equal(t, 20, result.NewExperience)

	// An empty username keeps the stored one.
	assert.Equal(t, "Expectational", repo.players[pId].Username)

	require.Len(t, notifier.calls, 2)
	assert.Equal(t, notified{pId, "kill", 10, 20, 0, 1}, notifier.calls[1])
}

func TestGrantExperienceNotifiesLevelUpOnce(t *testing.T) {
	repo := newFakeRepo()
	wh := &fakeWebhook{}
	bc := &fakeBroadcaster{}
	h := NewHandler(zap.NewNop().Sugar(), repo, &fakeNotifier{}, wh, bc)

	pId := uuid.New()

	// 16xp stays at level 0: no webhook.
	_, err := h.GrantExperience(context.Background(), pId, "Expectational", 16, "kill")
	require.NoError(t, err)
	assert.Empty(t, wh.levelUps)

	// One more point crosses level 1.
	_, err = h.GrantExperience(context.Background(), pId, "Expectational", 1, "kill")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, wh.levelUps)

	// Every grant broadcasts, level up or not.
	require.Len(t, bc.events, 2)
	event, ok := bc.events[1].(*message.ExperienceChangeMessage)
	require.True(t, ok)
	assert.Equal(t, pId.String(), event.PlayerId)
	assert.Equal(t, 16, event.PreviousExperience)
	assert.Equal(t, 17, event.NewExperience)
	assert.Equal(t, 1, event.NewLevel)
}

func TestGrantExperienceRejectsNonPositiveAmounts(t *testing.T) {
	repo := newFakeRepo()
	h := NewHandler(zap.NewNop().Sugar(), repo, &fakeNotifier{}, nil, nil)

	_, err := h.GrantExperience(context.Background(), uuid.New(), "Expectational", 0, "kill")
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	_, err = h.GrantExperience(context.Background(), uuid.New(), "Expectational", -5, "kill")
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	assert.Empty(t, repo.players)
	assert.Empty(t, repo.grants)
}
