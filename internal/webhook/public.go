package webhook

import "github.com/google/uuid"

type Webhook interface {
	SendLevelUpWebhook(username string, playerId uuid.UUID, newLevel int)
}
