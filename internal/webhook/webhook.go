package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mc-experience-service/internal/heads"
)

type webhookImpl struct {
	discordWebhookUrl string
	logger            *zap.SugaredLogger
	client            *http.Client
}

func NewWebhook(discordWebhookUrl string, logger *zap.SugaredLogger) Webhook {
	w := &webhookImpl{
		discordWebhookUrl: discordWebhookUrl,
		logger:            logger,
		client:            &http.Client{},
	}

	return w
}

type jsonData struct {
	Username  string `json:"username"`
	Content   string `json:"content"`
	AvatarUrl string `json:"avatar_url"`
}

func (w *webhookImpl) sendWebhookMessage(payload []byte) {
	req, err := http.NewRequest("POST", w.discordWebhookUrl, bytes.NewBuffer(payload))
	if err != nil {
		w.logger.Errorw("error on http post", err)
		return
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Go-Discord")

	resp, err := w.client.Do(req)
	if err != nil {
		w.logger.Errorw("error on request", err)
		return
	}

	if err := resp.Body.Close(); err != nil {
		w.logger.Errorw("error closing body", err)
		return
	}
}

func (w *webhookImpl) SendLevelUpWebhook(username string, playerId uuid.UUID, newLevel int) {
	jsonData, err := json.Marshal(jsonData{
		username,
		fmt.Sprintf("Reached level %d!", newLevel),
		heads.ForPlayer(playerId).AvatarURL(100),
	})
	if err != nil {
		w.logger.Errorw("error marshalling json", err)
		return
	}

	go w.sendWebhookMessage(jsonData)
}
