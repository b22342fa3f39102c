package kafkaWriter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"mc-experience-service/internal/config"
	"mc-experience-service/internal/kafka/message"
)

const experienceWriterTopic = "player-experience"

type Notifier struct {
	logger *zap.SugaredLogger
	w      *kafka.Writer
}

func NewKafkaNotifier(ctx context.Context, wg *sync.WaitGroup, cfg *config.KafkaConfig, logger *zap.SugaredLogger) *Notifier {
	w := &kafka.Writer{
		Addr:         kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:        experienceWriterTopic,
		Balancer:     &kafka.LeastBytes{},
		Async:        true,
		BatchTimeout: 500 * time.Millisecond,
		ErrorLogger:  kafka.LoggerFunc(logger.Errorw),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := w.Close(); err != nil {
			logger.Errorw("failed to close kafka writer", "err", err)
		}
	}()

	return &Notifier{
		logger: logger,
		w:      w,
	}
}

func (n *Notifier) ExperienceChange(ctx context.Context, playerId uuid.UUID, reason string, oldXP int, newXP int,
	oldLevel int, newLevel int) {

	msg := &message.ExperienceChangeMessage{
		PlayerId:           playerId.String(),
		Reason:             reason,
		PreviousExperience: oldXP,
		NewExperience:      newXP,
		PreviousLevel:      oldLevel,
		NewLevel:           newLevel,
	}

	if err := n.writeMessage(ctx, message.ExperienceChangeType, msg); err != nil {
		n.logger.Errorw("failed to write message", "err", err)
		return
	}
}

func (n *Notifier) writeMessage(ctx context.Context, msgType string, msg any) error {
	bytes, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message to json: %w", err)
	}

	return n.w.WriteMessages(ctx, kafka.Message{
		Headers: []kafka.Header{{Key: message.TypeHeaderKey, Value: []byte(msgType)}},
		Value:   bytes,
	})
}
