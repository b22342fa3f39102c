package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"mc-experience-service/internal/config"
	"mc-experience-service/internal/kafka/message"
	"mc-experience-service/internal/xp"
)

const grantsTopic = "mc-experience-grants"

type consumer struct {
	logger *zap.SugaredLogger
	xpH    xp.Handler

	reader *kafka.Reader
}

func NewConsumer(ctx context.Context, wg *sync.WaitGroup, cfg *config.KafkaConfig, logger *zap.SugaredLogger,
	xpH xp.Handler) {

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		GroupID:     "mc-experience-service",
		GroupTopics: []string{grantsTopic},

		Logger: kafka.LoggerFunc(func(format string, args ...interface{}) {
			logger.Infow(fmt.Sprintf(format, args...))
		}),
		ErrorLogger: kafka.LoggerFunc(func(format string, args ...interface{}) {
			logger.Errorw(fmt.Sprintf(format, args...))
		}),

		MaxWait: 5 * time.Second,
	})

	c := &consumer{
		logger: logger,
		xpH:    xpH,

		reader: reader,
	}

	logger.Infow("starting listening for kafka messages", "topics", reader.Config().GroupTopics)

	wg.Add(1)
	go func() {
		defer wg.Done()
		c.run(ctx) // run is blocking until the context is cancelled
		if err := reader.Close(); err != nil {
			logger.Errorw("error closing kafka reader", "error", err)
		}
	}()
}

func (c *consumer) run(ctx context.Context) {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return
			}
			c.logger.Errorw("error fetching kafka message", "error", err)
			continue
		}

		c.handle(ctx, &m)

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			c.logger.Errorw("error committing kafka message", "error", err)
		}
	}
}

func (c *consumer) handle(ctx context.Context, m *kafka.Message) {
	var msgType string
	for _, h := range m.Headers {
		if h.Key == message.TypeHeaderKey {
			msgType = string(h.Value)
			break
		}
	}

	switch msgType {
	case message.ExperienceGrantType:
		var msg message.ExperienceGrantMessage
		if err := json.Unmarshal(m.Value, &msg); err != nil {
			c.logger.Errorw("error unmarshalling grant message", "error", err)
			return
		}
		c.handleExperienceGrantMessage(ctx, &msg)
	default:
		c.logger.Warnw("unknown message type", "type", msgType)
	}
}

func (c *consumer) handleExperienceGrantMessage(ctx context.Context, m *message.ExperienceGrantMessage) {
	pId, err := uuid.Parse(m.PlayerId)
	if err != nil {
		c.logger.Errorw("error parsing player id", "error", err)
		return
	}

	if _, err := c.xpH.GrantExperience(ctx, pId, m.PlayerUsername, m.Amount, m.Reason); err != nil {
		c.logger.Errorw("error granting experience", "error", err)
	}
}
