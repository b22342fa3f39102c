package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"mc-experience-service/internal/kafka/message"
)

var (
	broker = flag.String("broker", "localhost:9092", "kafka broker to publish to")

	playerId = flag.String("player", "", "player id to grant to (random if empty)")
	amount   = flag.Int("amount", 50, "experience to grant per message")
	reason   = flag.String("reason", "test_grant", "grant reason")

	period = flag.Duration("period", 1*time.Second, "period to publish messages")
	rate   = flag.Int("rate", 1, "number of messages to publish per period")
	count  = flag.Int("count", 1, "number of periods before exiting, 0 for forever")
)

func main() {
	flag.Parse()

	w := &kafka.Writer{
		Addr:      kafka.TCP(*broker),
		Topic:     "mc-experience-grants",
		BatchSize: 1,
		Async:     false,
	}
	defer func() {
		if err := w.Close(); err != nil {
			log.Printf("failed to close writer: %v", err)
		}
	}()

	published := 0
	for tick := range time.Tick(*period) {
		for i := 0; i < *rate; i++ {
			pId := *playerId
			if pId == "" {
				pId = uuid.New().String()
			}

			msg := &message.ExperienceGrantMessage{
				PlayerId:       pId,
				PlayerUsername: randomName(),
				Amount:         *amount,
				Reason:         *reason,
			}

			if err := publishGrantMessage(w, msg); err != nil {
				log.Fatalf("failed to publish grant message: %v", err)
			}
		}
		log.Printf("published %d messages at %s", *rate, tick)

		published++
		if *count > 0 && published >= *count {
			return
		}
	}
}

func publishGrantMessage(w *kafka.Writer, msg *message.ExperienceGrantMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return w.WriteMessages(context.Background(), kafka.Message{
		Headers: []kafka.Header{{Key: message.TypeHeaderKey, Value: []byte(message.ExperienceGrantType)}},
		Value:   body,
	})
}

// randomName generates a random 10 char string, A-Z, a-z, 0-9
func randomName() string {
	var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, 10)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
