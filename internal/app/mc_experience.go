package app

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"mc-experience-service/internal/config"
	"mc-experience-service/internal/kafka"
	kafkaWriter "mc-experience-service/internal/kafka/writer"
	"mc-experience-service/internal/repository"
	"mc-experience-service/internal/service"
	"mc-experience-service/internal/webhook"
	"mc-experience-service/internal/ws"
	"mc-experience-service/internal/xp"
)

func Run(cfg *config.Config, logger *zap.SugaredLogger) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	wg := &sync.WaitGroup{}

	enchantCfg, err := config.LoadEnchantConfig()
	if err != nil {
		logger.Fatalw("failed to load enchantment config", err)
	}
	logger.Infow("loaded enchantment config", "enchantmentCount", len(enchantCfg.Enchantments))

	repoWg := &sync.WaitGroup{}
	repoCtx, repoCancel := context.WithCancel(ctx)

	repo, err := repository.NewMongoRepository(repoCtx, logger, repoWg, cfg.MongoDB)
	if err != nil {
		logger.Fatalw("failed to create repository", err)
	}

	notifier := kafkaWriter.NewKafkaNotifier(ctx, wg, cfg.Kafka, logger)
	hub := ws.NewHub(ctx, wg, logger)

	var wh webhook.Webhook
	if cfg.DiscordWebhookURL != "" {
		wh = webhook.NewWebhook(cfg.DiscordWebhookURL, logger)
	}

	xpHandler := xp.NewHandler(logger, repo, notifier, wh, hub)

	kafka.NewConsumer(ctx, wg, cfg.Kafka, logger, xpHandler)

	service.RunServices(ctx, logger, wg, cfg, enchantCfg, xpHandler, hub, repo)

	wg.Wait()
	logger.Info("shutting down")

	logger.Info("shutting down repository")
	repoCancel()
	repoWg.Wait()
}
