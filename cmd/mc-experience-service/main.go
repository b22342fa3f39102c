package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"mc-experience-service/internal/app"
	"mc-experience-service/internal/config"
)

func main() {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	unsugared, err := createLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log := unsugared.Sugar()

	app.Run(cfg, log)
}

func createLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Development {
		return zap.NewDevelopment()
	}

	if cfg.LogFile != "" {
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
		core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), w, zap.InfoLevel)
		return zap.New(core), nil
	}

	return zap.NewProduction()
}
