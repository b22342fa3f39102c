package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Kafka   *KafkaConfig
	MongoDB *MongoDBConfig

	Development bool

	// Port is the gRPC (health) port, HTTPPort serves the JSON API.
	Port     uint16
	HTTPPort uint16

	// DiscordWebhookURL enables level-up announcements when set.
	DiscordWebhookURL string

	// LogFile enables rotated file logging when set.
	LogFile string
}

const MongoServiceName = "mongodb"

var AllServices = []string{MongoServiceName}

type KafkaConfig struct {
	Host string
	Port int
}

type MongoDBConfig struct {
	URI string
}

func LoadGlobalConfig() (config *Config, err error) {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.AddConfigPath(".")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return
}
