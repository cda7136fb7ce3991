package config

import (
	"fmt"
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит конфигурацию бота.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`
	HTTPPort    string `envconfig:"HTTP_PORT" default:"8080"`

	// Настройки VK
	VKGroupID    int `envconfig:"VK_GROUP_ID" required:"true"`
	LongPollWait int `envconfig:"VK_LONGPOLL_WAIT" default:"25"`

	// Keepalive: периодический пинг админу, 0 отключает
	KeepAlivePeerID   int64         `envconfig:"KEEPALIVE_PEER_ID" default:"0"`
	KeepAliveInterval time.Duration `envconfig:"KEEPALIVE_INTERVAL" default:"10m"`

	// Темп исполнения сценария
	CharsPerSecond int           `envconfig:"READ_SPEED_CPS" default:"50"`
	StepDelay      time.Duration `envconfig:"ACTION_STEP_DELAY" default:"400ms"`

	// Секретное поле БЕЗ envconfig тега
	VKToken string
}

// Load загружает конфигурацию из переменных окружения и секретов.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	token, err := readSecret("vk_token")
	if err != nil {
		return nil, err
	}
	cfg.VKToken = token

	log.Printf("Конфигурация загружена (секреты из файлов):")
	log.Printf("  LogLevel: %s", cfg.LogLevel)
	log.Printf("  HTTPPort: %s", cfg.HTTPPort)
	log.Printf("  VK Group ID: %d", cfg.VKGroupID)
	log.Printf("  LongPoll Wait: %d", cfg.LongPollWait)
	log.Printf("  KeepAlive Peer: %d (interval %v)", cfg.KeepAlivePeerID, cfg.KeepAliveInterval)
	log.Printf("  Read Speed: %d chars/s, Step Delay: %v", cfg.CharsPerSecond, cfg.StepDelay)
	log.Println("  VK Token: [ЗАГРУЖЕН]")

	return &cfg, nil
}
