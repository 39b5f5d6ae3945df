package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hibiken/asynq"
)

// MailConfig holds SMTP settings for the notification sender.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// LoadMailConfig reads SMTP settings from environment variables.
// SMTP_HOST and SMTP_USERNAME are required; the sender address defaults to
// SMTP_USERNAME when MAIL_FROM is unset, which mirrors how most providers
// expect the envelope sender to be the authenticated account.
func LoadMailConfig() (*MailConfig, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil, fmt.Errorf("SMTP_HOST is required")
	}
	username := os.Getenv("SMTP_USERNAME")
	if username == "" {
		return nil, fmt.Errorf("SMTP_USERNAME is required")
	}

	port := 587
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", portStr, err)
		}
		port = p
	}

	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = username
	}

	return &MailConfig{
		Host:     host,
		Port:     port,
		Username: username,
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     from,
	}, nil
}

// LoadRedisOpt reads Redis settings for the asynq task queue.
func LoadRedisOpt() (asynq.RedisClientOpt, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return asynq.RedisClientOpt{}, fmt.Errorf("REDIS_ADDR is required")
	}

	db := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		d, err := strconv.Atoi(dbStr)
		if err != nil {
			return asynq.RedisClientOpt{}, fmt.Errorf("invalid REDIS_DB %q: %w", dbStr, err)
		}
		db = d
	}

	return asynq.RedisClientOpt{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}, nil
}
