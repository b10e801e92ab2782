package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// WelcomeNotifier queues a welcome notification for a freshly registered user.
// The send itself happens out of band; callers never wait on delivery.
type WelcomeNotifier interface {
	EnqueueWelcome(ctx context.Context, email, name string) error
}

// WelcomeTask is the payload pushed onto the mail queue and consumed by the
// mail worker.
type WelcomeTask struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type NotificationService struct {
	rdb       *redis.Client
	queueName string
}

func NewNotificationService(rdb *redis.Client, queueName string) *NotificationService {
	return &NotificationService{rdb: rdb, queueName: queueName}
}

func (s *NotificationService) EnqueueWelcome(ctx context.Context, email, name string) error {
	task := WelcomeTask{Email: email, Name: name}
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("NotificationService.EnqueueWelcome marshal: %w", err)
	}
	if err := s.rdb.RPush(ctx, s.queueName, payload).Err(); err != nil {
		return fmt.Errorf("NotificationService.EnqueueWelcome push: %w", err)
	}
	return nil
}
