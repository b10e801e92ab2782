package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"newgen_backend/internal/app/service"
	"newgen_backend/internal/platform/mail"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const welcomeSubject = "🎉 Welcome to Newgen!"

// MailWorker drains the welcome-mail queue and delivers each message once.
// Delivery failures are logged and dropped; registration already committed,
// so there is nothing left to fail.
type MailWorker struct {
	rdb       *redis.Client
	queueName string
	mailer    mail.Mailer
}

func NewMailWorker(rdb *redis.Client, queueName string, mailer mail.Mailer) *MailWorker {
	return &MailWorker{rdb: rdb, queueName: queueName, mailer: mailer}
}

func (w *MailWorker) Start(ctx context.Context) {
	logger.Info().Str("queue", w.queueName).Msg("mail worker started")
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("mail worker stopping")
			return
		default:
			res, err := w.rdb.BRPop(ctx, 0*time.Second, w.queueName).Result()
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					continue // loop re-checks ctx.Done
				}
				if errors.Is(err, redis.Nil) {
					continue
				}
				logger.Error().Err(err).Str("queue", w.queueName).Msg("BRPop failed")
				time.Sleep(5 * time.Second) // avoid busy-looping on a broken connection
				continue
			}

			// res is [queueName, payload]
			if len(res) < 2 || res[1] == "" {
				logger.Warn().Msg("BRPop returned empty payload")
				continue
			}

			var task service.WelcomeTask
			if err := json.Unmarshal([]byte(res[1]), &task); err != nil {
				logger.Error().Err(err).Str("payload", res[1]).Msg("undecodable mail task dropped")
				continue
			}

			if err := w.deliver(task); err != nil {
				logger.Error().Err(err).Str("email", task.Email).Msg("welcome mail delivery failed")
				continue
			}
			logger.Info().Str("email", task.Email).Msg("welcome mail sent")
		}
	}
}

func (w *MailWorker) deliver(task service.WelcomeTask) error {
	return w.mailer.Send(task.Email, welcomeSubject, welcomeBody(task.Name))
}

func welcomeBody(name string) string {
	return fmt.Sprintf(`<h2>Hello %s,</h2>
<p>Thank you for registering at <strong>Newgen</strong>. We're excited to have you on board!</p>
<p>Explore your career path with confidence. 🚀</p>
<br><p>— The Newgen Team</p>`, name)
}
