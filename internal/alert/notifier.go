package alert

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"phishguard/internal/config"
	"phishguard/internal/models"
)

// Notifier pushes malicious-verdict alerts to a Telegram chat. A nil Notifier
// is a valid no-op, so callers never need to check whether alerting is
// enabled.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewNotifier creates the Telegram notifier, or (nil, nil) when alerting is
// disabled in the configuration.
func NewNotifier(cfg *config.Config, logger *zap.Logger) (*Notifier, error) {
	if !cfg.Alerts.Enabled || cfg.Alerts.TelegramBotToken == "" {
		logger.Info("Telegram alerting is disabled (alerts.enabled=false or token is empty)")
		return nil, nil
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.Alerts.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}

	logger.Info("Telegram alert bot authorized", zap.String("username", botAPI.Self.UserName))

	return &Notifier{
		api:    botAPI,
		chatID: cfg.Alerts.ChatID,
		logger: logger,
	}, nil
}

// NotifyMalicious sends an alert for a submission that scored malicious.
// Failures are logged, never surfaced to the submitter.
func (n *Notifier) NotifyMalicious(sub *models.Submission) {
	if n == nil {
		return
	}

	text := fmt.Sprintf(
		"Malicious submission #%d\nReporter: %s\nScore: %.2f\nReasons:\n- %s",
		sub.ID,
		sub.UserID,
		sub.Score,
		strings.Join(sub.Reasons, "\n- "),
	)

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		n.logger.Error("Failed to send malicious submission alert",
			zap.Int64("submission_id", sub.ID),
			zap.Error(err),
		)
		return
	}

	n.logger.Info("Malicious submission alert sent", zap.Int64("submission_id", sub.ID))
}
