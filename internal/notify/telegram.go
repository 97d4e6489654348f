// Package notify forwards change events to a warden Telegram chat. It
// is send-only: nobody files complaints over Telegram, the bot just
// keeps wardens aware of activity when they are away from the dashboard.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"hosteldesk/backend/internal/models"
)

// TelegramNotifier implements hub.Client and relays complaint events as
// formatted messages to one chat.
type TelegramNotifier struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
	Send   chan models.Event
	log    *logrus.Logger
}

// NewTelegramNotifier authorizes the bot. The caller skips construction
// entirely when no token is configured.
func NewTelegramNotifier(token string, chatID int64, log *logrus.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram authorization failed: %w", err)
	}
	bot.Debug = false
	log.Infof("telegram notifier authorized on account %s", bot.Self.UserName)

	return &TelegramNotifier{
		BotAPI: bot,
		ChatID: chatID,
		Send:   make(chan models.Event, 16),
		log:    log,
	}, nil
}

func (n *TelegramNotifier) GetUserID() string                   { return "telegram-notifier" }
func (n *TelegramNotifier) GetSendChannel() chan<- models.Event { return n.Send }

// Run starts the delivery loop.
func (n *TelegramNotifier) Run() {
	go n.pump()
}

// Close stops the delivery loop.
func (n *TelegramNotifier) Close() {
	close(n.Send)
}

func (n *TelegramNotifier) pump() {
	for event := range n.Send {
		text := format(event)
		if text == "" {
			continue
		}
		msg := tgbotapi.NewMessage(n.ChatID, text)
		if _, err := n.BotAPI.Send(msg); err != nil {
			n.log.Errorf("telegram notifier: failed to send: %v", err)
		}
	}
}

// format renders an event as a chat line, or "" for event types the
// channel does not care about.
func format(event models.Event) string {
	switch event.Type {
	case models.EventComplaintCreated:
		return fmt.Sprintf("🆕 New complaint: %s", event.Summary)
	case models.EventComplaintUpdated:
		return fmt.Sprintf("🔧 %s", event.Summary)
	default:
		return ""
	}
}
