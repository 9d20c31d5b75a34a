// Package telegram hosts the Telegram client, routing, and handlers.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/sirupsen/logrus"

	"tg_toolkit_bot/internal/broadcast"
	"tg_toolkit_bot/internal/config"
	"tg_toolkit_bot/internal/conversation"
	"tg_toolkit_bot/internal/logging"
	"tg_toolkit_bot/internal/lookup"
	"tg_toolkit_bot/internal/registry"
	"tg_toolkit_bot/internal/store"
)

type botRunner interface {
	Start(ctx context.Context)
}

// sender is the narrow outbound surface handlers need; *bot.Bot satisfies it
// and tests substitute a recording fake.
type sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
	SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error)
	SendAudio(ctx context.Context, params *bot.SendAudioParams) (*models.Message, error)
}

type telegramAPI interface {
	botRunner
	sender
}

var (
	defaultAllowedUpdates = bot.AllowedUpdates{
		"message",
		"callback_query",
	}

	createBot = func(token string, options ...bot.Option) (telegramAPI, error) {
		return bot.New(token, options...)
	}
)

// Client wraps the Telegram bot instance, the router, and the handlers.
type Client struct {
	bot     telegramAPI
	router  *Router
	logger  *logrus.Entry
	started time.Time
}

// Option customizes client construction.
type Option func(*Handlers)

// WithRegistry replaces the default empty user registry.
func WithRegistry(r *registry.Registry) Option {
	return func(h *Handlers) { h.registry = r }
}

// WithConversations replaces the default conversation engine.
func WithConversations(e *conversation.Engine) Option {
	return func(h *Handlers) { h.conversations = e }
}

// WithNotes wires the Mongo-backed notes repository. Without it notes
// commands reply that storage is not configured.
func WithNotes(notes *store.NotesRepository) Option {
	return func(h *Handlers) { h.notes = notes }
}

// WithStats wires the note statistics provider used by /myinfo.
func WithStats(stats *store.StatsProvider) Option {
	return func(h *Handlers) { h.stats = stats }
}

// WithLookups replaces the default external lookup client.
func WithLookups(lookups *lookup.Client) Option {
	return func(h *Handlers) { h.lookups = lookups }
}

// WithProcessStart sets the instant /uptime and /ping measure from.
func WithProcessStart(started time.Time) Option {
	return func(h *Handlers) { h.started = started }
}

// NewClient initializes the Telegram bot with long polling, the command
// router, and the full handler set.
func NewClient(cfg config.Config, logger *logrus.Entry, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BotToken) == "" {
		return nil, errors.New("telegram token is required")
	}
	if logger == nil {
		logger = logging.Logger()
	}

	handlers := newHandlers(cfg, logger)
	for _, opt := range opts {
		opt(handlers)
	}
	handlers.broadcaster = broadcast.New(broadcast.SenderFunc(handlers.sendBroadcast), logger)

	router := NewRouter(handlers.conversations, logger)
	handlers.register(router)

	tgBot, err := createBot(cfg.BotToken,
		bot.WithAllowedUpdates(defaultAllowedUpdates),
		bot.WithDefaultHandler(func(ctx context.Context, _ *bot.Bot, update *models.Update) {
			router.Dispatch(ctx, update)
		}),
		bot.WithErrorsHandler(errorHandler(logger)),
	)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot client: %w", err)
	}

	handlers.api = tgBot

	return &Client{
		bot:     tgBot,
		router:  router,
		logger:  logger,
		started: handlers.started,
	}, nil
}

// Start begins receiving updates via long polling until the context is canceled.
func (c *Client) Start(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	c.logger.WithFields(logging.Fields{
		"event":           "telegram_listen",
		"allowed_updates": defaultAllowedUpdates,
	}).Info("starting telegram long polling")

	c.bot.Start(ctx)

	c.logger.WithField("event", "telegram_stopped").Info("telegram polling stopped")
}

func errorHandler(logger *logrus.Entry) bot.ErrorsHandler {
	if logger == nil {
		logger = logging.Logger()
	}

	return func(err error) {
		if err == nil {
			return
		}

		logger.WithField("event", "telegram_error").WithError(err).Error("telegram polling error")
	}
}

func userID(user *models.User) int64 {
	if user == nil {
		return 0
	}

	return user.ID
}

// messageRef extracts the chat and message ids a callback query points at.
// Inaccessible messages still carry both ids, so edits keep working.
func messageRef(msg models.MaybeInaccessibleMessage) (chatID int64, messageID int) {
	switch msg.Type {
	case models.MaybeInaccessibleMessageTypeMessage:
		if msg.Message == nil {
			return 0, 0
		}
		return msg.Message.Chat.ID, msg.Message.ID
	case models.MaybeInaccessibleMessageTypeInaccessibleMessage:
		if msg.InaccessibleMessage == nil {
			return 0, 0
		}
		return msg.InaccessibleMessage.Chat.ID, msg.InaccessibleMessage.MessageID
	default:
		return 0, 0
	}
}
