package telegram

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"tg_toolkit_bot/internal/config"
)

func TestNewClientCreatesBot(t *testing.T) {
	origCreateBot := createBot
	defer func() { createBot = origCreateBot }()

	var gotToken string
	var gotOptions []bot.Option
	api := newFakeAPI()

	createBot = func(token string, options ...bot.Option) (telegramAPI, error) {
		gotToken = token
		gotOptions = options
		return api, nil
	}

	cfg := config.Config{BotToken: "token-123"}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client, err := NewClient(cfg, logrus.NewEntry(logger))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if client == nil || client.bot == nil {
		t.Fatalf("expected client and bot to be initialized")
	}

	if gotToken != cfg.BotToken {
		t.Fatalf("expected token %q, got %q", cfg.BotToken, gotToken)
	}

	if len(gotOptions) != 3 {
		t.Fatalf("expected 3 bot options (allowed updates, default handler, error handler), got %d", len(gotOptions))
	}
}

func TestNewClientRequiresToken(t *testing.T) {
	if _, err := NewClient(config.Config{}, nil); err == nil {
		t.Fatalf("expected an error without a bot token")
	}
}

func TestNewClientPropagatesBotError(t *testing.T) {
	origCreateBot := createBot
	defer func() { createBot = origCreateBot }()

	expected := errors.New("boom")
	createBot = func(string, ...bot.Option) (telegramAPI, error) {
		return nil, expected
	}

	_, err := NewClient(config.Config{BotToken: "token"}, nil)
	if !errors.Is(err, expected) {
		t.Fatalf("expected error %v, got %v", expected, err)
	}
}

func TestNewClientWiresHandlersToBot(t *testing.T) {
	origCreateBot := createBot
	defer func() { createBot = origCreateBot }()

	api := newFakeAPI()
	createBot = func(string, ...bot.Option) (telegramAPI, error) {
		return api, nil
	}

	logger, _ := logtest.NewNullLogger()
	client, err := NewClient(config.Config{BotToken: "token"}, logrus.NewEntry(logger))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	client.router.Dispatch(context.Background(), &models.Update{
		Message: &models.Message{
			From: &models.User{ID: 10, FirstName: "Ada"},
			Chat: models.Chat{ID: 10},
			Text: "/ping",
		},
	})

	texts := api.sentTo(10)
	if len(texts) != 1 || texts[0] != msgPong {
		t.Fatalf("expected dispatch to reach handlers through the bot, got %v", texts)
	}
}

func TestClientStartLogsAndUsesContext(t *testing.T) {
	hookLogger, hook := logtest.NewNullLogger()
	api := newFakeAPI()
	client := &Client{
		bot:    api,
		logger: logrus.NewEntry(hookLogger),
	}

	ctx := context.Background()
	client.Start(ctx)

	if api.startedWith != ctx {
		t.Fatalf("expected bot to start with provided context")
	}

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries (start/stop), got %d", len(entries))
	}

	if entries[0].Data["event"] != "telegram_listen" {
		t.Fatalf("expected start log event, got %v", entries[0].Data["event"])
	}
	if entries[1].Data["event"] != "telegram_stopped" {
		t.Fatalf("expected stop log event, got %v", entries[1].Data["event"])
	}
}

func TestMessageRef(t *testing.T) {
	chatID, messageID := messageRef(models.MaybeInaccessibleMessage{
		Type: models.MaybeInaccessibleMessageTypeMessage,
		Message: &models.Message{
			ID:   7,
			Chat: models.Chat{ID: 20},
		},
	})
	if chatID != 20 || messageID != 7 {
		t.Fatalf("expected (20, 7), got (%d, %d)", chatID, messageID)
	}

	chatID, messageID = messageRef(models.MaybeInaccessibleMessage{
		Type: models.MaybeInaccessibleMessageTypeInaccessibleMessage,
		InaccessibleMessage: &models.InaccessibleMessage{
			MessageID: 8,
			Chat:      models.Chat{ID: 21},
		},
	})
	if chatID != 21 || messageID != 8 {
		t.Fatalf("expected (21, 8), got (%d, %d)", chatID, messageID)
	}

	chatID, messageID = messageRef(models.MaybeInaccessibleMessage{})
	if chatID != 0 || messageID != 0 {
		t.Fatalf("expected zero ids for empty message, got (%d, %d)", chatID, messageID)
	}
}
