package telegram

import (
	"context"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"tg_toolkit_bot/internal/conversation"
)

func testEntry() *logrus.Entry {
	logger, _ := logtest.NewNullLogger()
	return logrus.NewEntry(logger)
}

func textUpdate(chatID int64, text string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			Chat: models.Chat{ID: chatID},
			Text: text,
		},
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text      string
		name      string
		args      []string
		isCommand bool
	}{
		{text: "/start", name: "start", isCommand: true},
		{text: "/gen 453957 12 29", name: "gen", args: []string{"453957", "12", "29"}, isCommand: true},
		{text: "/help@toolkit_bot", name: "help", isCommand: true},
		{text: "  /ping  ", name: "", isCommand: false},
		{text: "hello", isCommand: false},
		{text: "/", isCommand: false},
		{text: "", isCommand: false},
	}

	for _, tt := range tests {
		name, args, isCommand := parseCommand(tt.text)
		if isCommand != tt.isCommand {
			t.Fatalf("parseCommand(%q) isCommand = %v, want %v", tt.text, isCommand, tt.isCommand)
		}
		if !isCommand {
			continue
		}
		if name != tt.name {
			t.Fatalf("parseCommand(%q) name = %q, want %q", tt.text, name, tt.name)
		}
		if len(args) != len(tt.args) {
			t.Fatalf("parseCommand(%q) args = %v, want %v", tt.text, args, tt.args)
		}
		for i := range args {
			if args[i] != tt.args[i] {
				t.Fatalf("parseCommand(%q) args = %v, want %v", tt.text, args, tt.args)
			}
		}
	}
}

func TestDispatchMatchesCommandsExactly(t *testing.T) {
	router := NewRouter(conversation.NewEngine(), testEntry())

	calls := 0
	router.Command("start", func(context.Context, *models.Message, []string) {
		calls++
	})

	router.Dispatch(context.Background(), textUpdate(1, "/start"))
	router.Dispatch(context.Background(), textUpdate(1, "/Start"))
	router.Dispatch(context.Background(), textUpdate(1, "/started"))
	router.Dispatch(context.Background(), textUpdate(1, "/start extra args"))

	if calls != 2 {
		t.Fatalf("expected exactly 2 dispatches, got %d", calls)
	}
}

func TestDispatchIgnoresUnknownInput(t *testing.T) {
	router := NewRouter(conversation.NewEngine(), testEntry())

	router.Dispatch(context.Background(), nil)
	router.Dispatch(context.Background(), &models.Update{})
	router.Dispatch(context.Background(), textUpdate(1, "/nope"))
	router.Dispatch(context.Background(), textUpdate(1, "plain text"))
}

func TestDispatchCallbackRoutesByPrefix(t *testing.T) {
	router := NewRouter(conversation.NewEngine(), testEntry())

	var gotArg string
	router.Callback("help", func(_ context.Context, _ *models.CallbackQuery, arg string) {
		gotArg = arg
	})

	router.Dispatch(context.Background(), &models.Update{
		CallbackQuery: &models.CallbackQuery{Data: "help_card"},
	})
	if gotArg != "card" {
		t.Fatalf("expected arg %q, got %q", "card", gotArg)
	}

	router.Dispatch(context.Background(), &models.Update{
		CallbackQuery: &models.CallbackQuery{Data: "unknown_thing"},
	})
	if gotArg != "card" {
		t.Fatalf("unregistered prefix must not reroute, got %q", gotArg)
	}
}

func TestConversationClaimsTextButNotCommands(t *testing.T) {
	engine := conversation.NewEngine()
	router := NewRouter(engine, testEntry())

	commandCalls := 0
	router.Command("ping", func(context.Context, *models.Message, []string) {
		commandCalls++
	})

	var feedback []string
	router.OnFeedback(func(_ context.Context, msg *models.Message) {
		feedback = append(feedback, msg.Text)
	})

	engine.Begin(7)

	router.Dispatch(context.Background(), textUpdate(7, "/ping"))
	if commandCalls != 1 {
		t.Fatalf("command must run while a conversation is open, got %d calls", commandCalls)
	}
	if !engine.Active(7) {
		t.Fatalf("command dispatch must leave the conversation open")
	}

	router.Dispatch(context.Background(), textUpdate(7, "my feedback"))
	if len(feedback) != 1 || feedback[0] != "my feedback" {
		t.Fatalf("expected feedback sink to receive the text, got %v", feedback)
	}
	if engine.Active(7) {
		t.Fatalf("claiming text must close the conversation")
	}

	router.Dispatch(context.Background(), textUpdate(7, "more text"))
	if len(feedback) != 1 {
		t.Fatalf("closed conversation must not claim further text, got %v", feedback)
	}

	router.Dispatch(context.Background(), textUpdate(8, "other chat"))
	if len(feedback) != 1 {
		t.Fatalf("other chats must not be claimed, got %v", feedback)
	}
}
