package telegram

import (
	"context"
	"strings"

	"github.com/go-telegram/bot/models"
	"github.com/sirupsen/logrus"

	"tg_toolkit_bot/internal/conversation"
	"tg_toolkit_bot/internal/logging"
)

// CommandFunc handles a slash command with its whitespace-split arguments.
type CommandFunc func(ctx context.Context, msg *models.Message, args []string)

// CallbackFunc handles a callback query. arg is the callback data after the
// routing prefix (for data "help_card" routed on "help", arg is "card").
type CallbackFunc func(ctx context.Context, query *models.CallbackQuery, arg string)

// Router maps inbound updates to handlers. Commands match the first token by
// exact case-sensitive name; callback data routes on the prefix up to the
// first underscore. Unmatched updates are dropped silently.
//
// Registration happens once at startup; Dispatch may then be called
// concurrently for distinct updates.
type Router struct {
	commands      map[string]CommandFunc
	callbacks     map[string]CallbackFunc
	conversations *conversation.Engine
	onFeedback    func(ctx context.Context, msg *models.Message)
	logger        *logrus.Entry
}

// NewRouter constructs an empty Router over the conversation engine.
func NewRouter(conversations *conversation.Engine, logger *logrus.Entry) *Router {
	if logger == nil {
		logger = logging.Logger()
	}

	return &Router{
		commands:      make(map[string]CommandFunc),
		callbacks:     make(map[string]CallbackFunc),
		conversations: conversations,
		logger:        logger,
	}
}

// Command registers a handler for the named slash command.
func (r *Router) Command(name string, fn CommandFunc) {
	r.commands[name] = fn
}

// Callback registers a handler for callback data beginning with prefix.
func (r *Router) Callback(prefix string, fn CallbackFunc) {
	r.callbacks[prefix] = fn
}

// OnFeedback sets the sink that receives text intercepted by an open
// conversation.
func (r *Router) OnFeedback(fn func(ctx context.Context, msg *models.Message)) {
	r.onFeedback = fn
}

// Dispatch routes a single update. An open conversation claims the chat's
// non-command text before command dispatch runs; everything else falls
// through to the registered handlers.
func (r *Router) Dispatch(ctx context.Context, update *models.Update) {
	if update == nil {
		return
	}

	switch {
	case update.Message != nil:
		r.dispatchMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		r.dispatchCallback(ctx, update.CallbackQuery)
	default:
		r.logger.WithField("event", "update_dropped").Debug("ignoring unsupported update type")
	}
}

func (r *Router) dispatchMessage(ctx context.Context, msg *models.Message) {
	text := strings.TrimSpace(msg.Text)
	name, args, isCommand := parseCommand(text)

	if r.conversations != nil && r.conversations.Intercept(msg.Chat.ID, isCommand) {
		if r.onFeedback != nil {
			r.onFeedback(ctx, msg)
		}
		return
	}

	if !isCommand {
		r.logger.WithFields(logging.Fields{
			"event":   "text_ignored",
			"chat_id": msg.Chat.ID,
		}).Debug("ignoring text outside a conversation")
		return
	}

	fn, ok := r.commands[name]
	if !ok {
		r.logger.WithFields(logging.Fields{
			"event":   "command_dropped",
			"command": name,
			"chat_id": msg.Chat.ID,
		}).Debug("no handler registered for command")
		return
	}

	fn(ctx, msg, args)
}

func (r *Router) dispatchCallback(ctx context.Context, query *models.CallbackQuery) {
	prefix, arg, _ := strings.Cut(query.Data, "_")

	fn, ok := r.callbacks[prefix]
	if !ok {
		r.logger.WithFields(logging.Fields{
			"event":  "callback_dropped",
			"prefix": prefix,
		}).Debug("no handler registered for callback prefix")
		return
	}

	fn(ctx, query, arg)
}

// parseCommand splits "/name arg1 arg2" into its name and arguments. A
// trailing @botname mention on the command token is stripped.
func parseCommand(text string) (name string, args []string, isCommand bool) {
	if !strings.HasPrefix(text, "/") {
		return "", nil, false
	}

	fields := strings.Fields(text)
	if len(fields) == 0 || fields[0] == "/" {
		return "", nil, false
	}

	name = strings.TrimPrefix(fields[0], "/")
	name, _, _ = strings.Cut(name, "@")

	return name, fields[1:], true
}
