package telegram

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/nyaruka/phonenumbers"
	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"

	"tg_toolkit_bot/internal/broadcast"
	"tg_toolkit_bot/internal/card"
	"tg_toolkit_bot/internal/config"
	"tg_toolkit_bot/internal/conversation"
	"tg_toolkit_bot/internal/domain"
	"tg_toolkit_bot/internal/logging"
	"tg_toolkit_bot/internal/lookup"
	"tg_toolkit_bot/internal/registry"
	"tg_toolkit_bot/internal/store"
)

const generatedCardCount = 10

// Handlers holds the shared state every command and callback handler needs.
// api is assigned after the bot client exists; handlers only run once polling
// starts, so they never observe it nil.
type Handlers struct {
	api           sender
	adminID       int64
	logger        *logrus.Entry
	registry      *registry.Registry
	conversations *conversation.Engine
	notes         *store.NotesRepository
	stats         *store.StatsProvider
	lookups       *lookup.Client
	broadcaster   *broadcast.Broadcaster
	started       time.Time
}

func newHandlers(cfg config.Config, logger *logrus.Entry) *Handlers {
	return &Handlers{
		adminID:       cfg.AdminID,
		logger:        logger,
		registry:      registry.New(logger),
		conversations: conversation.NewEngine(),
		lookups:       lookup.NewClient(cfg.WeatherAPIKey, logger),
		started:       time.Now(),
	}
}

func (h *Handlers) register(r *Router) {
	r.Command("start", h.handleStart)
	r.Command("help", h.handleHelp)
	r.Command("feedback", h.handleFeedback)
	r.Command("cancel", h.handleCancel)
	r.Command("broadcast", h.requireAdmin(h.handleBroadcast))

	r.Command("gen", h.handleGen)
	r.Command("bin", h.handleBin)
	r.Command("check", h.handleCheck)
	r.Command("rand", h.handleRand)

	r.Command("ip", h.handleIP)
	r.Command("phone", h.handlePhone)
	r.Command("whois", h.handleWhois)
	r.Command("github", h.handleGitHub)
	r.Command("imei", h.handleIMEI)
	r.Command("weather", h.handleWeather)
	r.Command("myinfo", h.handleMyInfo)

	r.Command("tr", h.handleTranslate)
	r.Command("yt", h.handleVideoInfo)
	r.Command("qr", h.handleQR)
	r.Command("short", h.handleShorten)
	r.Command("paste", h.handlePaste)
	r.Command("tts", h.handleSpeech)

	r.Command("ping", h.handlePing)
	r.Command("uptime", h.handleUptime)

	r.Command("save", h.handleSaveNote)
	r.Command("notes", h.handleListNotes)
	r.Command("delete", h.handleDeleteNote)

	r.Callback("help", h.helpCallback)
	r.Callback("feedback", h.feedbackCallback)
	r.Callback("notes", h.notesCallback)

	r.OnFeedback(h.receiveFeedback)
}

// requireAdmin wraps a handler so only the configured admin reaches it.
// With no admin configured every caller is refused.
func (h *Handlers) requireAdmin(next CommandFunc) CommandFunc {
	return func(ctx context.Context, msg *models.Message, args []string) {
		caller := userID(msg.From)
		if h.adminID == 0 || caller != h.adminID {
			h.logger.WithFields(logging.Fields{
				"event":   "admin_denied",
				"user_id": caller,
				"chat_id": msg.Chat.ID,
			}).Warn("refused admin-only command")
			h.reply(ctx, msg.Chat.ID, msgAdminOnly)
			return
		}

		next(ctx, msg, args)
	}
}

// Core commands.

func (h *Handlers) handleStart(ctx context.Context, msg *models.Message, _ []string) {
	h.registry.Record(userID(msg.From))

	name := "there"
	if msg.From != nil && msg.From.FirstName != "" {
		name = msg.From.FirstName
	}

	h.send(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        fmt.Sprintf(fmtWelcome, name),
		ParseMode:   models.ParseModeMarkdownV1,
		ReplyMarkup: startKeyboard(),
	})
}

func (h *Handlers) handleHelp(ctx context.Context, msg *models.Message, _ []string) {
	h.send(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        msgChooseCategory,
		ReplyMarkup: helpCategoryKeyboard(),
	})
}

func (h *Handlers) helpCallback(ctx context.Context, query *models.CallbackQuery, arg string) {
	h.answerCallback(ctx, query.ID)

	chatID, messageID := messageRef(query.Message)
	if chatID == 0 {
		return
	}

	if arg == "main" {
		h.edit(ctx, &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   messageID,
			Text:        msgChooseCategory,
			ReplyMarkup: helpCategoryKeyboard(),
		})
		return
	}

	text, ok := helpTexts[arg]
	if !ok {
		text = msgInvalidCategory
	}

	h.edit(ctx, &bot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdownV1,
		ReplyMarkup: helpBackKeyboard(),
	})
}

func (h *Handlers) handleFeedback(ctx context.Context, msg *models.Message, _ []string) {
	h.conversations.Begin(msg.Chat.ID)
	h.reply(ctx, msg.Chat.ID, msgFeedbackPrompt)
}

func (h *Handlers) feedbackCallback(ctx context.Context, query *models.CallbackQuery, _ string) {
	h.answerCallback(ctx, query.ID)

	chatID, _ := messageRef(query.Message)
	if chatID == 0 {
		return
	}

	h.conversations.Begin(chatID)
	h.reply(ctx, chatID, msgFeedbackPrompt)
}

// receiveFeedback consumes the single text message an open feedback
// conversation claims. The conversation is already closed by the router.
func (h *Handlers) receiveFeedback(ctx context.Context, msg *models.Message) {
	text := strings.TrimSpace(msg.Text)

	if h.adminID == 0 {
		h.logger.WithFields(logging.Fields{
			"event":   "feedback_dropped",
			"chat_id": msg.Chat.ID,
		}).Warn("feedback received but no admin is configured")
	} else {
		author := domain.User{ID: userID(msg.From)}
		if msg.From != nil {
			author.FirstName = msg.From.FirstName
			author.Username = msg.From.Username
		}

		h.send(ctx, &bot.SendMessageParams{
			ChatID:    h.adminID,
			Text:      fmt.Sprintf(fmtFeedbackForward, author.Label(), author.ID, text),
			ParseMode: models.ParseModeMarkdownV1,
		})
	}

	h.reply(ctx, msg.Chat.ID, msgFeedbackThanks)
}

func (h *Handlers) handleCancel(ctx context.Context, msg *models.Message, _ []string) {
	if h.conversations.Cancel(msg.Chat.ID) {
		h.reply(ctx, msg.Chat.ID, msgFeedbackCancelled)
		return
	}

	h.reply(ctx, msg.Chat.ID, msgNoFeedbackOpen)
}

func (h *Handlers) handleBroadcast(ctx context.Context, msg *models.Message, args []string) {
	if len(args) == 0 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageBroadcast)
		return
	}

	text := fmt.Sprintf(fmtBroadcastMessage, strings.Join(args, " "))

	status, err := h.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   msgBroadcasting,
	})
	if err != nil {
		h.logSendError(msg.Chat.ID, err)
	}

	result := h.broadcaster.Run(ctx, h.registry.Snapshot(), text)
	report := fmt.Sprintf(fmtBroadcastReport, result.Succeeded, result.Attempted)

	if status != nil {
		h.edit(ctx, &bot.EditMessageTextParams{
			ChatID:    msg.Chat.ID,
			MessageID: status.ID,
			Text:      report,
		})
		return
	}

	h.reply(ctx, msg.Chat.ID, report)
}

// sendBroadcast is the delivery function the broadcaster fans out over.
func (h *Handlers) sendBroadcast(ctx context.Context, chatID int64, text string) error {
	_, err := h.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	})

	return err
}

// Card commands.

func (h *Handlers) handleGen(ctx context.Context, msg *models.Message, args []string) {
	if len(args) == 0 || !digitsOnly(args[0]) || len(args[0]) < 6 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageGen)
		return
	}

	overrides := card.Overrides{}
	if len(args) > 1 {
		overrides.Month = args[1]
	}
	if len(args) > 2 {
		overrides.Year = args[2]
	}
	if len(args) > 3 {
		overrides.CVC = args[3]
	}

	status, err := h.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   "⏳ Generating cards...",
	})
	if err != nil {
		h.logSendError(msg.Chat.ID, err)
	}

	lines := make([]string, 0, generatedCardCount)
	for i := 0; i < generatedCardCount; i++ {
		rec, genErr := card.Generate(args[0], overrides)
		if genErr != nil {
			h.replyMarkdown(ctx, msg.Chat.ID, usageGen)
			return
		}
		lines = append(lines, fmt.Sprintf("`%s`", rec))
	}

	text := fmt.Sprintf(fmtGeneratedCards, strings.Join(lines, "\n"), h.binSummary(ctx, args[0]))

	if status != nil {
		h.edit(ctx, &bot.EditMessageTextParams{
			ChatID:    msg.Chat.ID,
			MessageID: status.ID,
			Text:      text,
			ParseMode: models.ParseModeMarkdownV1,
		})
		return
	}

	h.replyMarkdown(ctx, msg.Chat.ID, text)
}

func (h *Handlers) handleBin(ctx context.Context, msg *models.Message, args []string) {
	if len(args) == 0 || !digitsOnly(args[0]) || len(args[0]) < 6 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageBin)
		return
	}

	h.replyMarkdown(ctx, msg.Chat.ID, h.binSummary(ctx, args[0]))
}

func (h *Handlers) handleCheck(ctx context.Context, msg *models.Message, args []string) {
	if len(args) == 0 || !digitsOnly(args[0]) {
		h.replyMarkdown(ctx, msg.Chat.ID, usageCheck)
		return
	}

	verdict := "❌ *Invalid*"
	if card.Validate(args[0]) {
		verdict = "✅ *Valid*"
	}

	h.replyMarkdown(ctx, msg.Chat.ID, fmt.Sprintf("Card `%s`: %s", args[0], verdict))
}

func (h *Handlers) handleRand(ctx context.Context, msg *models.Message, _ []string) {
	bin := card.RandomBIN()

	rec, err := card.Generate(bin, card.Overrides{})
	if err != nil {
		h.reply(ctx, msg.Chat.ID, msgLookupFailed)
		return
	}

	h.replyMarkdown(ctx, msg.Chat.ID, fmt.Sprintf(fmtGeneratedCard, rec, h.binSummary(ctx, bin)))
}

// binSummary resolves BIN metadata, degrading to a fixed line when the
// upstream has nothing.
func (h *Handlers) binSummary(ctx context.Context, bin string) string {
	info, err := h.lookups.BINInfo(ctx, bin)
	if err != nil {
		return msgBINNotFound
	}

	return info
}

// Network and info commands.

func (h *Handlers) handleIP(ctx context.Context, msg *models.Message, args []string) {
	if len(args) == 0 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageIP)
		return
	}

	h.replyLookup(ctx, msg.Chat.ID, func() (string, error) {
		return h.lookups.IPInfo(ctx, args[0])
	})
}

func (h *Handlers) handlePhone(ctx context.Context, msg *models.Message, args []string) {
	if len(args) == 0 {
		h.replyMarkdown(ctx, msg.Chat.ID, usagePhone)
		return
	}

	raw := strings.Join(args, " ")

	num, err := phonenumbers.Parse(raw, "")
	if err != nil {
		h.reply(ctx, msg.Chat.ID, msgPhoneUnparsed)
		return
	}
	if !phonenumbers.IsValidNumber(num) {
		h.reply(ctx, msg.Chat.ID, msgPhoneInvalid)
		return
	}

	carrier, _ := phonenumbers.GetCarrierForNumber(num, "en")
	zones, _ := phonenumbers.GetTimezonesForNumber(num)

	h.replyMarkdown(ctx, msg.Chat.ID, fmt.Sprintf(
		"📱 *Phone Number Analysis:* `%s`\n\n"+
			"✅ Status: `Valid`\n\n"+
			"*Formatting*\n"+
			"International: `%s`\n"+
			"National: `%s`\n"+
			"E.164: `%s`\n\n"+
			"*Details*\n"+
			"Region: `%s`\n"+
			"Carrier: `📶 %s`\n"+
			"Timezone(s): `🌏 %s`",
		raw,
		phonenumbers.Format(num, phonenumbers.INTERNATIONAL),
		phonenumbers.Format(num, phonenumbers.NATIONAL),
		phonenumbers.Format(num, phonenumbers.E164),
		orUnknown(phonenumbers.GetRegionCodeForNumber(num)),
		orUnknown(carrier),
		orUnknown(strings.Join(zones, ", ")),
	))
}

func (h *Handlers) handleWhois(ctx context.Context, msg *models.Message, args []string) {
	if len(args) == 0 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageWhois)
		return
	}

	h.replyLookup(ctx, msg.Chat.ID, func() (string, error) {
		return h.lookups.Whois(ctx, args[0])
	})
}

func (h *Handlers) handleGitHub(ctx context.Context, msg *models.Message, args []string) {
	if len(args) == 0 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageGitHub)
		return
	}

	summary, avatarURL, err := h.lookups.GitHubUser(ctx, args[0])
	if err != nil {
		h.logLookupError(msg.Chat.ID, err)
		h.reply(ctx, msg.Chat.ID, msgLookupFailed)
		return
	}

	if avatarURL != "" {
		_, photoErr := h.api.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:    msg.Chat.ID,
			Photo:     &models.InputFileString{Data: avatarURL},
			Caption:   summary,
			ParseMode: models.ParseModeMarkdownV1,
		})
		if photoErr == nil {
			return
		}
		h.logSendError(msg.Chat.ID, photoErr)
	}

	h.replyMarkdown(ctx, msg.Chat.ID, summary)
}

func (h *Handlers) handleIMEI(ctx context.Context, msg *models.Message, args []string) {
	if len(args) == 0 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageIMEI)
		return
	}

	h.reply(ctx, msg.Chat.ID, msgIMEIUnavailable)
}

func (h *Handlers) handleWeather(ctx context.Context, msg *models.Message, args []string) {
	if !h.lookups.WeatherConfigured() {
		h.reply(ctx, msg.Chat.ID, msgWeatherNotConfigured)
		return
	}
	if len(args) == 0 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageWeather)
		return
	}

	h.replyLookup(ctx, msg.Chat.ID, func() (string, error) {
		return h.lookups.Weather(ctx, strings.Join(args, " "))
	})
}

func (h *Handlers) handleMyInfo(ctx context.Context, msg *models.Message, _ []string) {
	id := userID(msg.From)

	name := "-"
	handle := "-"
	if msg.From != nil {
		if msg.From.FirstName != "" {
			name = msg.From.FirstName
		}
		if msg.From.Username != "" {
			handle = "@" + msg.From.Username
		}
	}

	registered := "no"
	if h.registry.Contains(id) {
		registered = "yes"
	}

	lines := []string{
		"*👤 Your Info:*",
		fmt.Sprintf("ID: `%d`", id),
		fmt.Sprintf("Name: %s", name),
		fmt.Sprintf("Username: %s", handle),
		fmt.Sprintf("Registered: %s", registered),
	}

	if h.stats != nil {
		if count, err := h.stats.CountUserNotes(ctx, id); err == nil {
			lines = append(lines, fmt.Sprintf("Saved notes: %d", count))
		}
	}

	h.replyMarkdown(ctx, msg.Chat.ID, strings.Join(lines, "\n"))
}

// Power tools.

func (h *Handlers) handleTranslate(ctx context.Context, msg *models.Message, args []string) {
	if len(args) < 2 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageTr)
		return
	}

	h.replyLookup(ctx, msg.Chat.ID, func() (string, error) {
		return h.lookups.Translate(ctx, args[0], strings.Join(args[1:], " "))
	})
}

func (h *Handlers) handleVideoInfo(ctx context.Context, msg *models.Message, args []string) {
	if len(args) == 0 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageYt)
		return
	}

	h.replyLookup(ctx, msg.Chat.ID, func() (string, error) {
		return h.lookups.VideoInfo(ctx, args[0])
	})
}

func (h *Handlers) handleQR(ctx context.Context, msg *models.Message, args []string) {
	if len(args) == 0 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageQr)
		return
	}

	text := strings.Join(args, " ")

	png, err := qrcode.Encode(text, qrcode.Medium, 512)
	if err != nil {
		h.reply(ctx, msg.Chat.ID, msgQRFailed)
		return
	}

	_, err = h.api.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:    msg.Chat.ID,
		Photo:     &models.InputFileUpload{Filename: "qrcode.png", Data: bytes.NewReader(png)},
		Caption:   fmt.Sprintf("QR code for:\n`%s`", text),
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		h.logSendError(msg.Chat.ID, err)
	}
}

func (h *Handlers) handleShorten(ctx context.Context, msg *models.Message, args []string) {
	if len(args) == 0 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageShort)
		return
	}

	h.replyLookup(ctx, msg.Chat.ID, func() (string, error) {
		return h.lookups.ShortenURL(ctx, args[0])
	})
}

func (h *Handlers) handlePaste(ctx context.Context, msg *models.Message, args []string) {
	if len(args) == 0 {
		h.replyMarkdown(ctx, msg.Chat.ID, usagePaste)
		return
	}

	h.replyLookup(ctx, msg.Chat.ID, func() (string, error) {
		return h.lookups.Paste(ctx, strings.Join(args, " "))
	})
}

func (h *Handlers) handleSpeech(ctx context.Context, msg *models.Message, args []string) {
	if len(args) < 2 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageTts)
		return
	}

	audio, err := h.lookups.Speech(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		h.logLookupError(msg.Chat.ID, err)
		h.reply(ctx, msg.Chat.ID, msgLookupFailed)
		return
	}

	_, err = h.api.SendAudio(ctx, &bot.SendAudioParams{
		ChatID: msg.Chat.ID,
		Audio:  &models.InputFileUpload{Filename: "voice.mp3", Data: bytes.NewReader(audio)},
	})
	if err != nil {
		h.logSendError(msg.Chat.ID, err)
	}
}

// Bot status.

func (h *Handlers) handlePing(ctx context.Context, msg *models.Message, _ []string) {
	h.reply(ctx, msg.Chat.ID, msgPong)
}

func (h *Handlers) handleUptime(ctx context.Context, msg *models.Message, _ []string) {
	h.reply(ctx, msg.Chat.ID, fmt.Sprintf("⏱ Uptime: %s", formatUptime(time.Since(h.started))))
}

// Notes.

func (h *Handlers) handleSaveNote(ctx context.Context, msg *models.Message, args []string) {
	if h.notes == nil {
		h.reply(ctx, msg.Chat.ID, msgNotesUnavailable)
		return
	}
	if len(args) == 0 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageSave)
		return
	}

	if _, err := h.notes.Add(ctx, userID(msg.From), strings.Join(args, " ")); err != nil {
		h.logger.WithFields(logging.Fields{
			"event":   "note_save_failed",
			"chat_id": msg.Chat.ID,
		}).WithError(err).Error("failed to save note")
		h.reply(ctx, msg.Chat.ID, msgNoteSaveFailed)
		return
	}

	h.reply(ctx, msg.Chat.ID, msgNoteSaved)
}

func (h *Handlers) handleListNotes(ctx context.Context, msg *models.Message, _ []string) {
	h.sendNotesList(ctx, msg.Chat.ID, userID(msg.From))
}

func (h *Handlers) notesCallback(ctx context.Context, query *models.CallbackQuery, arg string) {
	h.answerCallback(ctx, query.ID)

	if arg != "show" {
		return
	}

	chatID, _ := messageRef(query.Message)
	if chatID == 0 {
		return
	}

	h.sendNotesList(ctx, chatID, userID(&query.From))
}

func (h *Handlers) sendNotesList(ctx context.Context, chatID, ownerID int64) {
	if h.notes == nil {
		h.reply(ctx, chatID, msgNotesUnavailable)
		return
	}

	notes, err := h.notes.List(ctx, ownerID)
	if err != nil {
		h.logger.WithFields(logging.Fields{
			"event":   "notes_list_failed",
			"chat_id": chatID,
		}).WithError(err).Error("failed to load notes")
		h.reply(ctx, chatID, msgNotesFailed)
		return
	}

	if len(notes) == 0 {
		h.reply(ctx, chatID, msgNotesEmpty)
		return
	}

	lines := make([]string, 0, len(notes)+1)
	lines = append(lines, "*🗒 Your Notes:*")
	for i, note := range notes {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, note.Text))
	}

	h.replyMarkdown(ctx, chatID, strings.Join(lines, "\n"))
}

func (h *Handlers) handleDeleteNote(ctx context.Context, msg *models.Message, args []string) {
	if h.notes == nil {
		h.reply(ctx, msg.Chat.ID, msgNotesUnavailable)
		return
	}

	if len(args) == 0 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageDelete)
		return
	}

	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 {
		h.replyMarkdown(ctx, msg.Chat.ID, usageDelete)
		return
	}

	ownerID := userID(msg.From)

	notes, err := h.notes.List(ctx, ownerID)
	if err != nil {
		h.reply(ctx, msg.Chat.ID, msgNotesFailed)
		return
	}
	if index > len(notes) {
		h.reply(ctx, msg.Chat.ID, msgNoteNotFound)
		return
	}

	removed, err := h.notes.Remove(ctx, ownerID, notes[index-1].NoteID)
	if err != nil || !removed {
		h.reply(ctx, msg.Chat.ID, msgNoteNotFound)
		return
	}

	h.reply(ctx, msg.Chat.ID, msgNoteDeleted)
}

// Outbound helpers. Send failures are logged and swallowed so one chat's
// transport error never takes down the polling loop.

func (h *Handlers) reply(ctx context.Context, chatID int64, text string) {
	h.send(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
}

func (h *Handlers) replyMarkdown(ctx context.Context, chatID int64, text string) {
	h.send(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	})
}

// replyLookup runs a one-shot external lookup and reports either its result
// or the generic apology.
func (h *Handlers) replyLookup(ctx context.Context, chatID int64, fetch func() (string, error)) {
	result, err := fetch()
	if err != nil {
		h.logLookupError(chatID, err)
		h.reply(ctx, chatID, msgLookupFailed)
		return
	}

	h.replyMarkdown(ctx, chatID, result)
}

func (h *Handlers) send(ctx context.Context, params *bot.SendMessageParams) {
	if _, err := h.api.SendMessage(ctx, params); err != nil {
		h.logSendError(chatIDField(params.ChatID), err)
	}
}

func (h *Handlers) edit(ctx context.Context, params *bot.EditMessageTextParams) {
	if _, err := h.api.EditMessageText(ctx, params); err != nil {
		h.logSendError(chatIDField(params.ChatID), err)
	}
}

func (h *Handlers) answerCallback(ctx context.Context, callbackID string) {
	if _, err := h.api.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
	}); err != nil {
		h.logger.WithField("event", "callback_answer_failed").WithError(err).Warn("failed to answer callback query")
	}
}

func (h *Handlers) logSendError(chatID int64, err error) {
	h.logger.WithFields(logging.Fields{
		"event":   "telegram_send_failed",
		"chat_id": chatID,
	}).WithError(err).Error("failed to deliver telegram message")
}

func (h *Handlers) logLookupError(chatID int64, err error) {
	h.logger.WithFields(logging.Fields{
		"event":   "external_lookup_failed",
		"chat_id": chatID,
	}).WithError(err).Warn("external lookup failed")
}

func chatIDField(chatID any) int64 {
	if id, ok := chatID.(int64); ok {
		return id
	}

	return 0
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func orUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}

	return value
}

// formatUptime renders a duration as "2d, 3h, 15m".
func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	return fmt.Sprintf("%dd, %dh, %dm", days, hours, minutes)
}
