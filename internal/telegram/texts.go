package telegram

// Fixed replies.
const (
	msgAdminOnly = "Sorry, this is an admin-only command."

	msgFeedbackPrompt    = "Please write your feedback. To cancel: /cancel."
	msgFeedbackThanks    = "Thank you for your feedback!"
	msgFeedbackCancelled = "Feedback cancelled."
	msgNoFeedbackOpen    = "Nothing to cancel."

	msgLookupFailed = "Sorry, something went wrong while contacting the service. Please try again later."

	msgWeatherNotConfigured = "Weather API key not configured."
	msgNotesUnavailable     = "Note storage is not configured on this bot."

	msgIMEIUnavailable = "Sorry, a reliable free API for IMEI checking is not available at this moment to guarantee service. This feature is under development."

	msgChooseCategory = "Please choose a category:"
	msgBroadcasting   = "Broadcasting..."
	msgPong           = "🏓 Pong!"

	msgInvalidCategory = "Invalid category."

	msgPhoneInvalid   = "❌ Invalid phone number format."
	msgPhoneUnparsed  = "Could not parse number. Ensure it includes '+'."
	msgQRFailed       = "Could not generate a QR code for this text."
	msgNoteSaved      = "📝 Note saved."
	msgNoteSaveFailed = "Could not save your note."
	msgNotesFailed    = "Could not load your notes."
	msgNotesEmpty     = "You have no saved notes."
	msgNoteDeleted    = "🗑 Note deleted."
	msgNoteNotFound   = "Could not find that note."
)

// Reply format strings.
const (
	fmtWelcome = "Hi %s! 👋\n\nWelcome to the *Ultimate Toolkit Bot*! Explore my features using the buttons below."

	fmtFeedbackForward = "✍️ *New Feedback Received!*\n\n*From:* %s\n*ID:* `%d`\n\n*Message:*\n%s"

	fmtBroadcastMessage = "📢 *Admin Broadcast:*\n\n%s"
	fmtBroadcastReport  = "Broadcast sent to %d of %d users."

	fmtGeneratedCards = "🔴 *Generated Cards:*\n%s\n\n%s"
	fmtGeneratedCard  = "🔴 *Generated Card:*\n`%s`\n\n%s"

	msgBINNotFound = "🔹 BIN Information not found."
)

// Usage strings for commands with required arguments.
const (
	usageGen       = "❌ Usage: `/gen <BIN> [MM] [YY] [CVC]`"
	usageBin       = "❌ Usage: `/bin <BIN>`"
	usageCheck     = "❌ Usage: `/check <card_number>`"
	usageIP        = "Usage: `/ip <ip_address>`"
	usagePhone     = "Usage: `/phone <phone_number_with_country_code>`"
	usageWhois     = "Usage: `/whois <domain>` (e.g., google.com)"
	usageGitHub    = "Usage: `/github <username>`"
	usageIMEI      = "Usage: `/imei <imei_number>`"
	usageWeather   = "Usage: `/weather <city>`"
	usageTr        = "Usage: `/tr <lang_code> <text>`\nEx: `/tr bn I am a bot`"
	usageYt        = "Usage: `/yt <youtube_url>`"
	usageQr        = "Usage: `/qr <text>`"
	usageShort     = "Usage: `/short <url>`"
	usagePaste     = "Usage: `/paste <text>`"
	usageTts       = "Usage: `/tts <lang> <text>`\nEx: `/tts en Hello`"
	usageBroadcast = "Usage: `/broadcast <message>`"
	usageSave      = "Usage: `/save <text>`"
	usageDelete    = "Usage: `/delete <note_number>`"
)

// Help texts per category, keyed by the callback argument.
var helpTexts = map[string]string{
	"card": "*💳 BIN Tools:*\n`/gen <BIN> [MM] [YY] [CVC]`\n`/bin <BIN>`\n`/check <card>`\n`/rand`",
	"info": "*🌐 Network, Device & Info Tools:*\n`/ip <ip>`\n`/phone <number>`\n`/whois <domain>`\n`/github <user>`\n`/imei <imei>`\n`/weather <city>`\n`/myinfo`",
	"power": "*🛠️ Power Tools:*\n`/tr <lang> <text>`\n`/yt <url>`\n`/qr <text>`\n`/short <url>`\n`/paste <text>`\n`/tts <lang> <text>`\n`/save <text>`\n`/notes`\n`/delete <n>`",
	"bot": "*🤖 Admin & Bot Management:*\n`/start`\n`/help`\n`/broadcast <msg>`\n`/feedback`\n`/ping`\n`/uptime`",
}
