package telegram

import "github.com/go-telegram/bot/models"

func startKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "🤖 All Commands", CallbackData: "help_main"}},
			{{Text: "✍️ Give Feedback", CallbackData: "feedback_start"}},
		},
	}
}

func helpCategoryKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "💳 BIN Tools", CallbackData: "help_card"},
				{Text: "🌐 Network & Info", CallbackData: "help_info"},
			},
			{
				{Text: "🛠️ Power Tools", CallbackData: "help_power"},
				{Text: "🤖 Admin & Bot", CallbackData: "help_bot"},
			},
		},
	}
}

func helpBackKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "⬅️ Back to menu", CallbackData: "help_main"}},
		},
	}
}
