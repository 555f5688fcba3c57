package telegram

// InlineKeyboardMarkup is the inline keyboard attached to a message.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

type InlineKeyboardButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data,omitempty"`
}

// SingleButtonKeyboard builds a one-row, one-button inline keyboard.
func SingleButtonKeyboard(text, callbackData string) *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{
		InlineKeyboard: [][]InlineKeyboardButton{
			{{Text: text, CallbackData: callbackData}},
		},
	}
}

// TwoRowKeyboard builds an inline keyboard with one button per row.
func TwoRowKeyboard(first, second InlineKeyboardButton) *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{
		InlineKeyboard: [][]InlineKeyboardButton{
			{first},
			{second},
		},
	}
}
