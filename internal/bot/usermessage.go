package bot

import (
	"context"

	"github.com/ARROM2405/hero-search-bot/internal/errors"
	"github.com/ARROM2405/hero-search-bot/internal/models"
	"github.com/ARROM2405/hero-search-bot/internal/questionnaire"
	"github.com/ARROM2405/hero-search-bot/internal/telegram"
)

// userMessageProcessor drives the questionnaire for plain and edited text
// messages.
type userMessageProcessor struct {
	msg     *models.UserMessage
	tracker *questionnaire.Tracker

	// response is computed during Process so that PrepareResponse stays a
	// pure function of post-Process state.
	response *Response
}

func newUserMessageProcessor(msg *models.UserMessage, tracker *questionnaire.Tracker) *userMessageProcessor {
	return &userMessageProcessor{
		msg:     msg,
		tracker: tracker,
	}
}

func (p *userMessageProcessor) Process(ctx context.Context) error {
	if p.msg.Edited {
		return p.processEdited(ctx)
	}
	return p.processFresh(ctx)
}

// processEdited never writes: an edit must not silently overwrite a
// committed answer. When the user still has input in progress they get to
// choose between restarting and continuing; otherwise the edit is ignored.
func (p *userMessageProcessor) processEdited(ctx context.Context) error {
	exists, err := p.tracker.InputExists(ctx, p.msg.Sender.ID)
	if err != nil {
		return errors.Wrap(err, "check input exists")
	}
	if !exists {
		return nil
	}
	p.response = &Response{
		ChatID: p.msg.ChatID,
		Text:   questionnaire.EditIgnoredText,
		ReplyMarkup: telegram.TwoRowKeyboard(
			telegram.InlineKeyboardButton{
				Text:         questionnaire.RestartInputButton,
				CallbackData: CommandRemoveAndRestartInput,
			},
			telegram.InlineKeyboardButton{
				Text:         questionnaire.ContinueInputButton,
				CallbackData: CommandContinueInput,
			},
		),
	}
	return nil
}

func (p *userMessageProcessor) processFresh(ctx context.Context) error {
	progress, err := p.tracker.SaveAnswer(ctx, p.msg.Sender.ID, p.msg.Text)
	switch {
	case err == nil:
	case errors.Is(err, questionnaire.ErrAllDataReceived):
		p.response = &Response{ChatID: p.msg.ChatID, Text: questionnaire.AllDataReceivedText}
		return nil
	case errors.Is(err, questionnaire.ErrInputExpired):
		p.response = &Response{ChatID: p.msg.ChatID, Text: questionnaire.InputExpiredText}
		return nil
	case errors.Is(err, questionnaire.ErrValidationFailed):
		return p.respondValidationFailed(ctx)
	default:
		return errors.Wrap(err, "save answer")
	}

	if progress.Done {
		return p.respondConfirmation(ctx)
	}
	p.response = &Response{ChatID: p.msg.ChatID, Text: questionnaire.Prompt(progress.Current)}
	return nil
}

// respondValidationFailed re-prompts for the same key with an error prefix.
func (p *userMessageProcessor) respondValidationFailed(ctx context.Context) error {
	progress, err := p.tracker.Progress(ctx, p.msg.Sender.ID)
	if err != nil {
		return errors.Wrap(err, "read progress")
	}
	text := questionnaire.ValidationFailedText
	if !progress.Done {
		text += "\n" + questionnaire.Prompt(progress.Current)
	}
	p.response = &Response{ChatID: p.msg.ChatID, Text: text}
	return nil
}

func (p *userMessageProcessor) respondConfirmation(ctx context.Context) error {
	summary, err := p.tracker.ConfirmationText(ctx, p.msg.Sender.ID)
	if err != nil {
		return errors.Wrap(err, "render confirmation")
	}
	p.response = &Response{
		ChatID:      p.msg.ChatID,
		Text:        summary,
		ReplyMarkup: confirmationKeyboard(),
	}
	return nil
}

func (p *userMessageProcessor) PrepareResponse() *Response {
	return p.response
}

func (p *userMessageProcessor) Finalize(context.Context) {}

func confirmationKeyboard() *telegram.InlineKeyboardMarkup {
	return telegram.TwoRowKeyboard(
		telegram.InlineKeyboardButton{
			Text:         questionnaire.InputCorrectButton,
			CallbackData: CommandInputConfirmed,
		},
		telegram.InlineKeyboardButton{
			Text:         questionnaire.InputIncorrectButton,
			CallbackData: CommandInputNotConfirmed,
		},
	)
}
