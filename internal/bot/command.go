package bot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/ARROM2405/hero-search-bot/internal/errors"
	"github.com/ARROM2405/hero-search-bot/internal/models"
	"github.com/ARROM2405/hero-search-bot/internal/questionnaire"
	"github.com/ARROM2405/hero-search-bot/internal/report"
	"github.com/ARROM2405/hero-search-bot/internal/telegram"
)

// Command tokens. ReportCommandPrefix is matched by prefix, the rest by
// exact literal.
const (
	CommandStart                 = "/start"
	CommandInstructionsConfirmed = "/instructions_confirmed"
	CommandInputConfirmed        = "/input_confirmed"
	CommandInputNotConfirmed     = "/input_not_confirmed"
	CommandRemoveAndRestartInput = "/remove_and_restart_input"
	CommandContinueInput         = "/continue_input"
	ReportCommandPrefix          = "/report_"
)

// ReportGenerator produces the CSV export file. Implemented by
// report.Generator.
type ReportGenerator interface {
	Generate(ctx context.Context, startDate, endDate time.Time) (string, error)
}

// commandProcessor dispatches bot commands, typed or button-pressed.
type commandProcessor struct {
	cmd      *models.Command
	tracker  *questionnaire.Tracker
	authors  AuthorGetOrCreator
	reports  ReportGenerator
	client   Deliverer
	adminIDs []int64
	logger   *slog.Logger

	response *Response
	// reportPath is the generated report file, deleted in Finalize.
	reportPath string
}

func newCommandProcessor(
	cmd *models.Command,
	tracker *questionnaire.Tracker,
	authors AuthorGetOrCreator,
	reports ReportGenerator,
	client Deliverer,
	adminIDs []int64,
	logger *slog.Logger,
) *commandProcessor {
	return &commandProcessor{
		cmd:      cmd,
		tracker:  tracker,
		authors:  authors,
		reports:  reports,
		client:   client,
		adminIDs: adminIDs,
		logger:   logger,
	}
}

func (p *commandProcessor) Process(ctx context.Context) error {
	// A button press leaves its inline keyboard behind; strip it before
	// handling whichever command it carried.
	if p.cmd.SentByInlineKeyboard {
		if err := p.client.EditMessageReplyMarkup(ctx, p.cmd.ChatID, p.cmd.RepliedMessageID); err != nil {
			p.logger.LogAttrs(ctx, slog.LevelWarn, "failed to strip inline keyboard", errors.SlogError(err))
		}
	}

	switch {
	case p.cmd.Token == CommandStart:
		return p.processStart()
	case p.cmd.Token == CommandInstructionsConfirmed:
		return p.processInstructionsConfirmed(ctx)
	case p.cmd.Token == CommandInputConfirmed:
		return p.processInputConfirmed(ctx)
	case p.cmd.Token == CommandInputNotConfirmed, p.cmd.Token == CommandRemoveAndRestartInput:
		return p.processRemoveInput(ctx)
	case p.cmd.Token == CommandContinueInput:
		return p.processContinueInput(ctx)
	case strings.HasPrefix(p.cmd.Token, ReportCommandPrefix):
		return p.processReport(ctx)
	}
	return errors.Wrap(ErrUnknownCommand, "dispatch command", slog.String("token", p.cmd.Token))
}

// processStart acknowledges the command without touching any in-progress
// input; the actual prompt flow begins at /instructions_confirmed.
func (p *commandProcessor) processStart() error {
	p.response = &Response{
		ChatID: p.cmd.ChatID,
		Text:   questionnaire.FirstInstructions,
		ReplyMarkup: telegram.SingleButtonKeyboard(
			questionnaire.ConfirmInstructionsButton, CommandInstructionsConfirmed),
	}
	return nil
}

func (p *commandProcessor) processInstructionsConfirmed(ctx context.Context) error {
	if err := p.tracker.StartInput(ctx, p.cmd.Sender.ID); err != nil {
		return errors.Wrap(err, "start input")
	}
	p.response = &Response{
		ChatID: p.cmd.ChatID,
		Text:   questionnaire.Prompt(models.QuestionOrder[0]),
	}
	return nil
}

func (p *commandProcessor) processInputConfirmed(ctx context.Context) error {
	author, err := p.authors.GetOrCreate(ctx, models.Author{
		TelegramID: p.cmd.Sender.ID,
		Username:   p.cmd.Sender.Username,
		FirstName:  p.cmd.Sender.FirstName,
		LastName:   p.cmd.Sender.LastName,
	})
	if err != nil {
		return errors.Wrap(err, "get or create author")
	}
	if err = p.tracker.SaveConfirmed(ctx, p.cmd.Sender.ID, author); err != nil {
		return errors.Wrap(err, "save confirmed data")
	}
	p.response = &Response{
		ChatID: p.cmd.ChatID,
		Text:   questionnaire.InputConfirmedText,
	}
	return nil
}

func (p *commandProcessor) processRemoveInput(ctx context.Context) error {
	if err := p.tracker.RemoveInput(ctx, p.cmd.Sender.ID); err != nil {
		return errors.Wrap(err, "remove input")
	}
	p.response = &Response{
		ChatID: p.cmd.ChatID,
		Text:   questionnaire.InputNotConfirmedText + "\n" + questionnaire.Prompt(models.QuestionOrder[0]),
	}
	return nil
}

// processContinueInput re-renders the current prompt without writing.
func (p *commandProcessor) processContinueInput(ctx context.Context) error {
	progress, err := p.tracker.Progress(ctx, p.cmd.Sender.ID)
	if err != nil {
		return errors.Wrap(err, "read progress")
	}
	if progress.Done {
		var summary string
		if summary, err = p.tracker.ConfirmationText(ctx, p.cmd.Sender.ID); err != nil {
			return errors.Wrap(err, "render confirmation")
		}
		p.response = &Response{
			ChatID:      p.cmd.ChatID,
			Text:        summary,
			ReplyMarkup: confirmationKeyboard(),
		}
		return nil
	}
	p.response = &Response{
		ChatID: p.cmd.ChatID,
		Text:   questionnaire.ContinueInputText + "\n" + questionnaire.Prompt(progress.Current),
	}
	return nil
}

func (p *commandProcessor) processReport(ctx context.Context) error {
	startDate, endDate, err := parseReportRange(p.cmd.Token)
	if err != nil {
		return err
	}
	// An empty allow-list means the report is unrestricted.
	if len(p.adminIDs) > 0 && !slices.Contains(p.adminIDs, p.cmd.Sender.ID) {
		return errors.Wrap(ErrUnauthorizedReport, "authorize report request",
			slog.Int64("user_id", p.cmd.Sender.ID))
	}
	path, err := p.reports.Generate(ctx, startDate, endDate)
	if err != nil {
		return errors.Wrap(err, "generate report")
	}
	p.reportPath = path
	p.response = &Response{
		ChatID: p.cmd.ChatID,
		Text: fmt.Sprintf("Звіт за період %s — %s.",
			startDate.Format(report.DateFormat), endDate.Format(report.DateFormat)),
		FilePath: path,
	}
	return nil
}

func (p *commandProcessor) PrepareResponse() *Response {
	// Groups only receive silent processing, except for /start.
	if p.cmd.ChatKind == models.ChatGroup && p.cmd.Token != CommandStart {
		return nil
	}
	return p.response
}

// Finalize deletes the generated report file regardless of delivery outcome.
func (p *commandProcessor) Finalize(ctx context.Context) {
	if p.reportPath == "" {
		return
	}
	if err := os.Remove(p.reportPath); err != nil {
		p.logger.LogAttrs(ctx, slog.LevelWarn, "failed to remove report file",
			slog.String("path", p.reportPath), errors.SlogError(err))
	}
}

// parseReportRange extracts the two dates from /report_<start>_<end>.
func parseReportRange(token string) (time.Time, time.Time, error) {
	suffix := strings.TrimPrefix(token, ReportCommandPrefix)
	parts := strings.Split(suffix, "_")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, errors.Wrap(ErrUnknownCommand, "malformed report range",
			slog.String("token", token))
	}
	startDate, err := time.Parse(report.DateFormat, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(ErrUnknownCommand, "parse report start date",
			slog.String("token", token))
	}
	endDate, err := time.Parse(report.DateFormat, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(ErrUnknownCommand, "parse report end date",
			slog.String("token", token))
	}
	return startDate, endDate, nil
}
