// Package questionnaire implements the conversation progress tracking for
// the hero search questionnaire: the fixed question order, per-key answer
// validation, and the commit of a confirmed answer set to durable storage.
package questionnaire

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ARROM2405/hero-search-bot/internal/answerstore"
	"github.com/ARROM2405/hero-search-bot/internal/errors"
	"github.com/ARROM2405/hero-search-bot/internal/models"
)

// DateOfBirthFormat is the input format for the hero's date of birth.
const DateOfBirthFormat = "02/01/2006"

const yesToken = "так"
const noToken = "ні"

var (
	// ErrAllDataReceived signals that every question already has an answer
	// and the caller must switch to the confirmation flow.
	ErrAllDataReceived = errors.NewSentinel("all data is already received")
	// ErrInputExpired signals that the answer set vanished, either by TTL or
	// because input was never started.
	ErrInputExpired = errors.NewSentinel("user input expired")
	// ErrValidationFailed signals that one answer failed its key-specific
	// validation; the user is re-prompted for the same key.
	ErrValidationFailed = errors.NewSentinel("user message validation failed")
)

// RecordCreator persists a confirmed record. Implemented by
// repositories.HeroRecordRepository.
type RecordCreator interface {
	Create(ctx context.Context, record models.HeroRecord) (int64, error)
}

// Tracker walks one user at a time through the ordered question sequence
// backed by the expiring answer store.
type Tracker struct {
	store   answerstore.Store
	records RecordCreator
	logger  *slog.Logger
}

func NewTracker(store answerstore.Store, records RecordCreator, logger *slog.Logger) *Tracker {
	return &Tracker{
		store:   store,
		records: records,
		logger:  logger.With("source", "Tracker"),
	}
}

// Progress returns the user's derived questionnaire position.
func (t *Tracker) Progress(ctx context.Context, userID int64) (Progress, error) {
	answers, err := t.store.Get(ctx, userID)
	if err != nil {
		return Progress{}, errors.Wrap(err, "get answers")
	}
	return ComputeProgress(answers), nil
}

// StartInput arms a fresh empty answer set, discarding any previous one.
func (t *Tracker) StartInput(ctx context.Context, userID int64) error {
	if err := t.store.Create(ctx, userID); err != nil {
		return errors.Wrap(err, "create answer set")
	}
	return nil
}

// SaveAnswer validates text against the current question and stores it. The
// compute-validate-write sequence runs as one atomic store update, so
// concurrent duplicate deliveries for the same user cannot skip a key.
//
// Returns ErrAllDataReceived when no question is open, ErrInputExpired when
// a non-initial answer arrives with no active answer set, and
// ErrValidationFailed when the answer fails validation. On success the
// returned Progress reflects the state after the write.
func (t *Tracker) SaveAnswer(ctx context.Context, userID int64, text string) (Progress, error) {
	err := t.store.Update(ctx, userID, func(answers map[models.QuestionKey]string, exists bool) (models.QuestionKey, string, error) {
		progress := ComputeProgress(answers)
		if progress.Done {
			return "", "", ErrAllDataReceived
		}
		// The very first key implicitly creates the answer set; any later
		// key requires one to still be active.
		if !exists && progress.Current != models.QuestionOrder[0] {
			return "", "", ErrInputExpired
		}
		if err := validateAnswer(progress.Current, text); err != nil {
			return "", "", err
		}
		return progress.Current, text, nil
	})
	if err != nil {
		return Progress{}, err
	}
	return t.Progress(ctx, userID)
}

// ConfirmationText renders the stored answers into the summary the user
// accepts or rejects before the record is persisted.
func (t *Tracker) ConfirmationText(ctx context.Context, userID int64) (string, error) {
	answers, err := t.store.Get(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "get answers")
	}
	if len(answers) == 0 {
		return "", ErrInputExpired
	}
	var b strings.Builder
	b.WriteString("Будьласка підтвердіть чи всі введені дані коректні.\n")
	for _, key := range models.QuestionOrder {
		fmt.Fprintf(&b, "%s: %s\n", summaryLabels[key], answers[key])
	}
	return b.String(), nil
}

// SaveConfirmed coerces the stored answers into a HeroRecord, persists it
// with the confirming author, and deletes the answer set. This is the single
// commit point; a malformed stored value aborts without a partial record.
func (t *Tracker) SaveConfirmed(ctx context.Context, userID int64, author models.Author) error {
	answers, err := t.store.Get(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "get answers")
	}
	if len(answers) == 0 {
		return ErrInputExpired
	}
	t.logger.LogAttrs(ctx, slog.LevelInfo, "saving confirmed data", slog.Int64("user_id", userID))

	record, err := coerceRecord(answers, author)
	if err != nil {
		return errors.Wrap(err, "coerce record", slog.Int64("user_id", userID))
	}
	if _, err = t.records.Create(ctx, record); err != nil {
		return errors.Wrap(err, "create hero record")
	}
	if err = t.store.Delete(ctx, userID); err != nil {
		return errors.Wrap(err, "delete answer set")
	}
	return nil
}

// RemoveInput discards the user's in-progress answers.
func (t *Tracker) RemoveInput(ctx context.Context, userID int64) error {
	exists, err := t.store.Exists(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "check answer set")
	}
	if !exists {
		return ErrInputExpired
	}
	t.logger.LogAttrs(ctx, slog.LevelInfo, "removing incorrect input", slog.Int64("user_id", userID))
	if err = t.store.Delete(ctx, userID); err != nil {
		return errors.Wrap(err, "delete answer set")
	}
	return nil
}

// InputExists reports whether the user has an active answer set.
func (t *Tracker) InputExists(ctx context.Context, userID int64) (bool, error) {
	exists, err := t.store.Exists(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "check answer set")
	}
	return exists, nil
}

func validateAnswer(key models.QuestionKey, value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrValidationFailed
	}
	if key == models.KeyHeroDateOfBirth {
		if _, err := time.Parse(DateOfBirthFormat, value); err != nil {
			return ErrValidationFailed
		}
	}
	return nil
}

func coerceRecord(answers map[models.QuestionKey]string, author models.Author) (models.HeroRecord, error) {
	caseID, err := strconv.ParseInt(strings.TrimSpace(answers[models.KeyCaseID]), 10, 64)
	if err != nil {
		return models.HeroRecord{}, errors.Wrap(err, "parse case id")
	}
	dateOfBirth, err := time.Parse(DateOfBirthFormat, answers[models.KeyHeroDateOfBirth])
	if err != nil {
		return models.HeroRecord{}, errors.Wrap(err, "parse date of birth")
	}
	comment := answers[models.KeyComment]
	if strings.EqualFold(comment, noToken) {
		comment = ""
	}
	return models.HeroRecord{
		CaseID:                   caseID,
		HeroLastName:             answers[models.KeyHeroLastName],
		HeroFirstName:            answers[models.KeyHeroFirstName],
		HeroPatronymic:           answers[models.KeyHeroPatronymic],
		HeroDateOfBirth:          dateOfBirth,
		ItemUsedForDNAExtraction: answers[models.KeyItemUsedForDNAExtraction],
		RelativeLastName:         answers[models.KeyRelativeLastName],
		RelativeFirstName:        answers[models.KeyRelativeFirstName],
		RelativePatronymic:       answers[models.KeyRelativePatronymic],
		IsAddedToDNADB:           strings.EqualFold(answers[models.KeyIsAddedToDNADB], yesToken),
		Comment:                  comment,
		CreatedAt:                time.Now().UTC(),
		AuthorID:                 author.ID,
	}, nil
}
