// Package answerstore holds in-progress questionnaire answers keyed by the
// answering user's Telegram id. Entries expire after a fixed time-to-live
// that is armed once at creation and never reset by later writes.
package answerstore

import (
	"context"

	"github.com/ARROM2405/hero-search-bot/internal/errors"
	"github.com/ARROM2405/hero-search-bot/internal/models"
)

// ErrNotFound is returned when a write targets an answer set that no longer
// exists, either because it expired or was never created.
var ErrNotFound = errors.NewSentinel("answer set not found")

// Store is the expiring per-user answer mapping.
type Store interface {
	// Get returns the stored answers for id. The map is a copy; it is empty
	// when the entry is absent or expired.
	Get(ctx context.Context, id int64) (map[models.QuestionKey]string, error)
	// Create creates an empty answer set for id and arms the TTL. An existing
	// entry is replaced, which also resets the TTL.
	Create(ctx context.Context, id int64) error
	// SetInitial creates the answer set with its first field and arms the TTL.
	SetInitial(ctx context.Context, id int64, key models.QuestionKey, value string) error
	// Set adds or overwrites one field without touching the TTL. Returns
	// ErrNotFound when no entry exists for id.
	Set(ctx context.Context, id int64, key models.QuestionKey, value string) error
	// Update runs fn against the current answers for id as one atomic
	// read-modify-write. fn receives a snapshot of the stored answers (empty
	// when absent) together with whether the entry exists, and returns the
	// field to write. When no entry exists, the write creates it and arms
	// the TTL; otherwise the TTL is left alone. An error from fn aborts the
	// update without writing.
	Update(ctx context.Context, id int64, fn UpdateFunc) error
	// Exists reports whether an unexpired answer set exists for id.
	Exists(ctx context.Context, id int64) (bool, error)
	// Delete removes the answer set for id. Deleting a missing entry is not
	// an error.
	Delete(ctx context.Context, id int64) error
}

// UpdateFunc computes the single field write for Store.Update.
type UpdateFunc func(answers map[models.QuestionKey]string, exists bool) (key models.QuestionKey, value string, err error)
