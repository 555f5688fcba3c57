package models

// ChatKind distinguishes private conversations from group chats.
type ChatKind string

const (
	ChatPrivate ChatKind = "private"
	ChatGroup   ChatKind = "group"
)

// MembershipAction is what happened to the bot's chat membership.
type MembershipAction string

const (
	BotAdded   MembershipAction = "added"
	BotRemoved MembershipAction = "removed"
)

// Sender identifies the Telegram user behind an inbound event.
type Sender struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// UserMessage is a plain or edited text message from a user.
type UserMessage struct {
	ChatID   int64
	ChatKind ChatKind
	Sender   Sender
	Text     string
	Edited   bool
}

// Command is a bot command, either typed as a message or delivered by an
// inline keyboard button press.
type Command struct {
	ChatID   int64
	ChatKind ChatKind
	Sender   Sender
	Token    string
	// RepliedMessageID is set when the command arrived as a callback query.
	RepliedMessageID int64
	// SentByInlineKeyboard reports whether the replied-to message still
	// carries an inline keyboard that should be stripped.
	SentByInlineKeyboard bool
}

// MembershipChange is a notification that the bot was added to or removed
// from a chat.
type MembershipChange struct {
	ChatID   int64
	ChatKind ChatKind
	Sender   Sender
	Action   MembershipAction
}

// Event is a closed union over the inbound event variants. Exactly one of
// the variant fields is non-nil.
type Event struct {
	UserMessage      *UserMessage
	Command          *Command
	MembershipChange *MembershipChange
}
