package domain

// AccountService registers users and authenticates the single local session.
type AccountService interface {
	// Register validates the supplied credentials and creates the account.
	// Validation is short-circuit: the first failing field is reported.
	Register(username, password, cellNumber, firstName, lastName string) error

	// Login authenticates with an exact password match. It deliberately does
	// not reveal whether the username or the password was wrong.
	Login(username, password string) bool

	// LoginStatus renders the fixed status line for the last login attempt.
	LoginStatus(loggedIn bool) string

	// Session returns a copy of the current session values.
	Session() Session
}

// MessageRegistry owns the sent, stored and disregarded collections and the
// send counter. Every created message is classified exactly once.
type MessageRegistry interface {
	// Load reads previously stored messages from disk. A missing file is not
	// an error; the registry starts empty.
	Load() error

	// ClassifySent marks the message sent: the counter is incremented first
	// and the hash is computed with the new value.
	ClassifySent(m *Message)

	// ClassifyStored hashes with the current counter value, appends to the
	// stored collection and persists it. A persistence failure is returned
	// but the in-memory classification stands.
	ClassifyStored(m *Message) error

	// ClassifyDisregarded appends to the disregarded collection. No hash is
	// computed and the counter does not move.
	ClassifyDisregarded(m *Message)

	// FindByID searches sent, then stored, then disregarded.
	FindByID(id string) (*Message, bool)

	// FindByRecipient collects matches from all three collections in
	// sent, stored, disregarded order.
	FindByRecipient(cellNumber string) []RecipientMatch

	// DeleteByHash removes the first positional match across sent, stored
	// and disregarded. Removal from stored re-persists the file; a non-nil
	// message alongside a non-nil error means the in-memory delete took
	// effect but the write failed.
	DeleteByHash(hash string) (*Message, error)

	// LongestSent returns the sent message with the greatest text length;
	// ties go to the earliest insertion.
	LongestSent() (*Message, bool)

	// Sent returns the sent collection in send order.
	Sent() []*Message

	// Stored returns the stored collection in insertion order.
	Stored() []*Message

	// TotalSent reports the send counter.
	TotalSent() int
}

// MessageStore persists the stored-for-later subset of the registry.
type MessageStore interface {
	SaveMessages(msgs []*Message) error
	LoadMessages() ([]*Message, error)
}
