package domain

// Account is a registered credential record, keyed by username.
// Created once at registration and immutable afterwards; there is no
// account-deletion feature.
//
// The password is held verbatim. Plaintext comparison is part of the
// observable contract of this app; do not swap in a hash without revising
// the login semantics and the test suite with it.
type Account struct {
	Username   string
	Password   string
	CellNumber string
	FirstName  string
	LastName   string
}

// Session holds the details of the most recent successful login.
// A failed login leaves the previous values in place.
type Session struct {
	FirstName  string
	LastName   string
	CellNumber string
}

// Active reports whether a login has succeeded at least once.
func (s Session) Active() bool {
	return s.FirstName != "" && s.LastName != ""
}

// Message is a single outbound message. The JSON field names are the wire
// format of the stored-messages file and must not change.
type Message struct {
	ID        string `json:"messageID"`
	Recipient string `json:"recipientCellNumber"`
	Text      string `json:"messageText"`
	Hash      string `json:"messageHash,omitempty"`
	Sent      bool   `json:"isSent"`
}

// MessageStatus is the display status of a classified message.
type MessageStatus string

const (
	StatusSent        MessageStatus = "Sent"
	StatusStored      MessageStatus = "Stored"
	StatusDisregarded MessageStatus = "Disregarded"
)

// RecipientMatch pairs a message with its display status for
// search-by-recipient results.
type RecipientMatch struct {
	Message *Message
	Status  MessageStatus
}
