package message

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"quickchat/internal/domain"
)

const idLength = 10

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// New builds a message with a freshly generated ID. The recipient and text
// are taken as-is; format and length checks are the caller's job.
func New(recipient, text string) *domain.Message {
	return &domain.Message{
		ID:        generateID(),
		Recipient: recipient,
		Text:      text,
	}
}

// generateID samples ten decimal digits independently. Uniqueness is not
// enforced; at ten digits collisions are accepted as negligible.
func generateID() string {
	var b strings.Builder
	b.Grow(idLength)
	for i := 0; i < idLength; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}

// ComputeHash derives the content hash of a message from the first two
// characters of its ID, a send-counter value and the message text:
//
//	{first-two-id-chars}:{counter}:{FIRSTLAST}
//
// where FIRST and LAST are the first and last whitespace-separated words of
// the text with non-alphanumeric characters stripped, concatenated and
// uppercased. A single-word text doubles that word; an empty text yields an
// empty suffix. The result depends on the counter value supplied, so
// recomputing at a different point in time gives a different hash.
func ComputeHash(id string, counter int, text string) string {
	prefix := id
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}

	words := strings.Fields(text)
	var first, last string
	if len(words) > 0 {
		first = words[0]
		last = words[len(words)-1]
	}
	first = nonAlnum.ReplaceAllString(first, "")
	last = nonAlnum.ReplaceAllString(last, "")

	return fmt.Sprintf("%s:%d:%s", prefix, counter, strings.ToUpper(first+last))
}
