package message

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"quickchat/internal/domain"
	"quickchat/internal/logging"
)

// ErrNotFound is returned when no message matches a delete request.
var ErrNotFound = errors.New("no message found with that hash")

// Registry owns the three message collections, the id/hash indices and the
// send counter. It is a single instance passed by reference; nothing here
// is safe for concurrent use because exactly one actor drives the app.
type Registry struct {
	sent        []*domain.Message
	stored      []*domain.Message
	disregarded []*domain.Message

	// hashes and ids track every hash/ID handed out, in arrival order.
	// DeleteByHash removes one hash occurrence but deliberately leaves ids
	// alone; cleaning the id index is a known follow-up fix that would
	// change observable behavior.
	hashes []string
	ids    []string

	totalSent int

	store domain.MessageStore
	log   logging.Logger
}

// NewRegistry builds an empty registry persisting its stored subset through
// the given store.
func NewRegistry(store domain.MessageStore, log logging.Logger) *Registry {
	return &Registry{store: store, log: log}
}

// Load reads previously stored messages from disk. A read failure degrades
// to an empty stored collection and is logged, not returned: startup must
// not be blocked by a bad or missing file.
//
// Entries that arrive without a hash get one computed against the current
// send counter, which is usually zero at startup and not the counter value
// in effect when the message was stored. The resulting hash can differ from
// one previously shown to the user; kept as-is to match the established
// behavior.
func (r *Registry) Load() error {
	msgs, err := r.store.LoadMessages()
	if err != nil {
		r.log.Warn(context.Background(), "could not read stored messages, starting empty", "err", err)
		return nil
	}
	for _, m := range msgs {
		if m.Hash == "" {
			m.Hash = ComputeHash(m.ID, r.totalSent, m.Text)
		}
		r.stored = append(r.stored, m)
		if !slices.Contains(r.ids, m.ID) {
			r.ids = append(r.ids, m.ID)
		}
		if !slices.Contains(r.hashes, m.Hash) {
			r.hashes = append(r.hashes, m.Hash)
		}
	}
	r.log.Info(context.Background(), "stored messages loaded", "count", len(msgs))
	return nil
}

// ClassifySent marks m as sent. The counter is incremented first so the
// hash carries the new value.
func (r *Registry) ClassifySent(m *domain.Message) {
	r.totalSent++
	m.Hash = ComputeHash(m.ID, r.totalSent, m.Text)
	m.Sent = true
	r.sent = append(r.sent, m)
	r.ids = append(r.ids, m.ID)
	r.hashes = append(r.hashes, m.Hash)
}

// ClassifyStored hashes m with the current (unincremented) counter value,
// appends it to the stored collection and persists the full collection.
// A persistence failure is returned to the caller but the in-memory
// classification is not rolled back.
func (r *Registry) ClassifyStored(m *domain.Message) error {
	m.Hash = ComputeHash(m.ID, r.totalSent, m.Text)
	r.stored = append(r.stored, m)
	r.ids = append(r.ids, m.ID)
	r.hashes = append(r.hashes, m.Hash)
	if err := r.store.SaveMessages(r.stored); err != nil {
		r.log.Error(context.Background(), "saving stored messages failed", "err", err)
		return fmt.Errorf("saving stored messages: %w", err)
	}
	return nil
}

// ClassifyDisregarded appends m to the disregarded collection. No hash is
// computed and the counter does not move; only the ID is recorded.
func (r *Registry) ClassifyDisregarded(m *domain.Message) {
	r.disregarded = append(r.disregarded, m)
	r.ids = append(r.ids, m.ID)
}

// FindByID returns the first message with the given ID, searching sent,
// then stored, then disregarded.
func (r *Registry) FindByID(id string) (*domain.Message, bool) {
	for _, coll := range [][]*domain.Message{r.sent, r.stored, r.disregarded} {
		for _, m := range coll {
			if m.ID == id {
				return m, true
			}
		}
	}
	return nil, false
}

// FindByRecipient collects every message addressed to cellNumber, in sent,
// stored, disregarded order, each paired with its display status.
func (r *Registry) FindByRecipient(cellNumber string) []domain.RecipientMatch {
	var out []domain.RecipientMatch
	for _, m := range r.sent {
		if m.Recipient == cellNumber {
			out = append(out, domain.RecipientMatch{Message: m, Status: r.statusOf(m)})
		}
	}
	for _, m := range r.stored {
		if m.Recipient == cellNumber {
			out = append(out, domain.RecipientMatch{Message: m, Status: r.statusOf(m)})
		}
	}
	for _, m := range r.disregarded {
		if m.Recipient == cellNumber {
			out = append(out, domain.RecipientMatch{Message: m, Status: r.statusOf(m)})
		}
	}
	return out
}

// statusOf reports the display status: the sent flag wins, then membership
// of the stored collection, else disregarded.
func (r *Registry) statusOf(m *domain.Message) domain.MessageStatus {
	if m.Sent {
		return domain.StatusSent
	}
	for _, s := range r.stored {
		if s == m {
			return domain.StatusStored
		}
	}
	return domain.StatusDisregarded
}

// DeleteByHash removes the first message whose hash equals hash, searching
// sent, then stored, then disregarded. Removal from stored re-persists the
// file; if that write fails the removed message is returned together with
// the error. One occurrence of the hash is dropped from the hash index; the
// id index is left as-is.
func (r *Registry) DeleteByHash(hash string) (*domain.Message, error) {
	if m, ok := removeByHash(&r.sent, hash); ok {
		r.dropHash(hash)
		return m, nil
	}
	if m, ok := removeByHash(&r.stored, hash); ok {
		r.dropHash(hash)
		if err := r.store.SaveMessages(r.stored); err != nil {
			r.log.Error(context.Background(), "saving stored messages after delete failed", "err", err)
			return m, fmt.Errorf("saving stored messages: %w", err)
		}
		return m, nil
	}
	if m, ok := removeByHash(&r.disregarded, hash); ok {
		r.dropHash(hash)
		return m, nil
	}
	return nil, ErrNotFound
}

// LongestSent returns the sent message with the greatest text length.
// The strictly-greater comparison makes the earliest insertion win ties.
func (r *Registry) LongestSent() (*domain.Message, bool) {
	if len(r.sent) == 0 {
		return nil, false
	}
	longest := r.sent[0]
	for _, m := range r.sent[1:] {
		if len(m.Text) > len(longest.Text) {
			longest = m
		}
	}
	return longest, true
}

// Sent returns the sent collection in send order.
func (r *Registry) Sent() []*domain.Message { return r.sent }

// Stored returns the stored collection in insertion order.
func (r *Registry) Stored() []*domain.Message { return r.stored }

// TotalSent reports the send counter: the number of messages that have ever
// been classified as sent.
func (r *Registry) TotalSent() int { return r.totalSent }

func (r *Registry) dropHash(hash string) {
	for i, h := range r.hashes {
		if h == hash {
			r.hashes = append(r.hashes[:i], r.hashes[i+1:]...)
			return
		}
	}
}

// removeByHash removes the first message in *coll whose hash matches.
// Messages without a hash never match.
func removeByHash(coll *[]*domain.Message, hash string) (*domain.Message, bool) {
	for i, m := range *coll {
		if m.Hash != "" && m.Hash == hash {
			*coll = append((*coll)[:i], (*coll)[i+1:]...)
			return m, true
		}
	}
	return nil, false
}

// Compile-time assertion that Registry implements domain.MessageRegistry.
var _ domain.MessageRegistry = (*Registry)(nil)
