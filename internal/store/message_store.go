package store

import (
	"path/filepath"
	"sync"

	"quickchat/internal/domain"
)

const storedMessagesFile = "stored_messages.json"

// MessageFileStore keeps the stored messages in a JSON array on disk.
type MessageFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewMessageFileStore stores messages under dir.
func NewMessageFileStore(dir string) *MessageFileStore {
	return &MessageFileStore{dir: dir}
}

// SaveMessages writes the full stored collection, replacing the file.
func (s *MessageFileStore) SaveMessages(msgs []*domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msgs == nil {
		msgs = []*domain.Message{}
	}
	return writeJSON(s.path(), msgs, 0o600)
}

// LoadMessages reads the stored collection. A missing file yields an empty
// result with no error.
func (s *MessageFileStore) LoadMessages() ([]*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var msgs []*domain.Message
	if _, err := readJSON(s.path(), &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *MessageFileStore) path() string {
	return filepath.Join(s.dir, storedMessagesFile)
}

// Compile-time assertion that MessageFileStore implements domain.MessageStore.
var _ domain.MessageStore = (*MessageFileStore)(nil)
