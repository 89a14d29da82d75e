package history

import (
	"context"
	"sync"

	"github.com/KirkDiggler/robuxroyale/internal/models"
)

// MemoryConfig holds configuration for the in-memory repository
type MemoryConfig struct {
	// Cap is how many entries a session keeps
	Cap int
}

type sessionHistory struct {
	// entries are kept oldest first
	entries []*models.HistoryEntry
	stats   models.SessionStats
}

// memoryRepository keeps history for the life of the process
type memoryRepository struct {
	mu       sync.RWMutex
	cap      int
	sessions map[string]*sessionHistory
}

// NewMemory creates an in-memory history repository
func NewMemory(cfg *MemoryConfig) *memoryRepository {
	capacity := DefaultCap
	if cfg != nil && cfg.Cap > 0 {
		capacity = cfg.Cap
	}

	return &memoryRepository{
		cap:      capacity,
		sessions: make(map[string]*sessionHistory),
	}
}

// AddEntry appends and drops the oldest entry past the cap
func (r *memoryRepository) AddEntry(ctx context.Context, input *AddEntryInput) error {
	if err := validateAdd(input); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.sessions[input.SessionID]
	if !ok {
		h = &sessionHistory{}
		r.sessions[input.SessionID] = h
	}

	entry := *input.Entry
	h.entries = append(h.entries, &entry)
	if len(h.entries) > r.cap {
		h.entries = h.entries[len(h.entries)-r.cap:]
	}
	foldStats(&h.stats, &entry)

	return nil
}

// ListEntries returns copies, newest first
func (r *memoryRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.sessions[input.SessionID]
	if !ok {
		return &ListEntriesOutput{Entries: []*models.HistoryEntry{}}, nil
	}

	n := len(h.entries)
	if input.Limit > 0 && input.Limit < n {
		n = input.Limit
	}

	entries := make([]*models.HistoryEntry, 0, n)
	for i := len(h.entries) - 1; i >= 0 && len(entries) < n; i-- {
		entry := *h.entries[i]
		entries = append(entries, &entry)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}

// GetStats returns a copy of the running stats
func (r *memoryRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.SessionStats, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &models.SessionStats{}
	if h, ok := r.sessions[input.SessionID]; ok {
		*stats = h.stats
	}
	return stats, nil
}

// DeleteSession forgets the session
func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return ErrEmptySessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, input.SessionID)
	return nil
}
