package service

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
)

// UploadStore is an in-memory store for upload records.
// When maxRecords is reached the oldest records are evicted.
type UploadStore struct {
	records    map[string]*model.UploadRecord
	mu         sync.RWMutex
	maxRecords int // 0 = unlimited
}

func NewUploadStore(maxRecords int) *UploadStore {
	if maxRecords < 0 {
		maxRecords = 0
	}
	slog.Info("upload store initialized", "max_records", maxRecords)
	return &UploadStore{
		records:    make(map[string]*model.UploadRecord),
		maxRecords: maxRecords,
	}
}

func (s *UploadStore) Save(record *model.UploadRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.ID] = record
	s.cleanupIfNeeded()
}

func (s *UploadStore) Get(id string) *model.UploadRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[id]
}

// GetByOwner returns the owner's records, newest first
func (s *UploadStore) GetByOwner(owner string) []*model.UploadRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*model.UploadRecord{}
	for _, r := range s.records {
		if r.Owner == owner {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return newer(result[i], result[j])
	})
	return result
}

func (s *UploadStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
}

// cleanupIfNeeded removes the oldest records when the store exceeds maxRecords.
// Must be called with lock held.
func (s *UploadStore) cleanupIfNeeded() {
	if s.maxRecords <= 0 || len(s.records) <= s.maxRecords {
		return
	}

	records := make([]*model.UploadRecord, 0, len(s.records))
	for _, r := range s.records {
		records = append(records, r)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return newer(records[j], records[i])
	})

	removeCount := len(records) - s.maxRecords
	for i := 0; i < removeCount; i++ {
		slog.Info("evicting old upload record",
			"upload_id", records[i].ID,
			"uploaded_at", records[i].UploadedAt,
		)
		delete(s.records, records[i].ID)
	}
}

// newer orders by upload time, then by id so equal timestamps sort the same way every time
func newer(a, b *model.UploadRecord) bool {
	if !a.UploadedAt.Equal(b.UploadedAt) {
		return a.UploadedAt.After(b.UploadedAt)
	}
	return a.ID > b.ID
}

// Count returns the number of records in the store
func (s *UploadStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
