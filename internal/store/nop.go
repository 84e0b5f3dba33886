package store

import (
	"time"

	"github.com/amishk599/resumatch/internal/model"
)

// NopStore is the history store used when history is disabled. Nothing is
// written and nothing is ever listed.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) Save(rec model.Record) error              { return nil }
func (s *NopStore) Recent(limit int) ([]model.Record, error) { return nil, nil }
func (s *NopStore) Cleanup(olderThan time.Duration) error    { return nil }
