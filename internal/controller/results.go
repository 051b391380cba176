package controller

import (
	"sync"

	"github.com/ytget/colock-player/internal/model"
)

// ResultStore holds the latest conversion outcome. The conversion
// controller is its only writer; everything else reads through Text.
type ResultStore struct {
	mu        sync.RWMutex
	result    model.ConversionResult
	published bool
	onUpdate  func(model.ConversionResult)
}

// NewResultStore creates an empty store
func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// SetUpdateCallback sets the callback invoked after every publish
func (s *ResultStore) SetUpdateCallback(callback func(model.ConversionResult)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// set replaces the current result
func (s *ResultStore) set(result model.ConversionResult) {
	s.mu.Lock()
	s.result = result
	s.published = true
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(result)
	}
}

// Result returns the current result and whether anything was published yet
func (s *ResultStore) Result() (model.ConversionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result, s.published
}

// Text returns the current successful result text. An error state or an
// empty store yields "".
func (s *ResultStore) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result.IsError() {
		return ""
	}
	return s.result.Text
}
