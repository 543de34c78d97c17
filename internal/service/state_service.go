package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"phaseplan/internal/models"
	"phaseplan/internal/reducer"
)

// StateStore is the key-value slot that holds the serialized app state
type StateStore interface {
	Load() (blob string, found bool, err error)
	Save(blob string) error
}

// StateService owns the in-memory app state. It loads the state once,
// applies reducers to it and rewrites the whole blob after every change.
type StateService struct {
	store StateStore

	mu             sync.RWMutex
	state          models.AppState
	lastPersistErr error
}

// NewStateService creates a state service and loads the stored state.
// Missing or unreadable data starts from the seed state.
func NewStateService(store StateStore) *StateService {
	s := &StateService{store: store}
	s.state = s.load()
	return s
}

func (s *StateService) load() models.AppState {
	blob, found, err := s.store.Load()
	if err != nil {
		log.Printf("Warning: could not load state, starting from defaults: %v", err)
		return models.DefaultState()
	}
	if !found {
		return models.DefaultState()
	}

	state, err := DecodeState(blob)
	if err != nil {
		log.Printf("Warning: stored state is corrupt, starting from defaults: %v", err)
		return models.DefaultState()
	}
	return state
}

// State returns the current state. Reducers never modify a state in place,
// so the returned value stays valid after later updates.
func (s *StateService) State() models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Apply runs fn against the current state and, on success, makes its result
// current and persists it. Persistence failures are logged and kept for
// LastPersistError; they never fail the update.
func (s *StateService) Apply(fn reducer.Func) (models.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.state)
	if err != nil {
		return s.state, err
	}
	s.state = next
	s.persist(next)
	return next, nil
}

func (s *StateService) persist(state models.AppState) {
	blob, err := EncodeState(state)
	if err == nil {
		err = s.store.Save(blob)
	}
	if err != nil {
		log.Printf("Warning: failed to persist state: %v", err)
	}
	s.lastPersistErr = err
}

// LastPersistError returns the error from the most recent save, or nil
func (s *StateService) LastPersistError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastPersistErr
}

// ErrEmptyState is returned by DecodeState for a blob that holds no state
var ErrEmptyState = errors.New("stored state is empty")

// DecodeState parses a stored blob
func DecodeState(blob string) (models.AppState, error) {
	var state *models.AppState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return models.AppState{}, fmt.Errorf("failed to decode state: %w", err)
	}
	// null and {} carry no state at all
	if state == nil || (state.Weeks == nil && state.Logs == nil && state.Settings == (models.Settings{})) {
		return models.AppState{}, ErrEmptyState
	}
	state.Normalize()
	return *state, nil
}

// EncodeState serializes state for storage
func EncodeState(state models.AppState) (string, error) {
	state.Normalize()
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}
	return string(data), nil
}
