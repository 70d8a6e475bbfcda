package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/osse101/LiveLikeSpawns_Go/internal/domain"
)

// Source provides the character profiles of a session
type Source interface {
	// PMCProfile returns domain.ErrProfileNotFound when the session has no PMC profile
	PMCProfile(ctx context.Context, sessionID string) (*domain.Profile, error)
	// ScavProfile returns domain.ErrProfileNotFound when the session has no Scav profile
	ScavProfile(ctx context.Context, sessionID string) (*domain.Profile, error)
}

// MemorySource is an in-memory Source
type MemorySource struct {
	mu       sync.RWMutex
	sessions map[string]domain.SessionProfiles
}

// NewMemorySource creates an empty MemorySource
func NewMemorySource() *MemorySource {
	return &MemorySource{sessions: make(map[string]domain.SessionProfiles)}
}

// DecodeMemorySource reads profiles keyed by session id
func DecodeMemorySource(r io.Reader) (*MemorySource, error) {
	sessions := make(map[string]domain.SessionProfiles)
	if err := json.NewDecoder(r).Decode(&sessions); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeProfiles, err)
	}
	return &MemorySource{sessions: sessions}, nil
}

// Put stores the profiles of a session, replacing any previous ones
func (m *MemorySource) Put(sessionID string, profiles domain.SessionProfiles) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = profiles
}

func (m *MemorySource) PMCProfile(_ context.Context, sessionID string) (*domain.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if p := m.sessions[sessionID].PMC; p != nil {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (m *MemorySource) ScavProfile(_ context.Context, sessionID string) (*domain.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if p := m.sessions[sessionID].Scav; p != nil {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}
