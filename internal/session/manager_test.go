package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CreateGetDelete(t *testing.T) {
	m := NewManager(loadedEngine())

	s := m.Create()
	got, err := m.Get(s.ID)

	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, ScreenLanding, got.View().Screen)

	require.NoError(t, m.Delete(s.ID))
	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.Delete(s.ID), ErrNotFound)
}

func TestManager_UniqueIDs(t *testing.T) {
	m := NewManager(loadedEngine())

	a, b := m.Create(), m.Create()

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, m.Len())
}

func TestManager_SweepRemovesIdleOnly(t *testing.T) {
	m := NewManager(loadedEngine())
	stale := m.Create()
	fresh := m.Create()
	stale.mu.Lock()
	stale.lastSeen = time.Now().Add(-time.Hour)
	stale.mu.Unlock()

	removed := m.Sweep(30 * time.Minute)

	assert.Equal(t, 1, removed)
	_, err := m.Get(stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestManager_GetKeepsSessionAlive(t *testing.T) {
	m := NewManager(loadedEngine())
	s := m.Create()
	s.mu.Lock()
	s.lastSeen = time.Now().Add(-time.Hour)
	s.mu.Unlock()

	_, err := m.Get(s.ID)
	require.NoError(t, err)

	assert.Zero(t, m.Sweep(30*time.Minute))
	_, err = m.Get(s.ID)
	assert.NoError(t, err)
}

func TestManager_SweepKeepsBusySessions(t *testing.T) {
	eng := loadedEngine()
	eng.block = make(chan struct{})
	eng.started = make(chan struct{}, 1)
	m := NewManager(eng)
	s := m.Create()

	done := make(chan error, 1)
	go func() { done <- s.Search(context.Background(), "q") }()
	<-eng.started
	s.mu.Lock()
	s.lastSeen = time.Now().Add(-time.Hour)
	s.mu.Unlock()

	assert.Zero(t, m.Sweep(time.Minute))

	close(eng.block)
	require.NoError(t, <-done)
}

func TestManager_JanitorStopsWithContext(t *testing.T) {
	m := NewManager(loadedEngine())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.Janitor(ctx, time.Hour, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
