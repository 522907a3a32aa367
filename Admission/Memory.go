package Admission

import (
	"context"
	"sync"
	"time"
)

type MemoryEntry struct {

	LastAdmitted time.Time
	ExpiresAt    time.Time

}

// MemoryStore keeps admission records in process. Records expire once they can no longer
// reject anything, and the store never holds more than Capacity guilds.
type MemoryStore struct {

	Data     map[string]MemoryEntry
	Mutex    sync.Mutex
	Capacity int

}

func NewMemoryStore(Capacity int) *MemoryStore {

	return &MemoryStore{

		Data:     make(map[string]MemoryEntry),
		Capacity: Capacity,

	}

}

func (M *MemoryStore) Admit(_ context.Context, GuildID string, Now time.Time, Cooldown time.Duration) (Decision, error) {

	M.Mutex.Lock()
	defer M.Mutex.Unlock()

	if Entry, Exists := M.Data[GuildID]; Exists {

		Elapsed := Now.Sub(Entry.LastAdmitted)

		if Elapsed < Cooldown {

			return Decision{Admitted: false, RetryAfter: Cooldown - Elapsed}, nil

		}

	} else if M.Capacity > 0 && len(M.Data) >= M.Capacity {

		M.evict(Now)

	}

	M.Data[GuildID] = MemoryEntry{

		LastAdmitted: Now,
		ExpiresAt:    Now.Add(Cooldown),

	}

	return Decision{Admitted: true}, nil

}

// evict drops expired records, then the oldest one if the store is still full. Caller holds Mutex.
func (M *MemoryStore) evict(Now time.Time) {

	M.cleanExpired(Now)

	if len(M.Data) < M.Capacity {

		return

	}

	var OldestKey string
	var Oldest time.Time

	for Key, Entry := range M.Data {

		if OldestKey == "" || Entry.LastAdmitted.Before(Oldest) {

			OldestKey, Oldest = Key, Entry.LastAdmitted

		}

	}

	delete(M.Data, OldestKey)

}

func (M *MemoryStore) cleanExpired(Now time.Time) int {

	Removed := 0

	for Key, Entry := range M.Data {

		if !Now.Before(Entry.ExpiresAt) {

			delete(M.Data, Key)
			Removed++

		}

	}

	return Removed

}

// CleanExpired removes records whose cooldown has passed at Now and returns how many were dropped.
func (M *MemoryStore) CleanExpired(Now time.Time) int {

	M.Mutex.Lock()
	defer M.Mutex.Unlock()

	return M.cleanExpired(Now)

}

func (M *MemoryStore) Len() int {

	M.Mutex.Lock()
	defer M.Mutex.Unlock()

	return len(M.Data)

}

// StartAutoCleanup sweeps expired records every Interval until Ctx ends.
func (M *MemoryStore) StartAutoCleanup(Ctx context.Context, Interval time.Duration) {

	if Interval <= 0 {

		return

	}

	go func() {

		Ticker := time.NewTicker(Interval)
		defer Ticker.Stop()

		for {

			select {

				case <-Ctx.Done():

					return

				case Tick := <-Ticker.C:

					M.CleanExpired(Tick)

			}

		}

	}()

}
