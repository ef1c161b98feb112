package application

import (
	"sync"
	"testing"
	"time"
)

// TestUserLocks_DifferentUsersDoNotBlock tests that a held lock does not block another user
func TestUserLocks_DifferentUsersDoNotBlock(t *testing.T) {
	locks := newUserLocks()

	unlockA := locks.Lock("user-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("user-b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected lock for user-b to be acquired while user-a is held")
	}
}

// TestUserLocks_SameUserIsSerialized tests mutual exclusion for one user
func TestUserLocks_SameUserIsSerialized(t *testing.T) {
	locks := newUserLocks()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("user-a")
			defer unlock()

			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Errorf("Expected at most one holder at a time, saw %d", maxSeen)
	}
}

// TestUserLocks_EntriesAreReleased tests that idle users do not accumulate
func TestUserLocks_EntriesAreReleased(t *testing.T) {
	locks := newUserLocks()

	unlock := locks.Lock("user-a")
	if locks.size() != 1 {
		t.Errorf("Expected 1 entry while held, got %d", locks.size())
	}
	unlock()

	if locks.size() != 0 {
		t.Errorf("Expected 0 entries after release, got %d", locks.size())
	}
}
