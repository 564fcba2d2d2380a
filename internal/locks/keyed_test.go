package locks_test

import (
	"sync"
	"testing"
	"time"

	"github.com/Kekatrice/DiscordBotty/internal/locks"
	"github.com/stretchr/testify/assert"
)

func TestKeyed_MutualExclusionPerKey(t *testing.T) {
	keyed := locks.NewKeyed()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := keyed.Lock("nyx")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyed_DifferentKeysDoNotBlock(t *testing.T) {
	keyed := locks.NewKeyed()

	unlockA := keyed.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := keyed.Lock("b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestKeyed_OppositePairsDoNotDeadlock(t *testing.T) {
	keyed := locks.NewKeyed()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := keyed.Lock("alice", "bob")
			defer unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := keyed.Lock("bob", "alice")
			defer unlock()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("opposite-order pair locking deadlocked")
	}
}

func TestKeyed_DuplicateKeysDoNotSelfDeadlock(t *testing.T) {
	keyed := locks.NewKeyed()

	done := make(chan struct{})
	go func() {
		unlock := keyed.Lock("self", "self")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("duplicate keys self-deadlocked")
	}
}
