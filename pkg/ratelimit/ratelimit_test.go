package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func newTestLimiter(conf Config) (*LoginLimiter, *time.Time) {
	l := NewLoginLimiter(conf)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestCheckAllowsAttemptsBelowThreshold(t *testing.T) {
	l, _ := newTestLimiter(DefaultConfig())

	for i := 1; i <= 4; i++ {
		d := l.Check("10.0.0.1")
		if !d.Allowed {
			t.Fatalf("attempt %d should be allowed", i)
		}
	}
}

func TestFifthAttemptTriggersLockout(t *testing.T) {
	l, current := newTestLimiter(DefaultConfig())

	for i := 1; i <= 4; i++ {
		if d := l.Check("10.0.0.1"); !d.Allowed {
			t.Fatalf("attempt %d should be allowed", i)
		}
	}

	d := l.Check("10.0.0.1")
	if d.Allowed {
		t.Fatal("5th attempt should be rejected")
	}
	if d.RetryAfterMinutes != 15 {
		t.Errorf("expected 15 minutes lockout, got %d", d.RetryAfterMinutes)
	}

	// still locked shortly before lockout expiry, remaining minutes rounded up
	*current = current.Add(14*time.Minute + 30*time.Second)
	d = l.Check("10.0.0.1")
	if d.Allowed {
		t.Fatal("attempt during lockout should be rejected")
	}
	if d.RetryAfterMinutes != 1 {
		t.Errorf("expected 1 remaining minute, got %d", d.RetryAfterMinutes)
	}

	// allowed again once the lockout has elapsed
	*current = current.Add(time.Minute)
	if d := l.Check("10.0.0.1"); !d.Allowed {
		t.Fatal("attempt after lockout expiry should be allowed")
	}
}

func TestWindowExpiryStartsFreshEntry(t *testing.T) {
	l, current := newTestLimiter(DefaultConfig())

	for i := 1; i <= 4; i++ {
		l.Check("10.0.0.1")
	}

	*current = current.Add(16 * time.Minute)

	// new window, counted as attempt #1 again
	for i := 1; i <= 4; i++ {
		if d := l.Check("10.0.0.1"); !d.Allowed {
			t.Fatalf("attempt %d in fresh window should be allowed", i)
		}
	}
}

func TestResetClearsAttempts(t *testing.T) {
	l, _ := newTestLimiter(DefaultConfig())

	for i := 1; i <= 5; i++ {
		l.Check("10.0.0.1")
	}
	if d := l.Check("10.0.0.1"); d.Allowed {
		t.Fatal("expected key to be locked")
	}

	l.Reset("10.0.0.1")

	for i := 1; i <= 4; i++ {
		if d := l.Check("10.0.0.1"); !d.Allowed {
			t.Fatalf("attempt %d after reset should be allowed", i)
		}
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(DefaultConfig())

	for i := 1; i <= 5; i++ {
		l.Check("10.0.0.1")
	}
	if d := l.Check("10.0.0.1"); d.Allowed {
		t.Fatal("expected first key to be locked")
	}
	if d := l.Check("10.0.0.2"); !d.Allowed {
		t.Fatal("other keys should not be affected by a lockout")
	}
}

func TestConcurrentAttemptsAtThreshold(t *testing.T) {
	l, _ := newTestLimiter(DefaultConfig())

	for i := 1; i <= 3; i++ {
		l.Check("10.0.0.1")
	}

	// attempts 4 and 5 arrive at the same time; exactly one of them must
	// observe the lockout transition
	var wg sync.WaitGroup
	results := make([]Decision, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			results[slot] = l.Check("10.0.0.1")
		}(i)
	}
	wg.Wait()

	allowed := 0
	lockouts := 0
	for _, d := range results {
		if d.Allowed {
			allowed++
		} else {
			lockouts++
		}
	}
	if allowed != 1 || lockouts != 1 {
		t.Errorf("expected exactly one allowed and one lockout, got %d allowed, %d lockouts", allowed, lockouts)
	}
}

func TestSweepRemovesExpiredEntries(t *testing.T) {
	l, current := newTestLimiter(DefaultConfig())

	l.Check("expired-window")
	for i := 1; i <= 5; i++ {
		l.Check("expired-lock")
	}
	l.Check("active")

	*current = current.Add(16 * time.Minute)
	l.Check("active") // refresh window for this key
	l.sweep()

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.entries["expired-window"]; ok {
		t.Error("expected expired window entry to be swept")
	}
	if _, ok := l.entries["expired-lock"]; ok {
		t.Error("expected expired lockout entry to be swept")
	}
	if _, ok := l.entries["active"]; !ok {
		t.Error("expected active entry to survive the sweep")
	}
}
