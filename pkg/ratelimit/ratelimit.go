package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	DEFAULT_MAX_ATTEMPTS   = 5
	DEFAULT_WINDOW         = 15 * time.Minute
	DEFAULT_LOCKOUT        = 15 * time.Minute
	DEFAULT_SWEEP_INTERVAL = 5 * time.Minute
)

type Config struct {
	MaxAttempts   int           `json:"max_attempts" yaml:"max_attempts"`
	Window        time.Duration `json:"window" yaml:"window"`
	Lockout       time.Duration `json:"lockout" yaml:"lockout"`
	SweepInterval time.Duration `json:"sweep_interval" yaml:"sweep_interval"`
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts:   DEFAULT_MAX_ATTEMPTS,
		Window:        DEFAULT_WINDOW,
		Lockout:       DEFAULT_LOCKOUT,
		SweepInterval: DEFAULT_SWEEP_INTERVAL,
	}
}

// Decision is the outcome of a limiter check. A rejected attempt is a normal
// outcome, not an error.
type Decision struct {
	Allowed           bool
	RetryAfterMinutes int
}

type entry struct {
	attempts    int
	windowStart time.Time
	lockedUntil time.Time // zero value when not locked
}

// LoginLimiter bounds login attempts per client key with a fixed window and a
// temporary lockout once the attempt budget is exhausted. Instances own their
// state, nothing is shared globally.
type LoginLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	conf    Config

	now func() time.Time
}

func NewLoginLimiter(conf Config) *LoginLimiter {
	if conf.MaxAttempts <= 0 {
		conf.MaxAttempts = DEFAULT_MAX_ATTEMPTS
	}
	if conf.Window <= 0 {
		conf.Window = DEFAULT_WINDOW
	}
	if conf.Lockout <= 0 {
		conf.Lockout = DEFAULT_LOCKOUT
	}
	if conf.SweepInterval <= 0 {
		conf.SweepInterval = DEFAULT_SWEEP_INTERVAL
	}
	return &LoginLimiter{
		entries: map[string]*entry{},
		conf:    conf,
		now:     time.Now,
	}
}

// Check records a login attempt for the given key and decides whether it may
// proceed. Read-check-increment runs under the mutex so two attempts arriving
// at the threshold cannot both pass.
func (l *LoginLimiter) Check(key string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	e, ok := l.entries[key]
	if ok && !e.lockedUntil.IsZero() && e.lockedUntil.After(now) {
		return Decision{
			Allowed:           false,
			RetryAfterMinutes: minutesCeil(e.lockedUntil.Sub(now)),
		}
	}

	if !ok || now.Sub(e.windowStart) > l.conf.Window || !e.lockedUntil.IsZero() {
		l.entries[key] = &entry{
			attempts:    1,
			windowStart: now,
		}
		return Decision{Allowed: true}
	}

	e.attempts++
	if e.attempts >= l.conf.MaxAttempts {
		e.lockedUntil = now.Add(l.conf.Lockout)
		return Decision{
			Allowed:           false,
			RetryAfterMinutes: minutesCeil(l.conf.Lockout),
		}
	}
	return Decision{Allowed: true}
}

// Reset clears the state for a key. Called after a successful login.
func (l *LoginLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
}

// Start runs the periodic sweep until the context is cancelled. The sweep only
// frees memory, Check and Reset re-evaluate expiry inline regardless.
func (l *LoginLimiter) Start(ctx context.Context) {
	ticker := time.NewTicker(l.conf.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("login limiter sweep stopped")
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

func (l *LoginLimiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, e := range l.entries {
		if !e.lockedUntil.IsZero() {
			if e.lockedUntil.Before(now) {
				delete(l.entries, key)
			}
		} else if now.Sub(e.windowStart) > l.conf.Window {
			delete(l.entries, key)
		}
	}
}

func minutesCeil(d time.Duration) int {
	mins := int(d / time.Minute)
	if d%time.Minute != 0 {
		mins++
	}
	return mins
}
