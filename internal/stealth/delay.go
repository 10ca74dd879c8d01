package stealth

import (
	"context"
	"math/rand/v2"
	"time"
)

// DelayProfile names a jitter range applied before each upstream request.
type DelayProfile string

const (
	ProfileOff        DelayProfile = "off"
	ProfileAggressive DelayProfile = "aggressive"
	ProfileNormal     DelayProfile = "normal"
	ProfileCautious   DelayProfile = "cautious"
)

// HumanDelay adds randomized jitter between requests.
type HumanDelay struct {
	MinDelay time.Duration
	MaxDelay time.Duration
}

// NewHumanDelay returns the delay for profile, or nil for "off" and unknown
// profiles.
func NewHumanDelay(profile DelayProfile) *HumanDelay {
	switch profile {
	case ProfileCautious:
		return &HumanDelay{MinDelay: 2 * time.Second, MaxDelay: 5 * time.Second}
	case ProfileNormal:
		return &HumanDelay{MinDelay: 500 * time.Millisecond, MaxDelay: 2 * time.Second}
	case ProfileAggressive:
		return &HumanDelay{MinDelay: 200 * time.Millisecond, MaxDelay: 800 * time.Millisecond}
	default:
		return nil
	}
}

// Wait sleeps for a random duration within the range, or until ctx is done.
func (h *HumanDelay) Wait(ctx context.Context) error {
	if h == nil {
		return nil
	}
	t := time.NewTimer(h.next())
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *HumanDelay) next() time.Duration {
	if h.MinDelay >= h.MaxDelay {
		return h.MinDelay
	}
	return h.MinDelay + time.Duration(rand.Int64N(int64(h.MaxDelay-h.MinDelay)))
}
