package auth

import (
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	testCases := []struct {
		name       string
		submitted  string
		configured string
		expected   bool
	}{
		{name: "match", submitted: "s3cret", configured: "s3cret", expected: true},
		{name: "mismatch", submitted: "wrong", configured: "s3cret", expected: false},
		{name: "empty configured never matches", submitted: "", configured: "", expected: false},
		{name: "empty submitted against real secret", submitted: "", configured: "s3cret", expected: false},
		{name: "prefix is not a match", submitted: "s3c", configured: "s3cret", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Verify(tc.submitted, tc.configured))
		})
	}
}

func TestVerifyArgon2idHash(t *testing.T) {
	hash, err := argon2id.CreateHash("s3cret", argon2id.DefaultParams)
	require.NoError(t, err)

	assert.True(t, Verify("s3cret", hash))
	assert.False(t, Verify("wrong", hash))
	assert.False(t, Verify(hash, hash), "the hash itself is not the password")
}

func TestVerifyTOTPDisabled(t *testing.T) {
	// no secret configured: second factor is off, any code passes
	assert.True(t, VerifyTOTP("", ""))
	assert.True(t, VerifyTOTP("123456", ""))
}

func TestVerifyTOTPRejectsGarbage(t *testing.T) {
	assert.False(t, VerifyTOTP("000000", "JBSWY3DPEHPK3PXP"))
	assert.False(t, VerifyTOTP("not-a-code", "JBSWY3DPEHPK3PXP"))
}

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTracker() (*MemoryTracker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewMemoryTrackerWithClock(clock.now), clock
}

func TestTrackerLocksAfterThreshold(t *testing.T) {
	tracker, _ := newTestTracker()

	for i := 0; i < FailureThreshold-1; i++ {
		tracker.RecordFailure("203.0.113.5")
		assert.False(t, tracker.IsLocked("203.0.113.5"), "failure %d should not lock", i+1)
	}

	tracker.RecordFailure("203.0.113.5")
	assert.True(t, tracker.IsLocked("203.0.113.5"))
}

func TestTrackerIdentifiersAreIndependent(t *testing.T) {
	tracker, _ := newTestTracker()

	for i := 0; i < FailureThreshold; i++ {
		tracker.RecordFailure("203.0.113.5")
	}

	assert.True(t, tracker.IsLocked("203.0.113.5"))
	assert.False(t, tracker.IsLocked("198.51.100.7"))
}

func TestTrackerUnlocksAfterLockoutDuration(t *testing.T) {
	tracker, clock := newTestTracker()

	for i := 0; i < FailureThreshold; i++ {
		tracker.RecordFailure("203.0.113.5")
	}

	require.True(t, tracker.IsLocked("203.0.113.5"))

	clock.advance(LockoutDuration + time.Second)
	assert.False(t, tracker.IsLocked("203.0.113.5"))
}

func TestTrackerPruneSlidesWithNow(t *testing.T) {
	tracker, clock := newTestTracker()

	// four failures, then a fifth just inside the retention window keeps
	// the identifier locked; pruning is anchored to "now", not to the
	// time of the fifth failure
	for i := 0; i < 4; i++ {
		tracker.RecordFailure("203.0.113.5")
	}

	clock.advance(9 * time.Minute)
	tracker.RecordFailure("203.0.113.5")
	assert.True(t, tracker.IsLocked("203.0.113.5"))

	// one more minute and the first four fall off the window
	clock.advance(time.Minute + time.Second)
	assert.False(t, tracker.IsLocked("203.0.113.5"))
}

func TestTrackerClear(t *testing.T) {
	tracker, _ := newTestTracker()

	for i := 0; i < FailureThreshold; i++ {
		tracker.RecordFailure("203.0.113.5")
	}

	require.True(t, tracker.IsLocked("203.0.113.5"))

	tracker.Clear("203.0.113.5")
	assert.False(t, tracker.IsLocked("203.0.113.5"))
}
