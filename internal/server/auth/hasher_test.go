package auth

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *BcryptHasher {
	t.Helper()
	h, err := NewBcryptHasher(bcrypt.MinCost, 2)
	require.NoError(t, err)
	return h
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)
	ctx := context.Background()

	for _, pw := range []string{"secret", "pw1", "", "пароль", strings.Repeat("x", 72)} {
		hashed, err := h.Hash(ctx, pw)
		require.NoError(t, err)
		assert.NotEqual(t, pw, hashed)
		assert.True(t, h.Verify(ctx, pw, hashed), "password %q must verify", pw)
	}
}

func TestBcryptHasher_Salted(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)
	ctx := context.Background()

	a, err := h.Hash(ctx, "secret")
	require.NoError(t, err)
	b, err := h.Hash(ctx, "secret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify(ctx, "secret", a))
	assert.True(t, h.Verify(ctx, "secret", b))
}

func TestBcryptHasher_Mismatch(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)
	ctx := context.Background()

	hashed, err := h.Hash(ctx, "pw2")
	require.NoError(t, err)

	assert.False(t, h.Verify(ctx, "pw1", hashed))
	assert.False(t, h.Verify(ctx, "", hashed))
	assert.False(t, h.Verify(ctx, "pw2", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify(ctx, "pw2", ""))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	t.Parallel()
	h, err := NewBcryptHasher(5, 1)
	require.NoError(t, err)

	hashed, err := h.Hash(context.Background(), "secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_TooLongPasswordIsValidationError(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	_, err := h.Hash(context.Background(), strings.Repeat("x", 73))
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestNewBcryptHasher_RejectsBadSettings(t *testing.T) {
	t.Parallel()
	_, err := NewBcryptHasher(bcrypt.MinCost-1, 1)
	assert.Error(t, err)
	_, err = NewBcryptHasher(bcrypt.MaxCost+1, 1)
	assert.Error(t, err)
	_, err = NewBcryptHasher(bcrypt.MinCost, 0)
	assert.Error(t, err)
}

func TestBcryptHasher_CancelledContext(t *testing.T) {
	t.Parallel()
	h, err := NewBcryptHasher(bcrypt.MinCost, 1)
	require.NoError(t, err)

	hashed, err := h.Hash(context.Background(), "secret")
	require.NoError(t, err)

	// hold the only slot so the next callers have to wait
	require.NoError(t, h.sem.Acquire(context.Background(), 1))
	defer h.sem.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = h.Hash(ctx, "secret")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, h.Verify(ctx, "secret", hashed))
}

func TestBcryptHasher_BoundsConcurrency(t *testing.T) {
	t.Parallel()
	const limit = 2
	h, err := NewBcryptHasher(bcrypt.MinCost, limit)
	require.NoError(t, err)

	var inFlight, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, h.sem.Acquire(context.Background(), 1))
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			h.sem.Release(1)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(limit))
}
