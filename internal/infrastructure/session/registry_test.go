package session

import (
	"testing"
	"time"

	"storefront/internal/domain"
	"storefront/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(ttl time.Duration) *Registry {
	return NewRegistry(utils.NewSessionSigner("test-secret", time.Hour), ttl)
}

func TestResolveIssuesSession(t *testing.T) {
	r := newRegistry(time.Hour)

	st, token, created, err := r.Resolve("")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, st.ID())
	assert.Equal(t, 1, r.Len())
}

func TestResolveReturnsSameStore(t *testing.T) {
	r := newRegistry(time.Hour)
	first, token, _, err := r.Resolve("")
	require.NoError(t, err)
	first.AddToCart(domain.Item{ID: "1", Price: 10})

	again, reissued, created, err := r.Resolve(token)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, first, again)

	id, err := r.signer.Validate(reissued)
	require.NoError(t, err)
	assert.Equal(t, first.ID(), id)
	assert.Len(t, again.CartEntries(), 1)
}

func TestResolveInvalidTokenStartsFresh(t *testing.T) {
	r := newRegistry(time.Hour)
	_, token, _, err := r.Resolve("")
	require.NoError(t, err)

	other := utils.NewSessionSigner("another-secret", time.Hour)
	forged, err := other.Sign("whatever")
	require.NoError(t, err)

	for _, tok := range []string{"garbage", forged, token + "x"} {
		st, issued, created, err := r.Resolve(tok)
		require.NoError(t, err)
		assert.True(t, created, tok)
		assert.NotEqual(t, tok, issued)
		assert.Empty(t, st.CartEntries())
	}
}

func TestSessionExpiryStopsPendingCheckout(t *testing.T) {
	r := newRegistry(30 * time.Millisecond)
	st, token, _, err := r.Resolve("")
	require.NoError(t, err)
	st.AddToCart(domain.Item{ID: "1", Price: 10})

	completed := make(chan struct{}, 1)
	_, started := st.BeginCheckout(time.Hour, func(domain.CheckoutReceipt) { completed <- struct{}{} })
	require.True(t, started)

	require.Eventually(t, func() bool { return r.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.False(t, st.CheckoutPending())

	_, _, created, err := r.Resolve(token)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Empty(t, completed)
}

func TestActiveSessionOutlivesTokenLifetime(t *testing.T) {
	ttl := 2 * time.Second
	r := NewRegistry(utils.NewSessionSigner("test-secret", ttl), ttl)
	first, token, _, err := r.Resolve("")
	require.NoError(t, err)

	// keep the visitor busy for almost twice the TTL
	for i := 0; i < 6; i++ {
		time.Sleep(600 * time.Millisecond)
		st, issued, created, err := r.Resolve(token)
		require.NoError(t, err)
		require.False(t, created, "session lost after %v of activity", time.Duration(i+1)*600*time.Millisecond)
		require.Same(t, first, st)
		token = issued
	}
}

func TestCloseStopsPendingCheckouts(t *testing.T) {
	r := newRegistry(time.Hour)
	st, _, _, err := r.Resolve("")
	require.NoError(t, err)
	st.AddToCart(domain.Item{ID: "1", Price: 10})
	_, started := st.BeginCheckout(time.Hour, nil)
	require.True(t, started)

	r.Close()

	assert.Zero(t, r.Len())
	assert.False(t, st.CheckoutPending())
}
