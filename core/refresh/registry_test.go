package refresh_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridpass/authcore/core/refresh"
)

// fakeStore is an in-memory Store honoring the one-record-per-user
// uniqueness invariant.
type fakeStore struct {
	mu     sync.Mutex
	byUser map[string]string // userID -> jti
	fail   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{byUser: make(map[string]string)}
}

func (s *fakeStore) Replace(_ context.Context, jti, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.byUser[userID] = jti
	return nil
}

func (s *fakeStore) Exists(_ context.Context, jti, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return false, s.fail
	}
	return s.byUser[userID] == jti, nil
}

func (s *fakeStore) DeleteByUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	delete(s.byUser, userID)
	return nil
}

func TestRegistry_Rotate(t *testing.T) {
	t.Parallel()

	t.Run("returns a fresh 15-char jti", func(t *testing.T) {
		t.Parallel()

		reg := refresh.NewRegistry(newFakeStore())
		ctx := context.Background()

		jti, err := reg.Rotate(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, jti, 15)

		live, err := reg.IsLive(ctx, jti, "u1")
		require.NoError(t, err)
		assert.True(t, live)
	})

	t.Run("second rotation kills the first jti", func(t *testing.T) {
		t.Parallel()

		reg := refresh.NewRegistry(newFakeStore())
		ctx := context.Background()

		jti1, err := reg.Rotate(ctx, "u1")
		require.NoError(t, err)
		jti2, err := reg.Rotate(ctx, "u1")
		require.NoError(t, err)
		require.NotEqual(t, jti1, jti2)

		live1, err := reg.IsLive(ctx, jti1, "u1")
		require.NoError(t, err)
		assert.False(t, live1, "superseded jti must not stay live")

		live2, err := reg.IsLive(ctx, jti2, "u1")
		require.NoError(t, err)
		assert.True(t, live2)
	})

	t.Run("rotations for different users are independent", func(t *testing.T) {
		t.Parallel()

		reg := refresh.NewRegistry(newFakeStore())
		ctx := context.Background()

		jti1, err := reg.Rotate(ctx, "u1")
		require.NoError(t, err)
		_, err = reg.Rotate(ctx, "u2")
		require.NoError(t, err)

		live, err := reg.IsLive(ctx, jti1, "u1")
		require.NoError(t, err)
		assert.True(t, live)
	})

	t.Run("concurrent rotations leave exactly one live record", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		reg := refresh.NewRegistry(store)
		ctx := context.Background()

		const workers = 16
		jtis := make([]string, workers)

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				jti, err := reg.Rotate(ctx, "u1")
				assert.NoError(t, err)
				jtis[i] = jti
			}()
		}
		wg.Wait()

		liveCount := 0
		for _, jti := range jtis {
			live, err := reg.IsLive(ctx, jti, "u1")
			require.NoError(t, err)
			if live {
				liveCount++
			}
		}
		assert.Equal(t, 1, liveCount)
	})

	t.Run("rejects empty user id", func(t *testing.T) {
		t.Parallel()

		reg := refresh.NewRegistry(newFakeStore())
		_, err := reg.Rotate(context.Background(), "")
		assert.ErrorIs(t, err, refresh.ErrMissingUserID)
	})

	t.Run("wraps store failure", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		store.fail = errors.New("connection refused")
		reg := refresh.NewRegistry(store)

		_, err := reg.Rotate(context.Background(), "u1")
		assert.ErrorIs(t, err, refresh.ErrRotate)
	})
}

func TestRegistry_IsLive(t *testing.T) {
	t.Parallel()

	t.Run("unknown jti is not live", func(t *testing.T) {
		t.Parallel()

		reg := refresh.NewRegistry(newFakeStore())
		live, err := reg.IsLive(context.Background(), "never-issued", "u1")
		require.NoError(t, err)
		assert.False(t, live)
	})

	t.Run("jti bound to another user is not live", func(t *testing.T) {
		t.Parallel()

		reg := refresh.NewRegistry(newFakeStore())
		ctx := context.Background()

		jti, err := reg.Rotate(ctx, "u1")
		require.NoError(t, err)

		live, err := reg.IsLive(ctx, jti, "u2")
		require.NoError(t, err)
		assert.False(t, live)
	})

	t.Run("empty arguments are never live", func(t *testing.T) {
		t.Parallel()

		reg := refresh.NewRegistry(newFakeStore())
		live, err := reg.IsLive(context.Background(), "", "u1")
		require.NoError(t, err)
		assert.False(t, live)
	})
}

func TestRegistry_RevokeAll(t *testing.T) {
	t.Parallel()

	t.Run("revokes the live record", func(t *testing.T) {
		t.Parallel()

		reg := refresh.NewRegistry(newFakeStore())
		ctx := context.Background()

		jti, err := reg.Rotate(ctx, "u1")
		require.NoError(t, err)

		require.NoError(t, reg.RevokeAll(ctx, "u1"))

		live, err := reg.IsLive(ctx, jti, "u1")
		require.NoError(t, err)
		assert.False(t, live)
	})

	t.Run("idempotent for users with no record", func(t *testing.T) {
		t.Parallel()

		reg := refresh.NewRegistry(newFakeStore())
		assert.NoError(t, reg.RevokeAll(context.Background(), "nobody"))
	})
}
