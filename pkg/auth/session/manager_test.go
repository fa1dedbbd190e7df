package session

import (
	"context"
	"errors"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type fakeStore struct {
	values map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (f *fakeStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.values[key] = value.(string)
	return nil
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", redislib.Nil
	}
	return value, nil
}

func (f *fakeStore) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) AccessSessionKey(accessID string) string {
	return "test:session:access:" + accessID
}

func newTestManager() (*Manager, *fakeStore) {
	store := newFakeStore()
	return &Manager{store: store, keyer: fakeKeyer{}, ttl: time.Hour}, store
}

func TestManagerGenerateAndHasSession(t *testing.T) {
	mgr, store := newTestManager()
	ctx := context.Background()

	token, err := mgr.Generate(ctx, "access-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty refresh token")
	}
	if stored := store.values["test:session:access:access-1"]; stored != token {
		t.Fatalf("expected stored token to match, got %q", stored)
	}

	ok, err := mgr.HasSession(ctx, "access-1")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !ok {
		t.Fatal("expected active session")
	}

	ok, err = mgr.HasSession(ctx, "access-unknown")
	if err != nil {
		t.Fatalf("has session for unknown id: %v", err)
	}
	if ok {
		t.Fatal("expected no session for unknown id")
	}
}

func TestManagerRotate_swapsSession(t *testing.T) {
	mgr, store := newTestManager()
	ctx := context.Background()

	token, err := mgr.Generate(ctx, "access-old")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	newAccessID, newToken, err := mgr.Rotate(ctx, "access-old", token)
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if newAccessID == "access-old" {
		t.Fatal("expected a fresh access id")
	}
	if newToken == token {
		t.Fatal("expected a fresh refresh token")
	}

	if _, ok := store.values["test:session:access:access-old"]; ok {
		t.Fatal("expected old session to be deleted")
	}
	if stored := store.values["test:session:access:"+newAccessID]; stored != newToken {
		t.Fatalf("expected new session to be stored, got %q", stored)
	}
}

func TestManagerRotate_rejectsMismatchedToken(t *testing.T) {
	mgr, _ := newTestManager()
	ctx := context.Background()

	if _, err := mgr.Generate(ctx, "access-2"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, _, err := mgr.Rotate(ctx, "access-2", "forged-token")
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}

	_, _, err = mgr.Rotate(ctx, "access-missing", "anything")
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for missing session, got %v", err)
	}
}

func TestManagerRevoke_dropsSession(t *testing.T) {
	mgr, _ := newTestManager()
	ctx := context.Background()

	token, err := mgr.Generate(ctx, "access-3")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := mgr.Revoke(ctx, "access-3"); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	ok, err := mgr.HasSession(ctx, "access-3")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("expected revoked session to be gone")
	}

	// Rotating a revoked session must fail.
	if _, _, err := mgr.Rotate(ctx, "access-3", token); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken after revoke, got %v", err)
	}
}
