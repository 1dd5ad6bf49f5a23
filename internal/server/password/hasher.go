// Package password hashes and verifies principal passwords with bcrypt.
//
// bcrypt is CPU bound, so every call first acquires a slot from a weighted
// semaphore. This caps the number of concurrent hash computations and lets
// a cancelled request give up while it is still waiting for a slot.
package password

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// MaxLength is the longest password bcrypt accepts.
const MaxLength = 72

type Hasher struct {
	cost  int
	sem   *semaphore.Weighted
	dummy string
}

// NewHasher returns a Hasher that runs at most workers hash computations at
// once. It fails only for a cost bcrypt does not support.
func NewHasher(cost, workers int) (*Hasher, error) {
	if workers < 1 {
		workers = 1
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("gophauth-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy digest: %w", err)
	}
	return &Hasher{
		cost:  cost,
		sem:   semaphore.NewWeighted(int64(workers)),
		dummy: string(dummy),
	}, nil
}

// Hash returns a bcrypt digest of plaintext. The digest encodes algorithm,
// cost and salt.
func (h *Hasher) Hash(ctx context.Context, plaintext []byte) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("acquire hash slot: %w", err)
	}
	defer h.sem.Release(1)

	digest, err := bcrypt.GenerateFromPassword(plaintext, h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed digest is a
// mismatch, not an error; only a cancelled context is.
func (h *Hasher) Verify(ctx context.Context, plaintext []byte, digest string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, fmt.Errorf("acquire hash slot: %w", err)
	}
	defer h.sem.Release(1)

	return bcrypt.CompareHashAndPassword([]byte(digest), plaintext) == nil, nil
}

// VerifyDummy burns the same CPU as Verify against a real digest and always
// reports false. Callers use it when the identity is unknown so the response
// time does not tell the two cases apart.
func (h *Hasher) VerifyDummy(ctx context.Context, plaintext []byte) error {
	_, err := h.Verify(ctx, plaintext, h.dummy)
	return err
}
