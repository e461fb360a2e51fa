package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horeca/config"
)

func newTestGuardSigner(t *testing.T, ttl time.Duration) *guardCookieSigner {
	t.Helper()

	cfg := &config.Config{
		Guard: &config.GuardConfig{
			CookieSecret: "guard-secret-for-tests",
			CookieTTL:    ttl,
		},
	}

	signer, err := NewGuardCookieSigner(cfg)
	require.NoError(t, err)

	return signer.(*guardCookieSigner)
}

func TestNewGuardCookieSigner_RequiresSecret(t *testing.T) {
	_, err := NewGuardCookieSigner(&config.Config{})
	assert.Error(t, err)

	_, err = NewGuardCookieSigner(&config.Config{Guard: &config.GuardConfig{}})
	assert.Error(t, err)
}

func TestGuardCookieSigner_SignAndVerify(t *testing.T) {
	signer := newTestGuardSigner(t, time.Minute*5)
	userID := uuid.New()

	for _, platformAdmin := range []bool{true, false} {
		token, err := signer.Sign(userID, platformAdmin)
		require.NoError(t, err)

		verdict, err := signer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, userID, verdict.UserID)
		assert.Equal(t, platformAdmin, verdict.PlatformAdmin)
	}
}

func TestGuardCookieSigner_RejectsTampering(t *testing.T) {
	signer := newTestGuardSigner(t, time.Minute*5)

	token, err := signer.Sign(uuid.New(), true)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = signer.Verify(tampered)
	assert.Error(t, err)
}

func TestGuardCookieSigner_RejectsExpired(t *testing.T) {
	signer := newTestGuardSigner(t, time.Minute)
	signer.ttl = -time.Minute

	token, err := signer.Sign(uuid.New(), true)
	require.NoError(t, err)

	_, err = signer.Verify(token)
	assert.Error(t, err)
}

func TestGuardCookieSigner_RejectsForeignSignature(t *testing.T) {
	signerA := newTestGuardSigner(t, time.Minute*5)
	signerB := newTestGuardSigner(t, time.Minute*5)
	signerB.secret = []byte("a-different-secret")

	token, err := signerA.Sign(uuid.New(), true)
	require.NoError(t, err)

	_, err = signerB.Verify(token)
	assert.Error(t, err)
}
