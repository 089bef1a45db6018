package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestKeyringRoundTrip(t *testing.T) {
	keyring.MockInit()

	require.NoError(t, StorePassword("bidder42", []byte("hunter2")))

	got, err := LoadPassword("bidder42")
	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), got)

	// Overwrite replaces the previous entry.
	require.NoError(t, StorePassword("bidder42", []byte("new-password")))
	got, err = LoadPassword("bidder42")
	require.NoError(t, err)
	assert.Equal(t, []byte("new-password"), got)
}

func TestKeyringMissingAccount(t *testing.T) {
	keyring.MockInit()

	_, err := LoadPassword("nobody")
	assert.ErrorIs(t, err, ErrNoStoredPassword)
}

func TestKeyringForget(t *testing.T) {
	keyring.MockInit()

	require.NoError(t, StorePassword("bidder42", []byte("hunter2")))
	require.NoError(t, ForgetPassword("bidder42"))

	_, err := LoadPassword("bidder42")
	assert.ErrorIs(t, err, ErrNoStoredPassword)

	// Forgetting an absent entry is not an error.
	assert.NoError(t, ForgetPassword("bidder42"))
}
