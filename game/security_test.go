package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeDisplayName(t *testing.T) {
	assert.Equal(t, "Alice Wonderland", SanitizeDisplayName("  Alice   Wonderland  "))
	assert.Equal(t, "a b", SanitizeDisplayName("a\tb"))
	assert.Equal(t, "a b", SanitizeDisplayName("a\x00\x1fb"))
	assert.Equal(t, "", SanitizeDisplayName("   "))
}

func TestEnsureSafePlayerName(t *testing.T) {
	name, err := EnsureSafePlayerName("  Alice   Wonderland  ")
	require.NoError(t, err)
	assert.Equal(t, "Alice Wonderland", name)

	var vErr *ValidationError

	_, err = EnsureSafePlayerName("")
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Player name is required", err.Error())

	_, err = EnsureSafePlayerName(strings.Repeat("x", 33))
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Player name is too long", err.Error())

	_, err = EnsureSafePlayerName("<script>alert(1)</script>")
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Player name contains invalid characters", err.Error())
}

func TestEnsureSafeRoomName(t *testing.T) {
	name, err := EnsureSafeRoomName("Friday  Night Bingo")
	require.NoError(t, err)
	assert.Equal(t, "Friday Night Bingo", name)

	_, err = EnsureSafeRoomName("<b>bold</b>")
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Room name contains invalid characters", err.Error())
}

func TestNormalizeRoomCode(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizeRoomCode(" abc123 "))
	assert.Equal(t, "XYZ", NormalizeRoomCode("xyz"))
	assert.Equal(t, "", NormalizeRoomCode("  "))
}
