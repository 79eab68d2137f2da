package game

import "strings"

const maxNameLength = 32

// SanitizeDisplayName replaces control characters with spaces and collapses
// runs of whitespace into single spaces.
func SanitizeDisplayName(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, raw)
	return strings.Join(strings.Fields(cleaned), " ")
}

// NormalizeRoomCode trims and uppercases a room join code. All lookups go
// through this so codes are case-insensitive at the edges.
func NormalizeRoomCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func ensureSafeName(raw, kind string) (string, error) {
	sanitized := SanitizeDisplayName(raw)
	if sanitized == "" {
		return "", &ValidationError{kind + " name is required"}
	}
	if len([]rune(sanitized)) > maxNameLength {
		return "", &ValidationError{kind + " name is too long"}
	}
	if strings.ContainsAny(sanitized, "<>") {
		return "", &ValidationError{kind + " name contains invalid characters"}
	}
	return sanitized, nil
}

// EnsureSafePlayerName sanitizes a player display name or fails with a
// ValidationError.
func EnsureSafePlayerName(raw string) (string, error) {
	return ensureSafeName(raw, "Player")
}

// EnsureSafeRoomName sanitizes a room display name or fails with a
// ValidationError.
func EnsureSafeRoomName(raw string) (string, error) {
	return ensureSafeName(raw, "Room")
}
