package auth

import (
	"net/http"
	"strings"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Only the second space-separated field is looked at; the scheme word
// itself is not checked. An absent or empty field yields ErrTokenMissing.
func BearerToken(r *http.Request) (string, error) {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", ErrTokenMissing
	}
	return parts[1], nil
}
