// Package auth implements the static credential check gating the tool. There
// are no sessions or roles beyond the user name itself.
package auth

import "crypto/subtle"

// Verify reports whether username/password match an entry in users. The
// password comparison is constant-time.
func Verify(users map[string]string, username, password string) bool {
	want, ok := users[username]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(password)) == 1
}
