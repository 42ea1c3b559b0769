// Package user names the person running jot, for export metadata.
package user

import (
	"os"
	"os/user"
	"strings"
)

// Unknown is returned when no name can be found
const Unknown = "unknown"

// lookup is swapped in tests
var lookup = user.Current

// DisplayName returns the account's full name, falling back to the login
// name, then $USER, then Unknown. Only the first line of the GECOS full
// name is used.
func DisplayName() string {
	if u, err := lookup(); err == nil {
		if name := firstField(u.Name); name != "" {
			return name
		}
		if u.Username != "" {
			return u.Username
		}
	}
	if name := strings.TrimSpace(os.Getenv("USER")); name != "" {
		return name
	}
	return Unknown
}

// firstField trims the comma separated extras some systems append to the
// full name
func firstField(gecos string) string {
	name, _, _ := strings.Cut(gecos, ",")
	return strings.TrimSpace(name)
}
