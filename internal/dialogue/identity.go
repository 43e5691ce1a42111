package dialogue

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/foodchat/internal/common"
)

// ValidIdentity reports whether identity is acceptable for login: non-empty
// after trimming and containing "@".
func ValidIdentity(identity string) bool {
	identity = strings.TrimSpace(identity)
	return identity != "" && strings.Contains(identity, common.IdentityMarker)
}

// DisplayName derives the name used in greetings: the part of identity
// before the first "@", with the first letter upper-cased and the rest
// lower-cased ("ravi.k@example.com" → "Ravi.k"). Without "@", or when
// nothing precedes it, the whole identity is used.
func DisplayName(identity string) string {
	identity = strings.TrimSpace(identity)

	name := identity
	if local, _, found := strings.Cut(identity, common.IdentityMarker); found && local != "" {
		name = local
	}

	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(name[size:])
}
