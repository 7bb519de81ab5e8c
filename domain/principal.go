package domain

import "strings"

// Principal is the textual identity issued by the identity provider, e.g.
// "rrkah-fqaaa-aaaaa-aaaaq-cai"
type Principal string

// AnonymousPrincipal is what an unauthenticated caller is known as
const AnonymousPrincipal Principal = "2vxsx-fae"

func (p Principal) String() string {
	return string(p)
}

func (p Principal) IsAnonymous() bool {
	return p == "" || p == AnonymousPrincipal
}

func (p Principal) Equals(other Principal) bool {
	return strings.EqualFold(string(p), string(other))
}

// Short renders the first and last 8 characters, the way principals are
// shown next to bids
func (p Principal) Short() string {
	if len(p) <= 16 {
		return string(p)
	}
	return string(p[:8]) + "..." + string(p[len(p)-8:])
}
