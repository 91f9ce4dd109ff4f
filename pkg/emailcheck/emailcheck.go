package emailcheck

import "strings"

// DefaultFreeDomains lists common consumer mail providers rejected by the
// corporate check. Operators can extend the list through configuration
// without a code change.
var DefaultFreeDomains = []string{
	"gmail.com",
	"yahoo.com",
	"hotmail.com",
	"outlook.com",
	"icloud.com",
	"proton.me",
	"protonmail.com",
}

// Verifier classifies reviewer emails as plausibly corporate. This is a
// heuristic gate, not a proof of identity: no MX or DNS lookup is performed,
// and callers must not treat a positive result as verified employment.
type Verifier struct {
	freeDomains map[string]bool
}

// NewVerifier creates a verifier with the given denylist of free-mail
// domains. An empty list falls back to DefaultFreeDomains.
func NewVerifier(freeDomains []string) *Verifier {
	if len(freeDomains) == 0 {
		freeDomains = DefaultFreeDomains
	}

	denied := make(map[string]bool, len(freeDomains))
	for _, d := range freeDomains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			denied[d] = true
		}
	}

	return &Verifier{freeDomains: denied}
}

// IsCorporate reports whether the email's domain looks like a corporate one:
// not on the free-mail denylist and made of at least two dot-separated labels.
// Malformed input (no '@', empty domain) degrades to false, never an error.
func (v *Verifier) IsCorporate(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(email[at+1:])
	if v.freeDomains[domain] {
		return false
	}

	if !strings.Contains(domain, ".") {
		return false
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" {
			return false
		}
	}

	return true
}
