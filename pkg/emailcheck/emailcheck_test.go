package emailcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCorporate(t *testing.T) {
	v := NewVerifier(nil)

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"free provider", "a@gmail.com", false},
		{"free provider uppercase domain", "a@GMAIL.COM", false},
		{"corporate domain", "a@acme-corp.com", true},
		{"corporate subdomain", "a@mail.acme-corp.com", true},
		{"no dot in domain", "a@localhost", false},
		{"missing at sign", "not-an-email", false},
		{"empty string", "", false},
		{"trailing at sign", "a@", false},
		{"empty label", "a@acme.", false},
		{"yahoo", "someone@yahoo.com", false},
		{"proton", "someone@proton.me", false},
		{"plus addressing at corporate domain", "a+hr@acme-corp.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsCorporate(tt.email))
		})
	}
}

func TestIsCorporate_CustomDenylist(t *testing.T) {
	v := NewVerifier([]string{"example.com"})

	// Custom denylist replaces the default one entirely.
	assert.False(t, v.IsCorporate("a@example.com"))
	assert.True(t, v.IsCorporate("a@gmail.com"))
}

func TestIsCorporate_LastAtSignWins(t *testing.T) {
	v := NewVerifier(nil)

	// Domain is everything after the last '@'.
	assert.True(t, v.IsCorporate(`"weird@local"@acme-corp.com`))
}
