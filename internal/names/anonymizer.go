package names

import (
	"fmt"
	"strings"
	"sync"
)

var userLetters = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// Pseudonymizer assigns stable "User A", "User B", ... labels to usernames.
// Names containing one of the keep-list fragments pass through unchanged.
// It is created once at startup and injected wherever display names are
// produced, so the mapping is shared by every request.
type Pseudonymizer struct {
	mu       sync.Mutex
	keep     []string
	assigned map[string]string
}

// NewPseudonymizer creates a Pseudonymizer with the given keep-list.
func NewPseudonymizer(keep ...string) *Pseudonymizer {
	return &Pseudonymizer{
		keep:     keep,
		assigned: make(map[string]string),
	}
}

func (p *Pseudonymizer) Anonymize(username string) string {
	if username == "" {
		return username
	}
	for _, fragment := range p.keep {
		if fragment != "" && strings.Contains(username, fragment) {
			return username
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if label, ok := p.assigned[username]; ok {
		return label
	}
	label := fmt.Sprintf("User %s", userLetters[len(p.assigned)%len(userLetters)])
	p.assigned[username] = label
	return label
}

// Passthrough returns usernames unchanged. It is the Anonymizer used when
// anonymization is disabled.
type Passthrough struct{}

func (Passthrough) Anonymize(username string) string {
	return username
}
