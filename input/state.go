package input

import "strings"

// KeySet tracks currently held keys by lowercase name
// Owned by the host loop goroutine, not safe for concurrent use
type KeySet struct {
	held map[string]struct{}
}

// NewKeySet creates an empty key set
func NewKeySet() *KeySet {
	return &KeySet{held: make(map[string]struct{})}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Press marks a key as held
func (k *KeySet) Press(name string) {
	if n := normalize(name); n != "" {
		k.held[n] = struct{}{}
	}
}

// Release marks a key as no longer held
func (k *KeySet) Release(name string) {
	delete(k.held, normalize(name))
}

// Held reports whether a key is currently down
func (k *KeySet) Held(name string) bool {
	_, ok := k.held[normalize(name)]
	return ok
}

// Clear releases every key
func (k *KeySet) Clear() {
	clear(k.held)
}

// Len returns the number of held keys
func (k *KeySet) Len() int {
	return len(k.held)
}
