package affordance

import "sync"

// LoadingTracker reference-counts in-flight work per scope. A scope is
// busy while at least one token holds it; releasing a token twice is
// harmless. Overlapping operations on the same scope therefore keep the
// indicator up until the last one finishes.
type LoadingTracker struct {
	mu        sync.Mutex
	nextToken int
	tokens    map[int]string // token -> scope
	counts    map[string]int
}

// NewLoadingTracker creates an idle tracker.
func NewLoadingTracker() *LoadingTracker {
	return &LoadingTracker{
		nextToken: 1,
		tokens:    make(map[int]string),
		counts:    make(map[string]int),
	}
}

// Acquire marks scope busy and returns the token that must be released
// when the work finishes.
func (t *LoadingTracker) Acquire(scope string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	token := t.nextToken
	t.nextToken++
	t.tokens[token] = scope
	t.counts[scope]++
	return token
}

// Release returns a token. Unknown and already-released tokens are
// ignored.
func (t *LoadingTracker) Release(token int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	scope, ok := t.tokens[token]
	if !ok {
		return
	}
	delete(t.tokens, token)
	t.counts[scope]--
	if t.counts[scope] <= 0 {
		delete(t.counts, scope)
	}
}

// ReleaseAll drops every outstanding token, forcing the tracker idle.
func (t *LoadingTracker) ReleaseAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tokens = make(map[int]string)
	t.counts = make(map[string]int)
}

// IsLoading reports whether scope has in-flight work.
func (t *LoadingTracker) IsLoading(scope string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[scope] > 0
}

// Any reports whether any scope has in-flight work.
func (t *LoadingTracker) Any() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.counts) > 0
}
