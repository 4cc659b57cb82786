package fixture

import (
	"math/rand"
	"sync"
	"time"

	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/model"
)

// Page views are fabricated in [100, 2100). Display filler only.
const (
	pageViewsMin  = 100
	pageViewsSpan = 2000
)

// Generator fabricates display-only data: placeholder owner names cycled
// from a fixed pool and mock page-view counts. Seed it in tests for
// deterministic output.
type Generator struct {
	mu   sync.Mutex
	pool []string
	rand *rand.Rand
}

// Option configures a Generator
type Option func(*Generator)

// WithSeed makes page-view generation deterministic
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rand = rand.New(rand.NewSource(seed))
	}
}

// New creates a Generator backed by the given owner pool. A nil pool
// falls back to the built-in default.
func New(pool *model.OwnerPoolConfig, opts ...Option) *Generator {
	if pool == nil {
		pool = model.DefaultOwnerPoolConfig()
	}

	g := &Generator{
		pool: append([]string{}, pool.Names...),
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PlaceholderOwners synthesizes count owner names, cycling through the
// pool by index. The result is fabricated attribution, never real data.
func (g *Generator) PlaceholderOwners(count int) []string {
	if count <= 0 {
		return []string{}
	}

	names := make([]string, count)
	for i := range names {
		names[i] = g.pool[i%len(g.pool)]
	}
	return names
}

// PageViews returns a mock page-view count with no backing metric
func (g *Generator) PageViews() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rand.Intn(pageViewsSpan) + pageViewsMin
}
