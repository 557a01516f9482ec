package domain

import (
	"strconv"
	"sync"
	"time"
)

// IDGen hands out "<type>:<unix-millis>" ids. Millis never repeat within a
// process so tight loops (imports, seeding) do not overwrite each other.
type IDGen struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDGen(now func() time.Time) *IDGen {
	if now == nil {
		now = time.Now
	}
	return &IDGen{now: now}
}

func (g *IDGen) Now() time.Time { return g.now() }

func (g *IDGen) Next(prefix string) string {
	return prefix + ":" + strconv.FormatInt(g.nextMillis(), 10)
}

func (g *IDGen) nextMillis() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return ms
}
