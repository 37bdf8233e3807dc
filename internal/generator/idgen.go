package generator

import "fmt"

// idGen issues monotonically increasing zero-padded identities for one
// entity type, e.g. ITEM_000001. Not safe for concurrent use; each
// Generator owns its own counters.
type idGen struct {
	prefix string
	width  int
	next   int
}

func newIDGen(prefix string, width int) *idGen {
	return &idGen{prefix: prefix, width: width, next: 1}
}

// Next returns the next identity in sequence.
func (g *idGen) Next() string {
	id := fmt.Sprintf("%s_%0*d", g.prefix, g.width, g.next)
	g.next++

	return id
}

// Issued reports how many identities have been handed out.
func (g *idGen) Issued() int {
	return g.next - 1
}
