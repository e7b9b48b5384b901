package ggview

import "slices"

const (
	// DefaultRenderDepth is the render depth of links created without an
	// explicit depth on a figure without WithDefaultRenderDepth.
	DefaultRenderDepth = 5

	// RenderDepthUnlimited removes the depth bound. Recursion then stops
	// at the first cycle, so a view is never drawn inside itself.
	RenderDepthUnlimited = -1
)

// Guard bounds recursive redirection. It tracks the chain of views whose
// redirected content is being drawn; the depth is the chain length.
//
// One Guard belongs to each Figure and is reset at the start of every
// top-level render. The zero value is ready to use.
type Guard struct {
	chain []*Surface

	cycles    int
	truncated int
	maxDepth  int
}

// Enter asks for admission to draw redirected content on behalf of view,
// with bound as the view's render depth. If admitted, the view is pushed
// on the chain and release pops it; callers defer release.
//
// A view already on the chain is a cycle. Cycles are counted but only
// deny admission when bound is RenderDepthUnlimited. With a finite bound,
// admission is denied once the chain would grow past it. Denial is the
// normal end of recursion, not an error.
func (g *Guard) Enter(view *Surface, bound int) (release func(), ok bool) {
	if g.Active(view) {
		g.cycles++
		if bound == RenderDepthUnlimited {
			return nil, false
		}
	}
	next := len(g.chain) + 1
	if bound != RenderDepthUnlimited && next > bound {
		g.truncated++
		return nil, false
	}

	g.chain = append(g.chain, view)
	g.maxDepth = max(g.maxDepth, next)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		g.chain = g.chain[:len(g.chain)-1]
	}, true
}

// Active reports whether view is on the chain.
func (g *Guard) Active(view *Surface) bool {
	return slices.Contains(g.chain, view)
}

// Depth returns the current chain length.
func (g *Guard) Depth() int { return len(g.chain) }

// Chain returns a copy of the active chain, outermost view first.
func (g *Guard) Chain() []*Surface { return slices.Clone(g.chain) }

// Reset clears the chain and counters.
func (g *Guard) Reset() {
	clear(g.chain)
	g.chain = g.chain[:0]
	g.cycles, g.truncated, g.maxDepth = 0, 0, 0
}
