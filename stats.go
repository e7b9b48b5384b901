package ggview

import "fmt"

// RenderStats summarizes one Figure.Render call. Render never fails; the
// conditions it recovers from are counted here and logged.
type RenderStats struct {
	// Surfaces is the number of surface draws, redirected ones included.
	Surfaces int

	// Redirects counts admitted redirected draws.
	Redirects int

	// Truncated counts redirections denied by a depth bound.
	Truncated int

	// Cycles counts views met again while already being drawn.
	Cycles int

	// Degenerate counts redirections skipped because no transform
	// between base and view existed.
	Degenerate int

	// Failures counts artists whose Draw returned an error.
	Failures int

	// MaxDepth is the deepest redirection level reached.
	MaxDepth int

	// Primitives counts draw calls that reached the renderer through at
	// least one redirection.
	Primitives int

	// Culled counts redirected primitives dropped because they fell
	// outside the view.
	Culled int
}

func (s RenderStats) String() string {
	return fmt.Sprintf("surfaces=%d redirects=%d depth=%d primitives=%d culled=%d truncated=%d cycles=%d degenerate=%d failures=%d",
		s.Surfaces, s.Redirects, s.MaxDepth, s.Primitives, s.Culled, s.Truncated, s.Cycles, s.Degenerate, s.Failures)
}
