package ggview_test

import (
	"testing"

	"github.com/gogpu/ggview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseChangeSchedulesRepaint(t *testing.T) {
	repaints := 0
	fig := ggview.NewFigure(400, 200, ggview.WithRepaintHandler(func() { repaints++ }))
	base := fig.AddSurface(ggview.R(0, 0, 200, 200))
	view := fig.AddSurface(ggview.R(200, 0, 400, 200))
	other := fig.AddSurface(ggview.R(0, 0, 10, 10))
	_, err := ggview.View(view, base)
	require.NoError(t, err)

	other.SetXLim(0, 2)
	assert.Equal(t, 0, repaints, "surfaces without views do not schedule")

	base.SetXLim(0, 2)
	assert.Equal(t, 1, repaints)
	assert.True(t, fig.NeedsRepaint())
	assert.True(t, fig.Dirty(view))
	assert.False(t, fig.Dirty(other))

	base.Add(ggview.NewRectangle(red, 0, 0, 1, 1))
	assert.Equal(t, 1, repaints, "coalesced until the next render")

	render(fig)
	assert.False(t, fig.NeedsRepaint())
	assert.False(t, fig.Dirty(view))

	base.Invalidate()
	assert.Equal(t, 2, repaints)
}

func TestRepaintEventKinds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(base *ggview.Surface)
	}{
		{"xlim", func(s *ggview.Surface) { s.SetXLim(1, 2) }},
		{"ylim", func(s *ggview.Surface) { s.SetYLim(1, 2) }},
		{"limits", func(s *ggview.Surface) { s.SetLimits(ggview.Range{Max: 2}, ggview.Range{Max: 2}) }},
		{"add", func(s *ggview.Surface) { s.Add(ggview.NewRectangle(red, 0, 0, 1, 1)) }},
		{"rect", func(s *ggview.Surface) { s.SetRect(ggview.R(0, 0, 50, 50)) }},
		{"aspect", func(s *ggview.Surface) { s.SetAspect(ggview.AspectEqual, ggview.AdjustBox) }},
		{"child", func(s *ggview.Surface) { _, _ = s.AddSurface(ggview.R(0, 0, 5, 5)) }},
		{"background", func(s *ggview.Surface) { s.SetBackground(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repaints := 0
			fig := ggview.NewFigure(400, 200, ggview.WithRepaintHandler(func() { repaints++ }))
			base := fig.AddSurface(ggview.R(0, 0, 200, 200))
			view := fig.AddSurface(ggview.R(200, 0, 400, 200))
			_, err := ggview.View(view, base)
			require.NoError(t, err)

			tt.mutate(base)
			assert.Equal(t, 1, repaints)
			assert.True(t, fig.Dirty(view))
		})
	}
}

func TestRepaintIsTransitive(t *testing.T) {
	fig := ggview.NewFigure(600, 200)
	a := fig.AddSurface(ggview.R(0, 0, 200, 200))
	b := fig.AddSurface(ggview.R(200, 0, 400, 200))
	c := fig.AddSurface(ggview.R(400, 0, 600, 200))
	_, err := ggview.View(b, a)
	require.NoError(t, err)
	_, err = ggview.View(c, b)
	require.NoError(t, err)

	a.SetYLim(0, 3)
	assert.True(t, fig.Dirty(b))
	assert.True(t, fig.Dirty(c))
}

func TestChildChangeReachesViewsOfParent(t *testing.T) {
	fig := ggview.NewFigure(400, 200)
	parent := fig.AddSurface(ggview.R(0, 0, 200, 200))
	child, err := parent.AddSurface(ggview.R(10, 10, 50, 50))
	require.NoError(t, err)
	view := fig.AddSurface(ggview.R(200, 0, 400, 200))
	_, err = ggview.View(view, parent)
	require.NoError(t, err)

	child.Add(ggview.NewRectangle(red, 0, 0, 1, 1))
	assert.True(t, fig.Dirty(view))
}

func TestInsetLimitChangeRepaintsInset(t *testing.T) {
	repaints := 0
	fig := ggview.NewFigure(200, 200, ggview.WithRepaintHandler(func() { repaints++ }))
	parent := fig.AddSurface(ggview.R(0, 0, 200, 200))
	inset, err := ggview.InsetZoom(parent, ggview.Bounds{X: 0.5, Y: 0.5, W: 0.4, H: 0.4})
	require.NoError(t, err)

	inset.SetXLim(0.2, 0.4)
	assert.Equal(t, 1, repaints)
	assert.True(t, fig.Dirty(inset))
}

func TestUnlinkCancelsSubscription(t *testing.T) {
	repaints := 0
	fig := ggview.NewFigure(400, 200, ggview.WithRepaintHandler(func() { repaints++ }))
	base := fig.AddSurface(ggview.R(0, 0, 200, 200))
	view := fig.AddSurface(ggview.R(200, 0, 400, 200))
	_, err := ggview.View(view, base)
	require.NoError(t, err)

	view.Unlink()
	base.SetXLim(0, 5)
	assert.Equal(t, 0, repaints)
	assert.False(t, fig.Dirty(view))
}

func TestContinuousRepaintSkipsScheduling(t *testing.T) {
	repaints := 0
	fig := ggview.NewFigure(400, 200,
		ggview.WithContinuousRepaint(),
		ggview.WithRepaintHandler(func() { repaints++ }))
	base := fig.AddSurface(ggview.R(0, 0, 200, 200))
	view := fig.AddSurface(ggview.R(200, 0, 400, 200))
	_, err := ggview.View(view, base)
	require.NoError(t, err)

	base.SetXLim(0, 5)
	assert.Equal(t, 0, repaints)
	assert.False(t, fig.NeedsRepaint())

	base.Destroy()
	assert.Nil(t, view.Link(), "destroy still unlinks")
}

func TestSubscribeCancel(t *testing.T) {
	fig := ggview.NewFigure(100, 100)
	s := fig.AddSurface(ggview.R(0, 0, 100, 100))

	var kinds []ggview.EventKind
	cancel := s.Subscribe(func(e ggview.Event) {
		assert.Same(t, s, e.Surface)
		kinds = append(kinds, e.Kind)
	})
	s.SetXLim(0, 2)
	s.Add(ggview.NewRectangle(red, 0, 0, 1, 1))
	cancel()
	cancel()
	s.SetYLim(0, 2)

	assert.Equal(t, []ggview.EventKind{ggview.EventLimitsChanged, ggview.EventArtistAdded}, kinds)
	assert.Equal(t, "LimitsChanged", ggview.EventLimitsChanged.String())
	assert.Equal(t, "EventKind(200)", ggview.EventKind(200).String())
}
