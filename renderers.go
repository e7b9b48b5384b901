package ggview

import (
	"fmt"
	"sort"
	"sync"
)

// RendererFactory creates a renderer for a width x height figure.
type RendererFactory func(width, height int) Renderer

var (
	renderersMu sync.RWMutex
	renderers   = make(map[string]RendererFactory)
)

func init() {
	RegisterRenderer("raster", func(width, height int) Renderer {
		return NewCanvasRenderer(width, height)
	})
}

// RegisterRenderer makes a renderer available by name. It is typically
// called from init() in the package providing the renderer:
//
//	func init() {
//	    ggview.RegisterRenderer("recording", func(w, h int) ggview.Renderer {
//	        return NewRecorder(w, h)
//	    })
//	}
//
// RegisterRenderer panics if factory is nil or name is already taken.
func RegisterRenderer(name string, factory RendererFactory) {
	renderersMu.Lock()
	defer renderersMu.Unlock()

	if factory == nil {
		panic("ggview: RegisterRenderer factory is nil")
	}
	if _, dup := renderers[name]; dup {
		panic("ggview: RegisterRenderer called twice for " + name)
	}
	renderers[name] = factory
}

// NewRenderer creates a renderer by name.
func NewRenderer(name string, width, height int) (Renderer, error) {
	renderersMu.RLock()
	factory, ok := renderers[name]
	renderersMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownRenderer, name)
	}
	return factory(width, height), nil
}

// Renderers returns the sorted names of the registered renderers.
func Renderers() []string {
	renderersMu.RLock()
	defer renderersMu.RUnlock()

	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
