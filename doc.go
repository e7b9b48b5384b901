// Package ggview adds live views and inset zooms to gg drawings.
//
// # Overview
//
// A Figure holds rectangular Surfaces, each with its own data limits and a
// list of Artists (paths, images, text) drawn through gg. Any surface can
// be made a view of another surface of the same figure. A view holds no
// copy of the base's content: every time it is drawn, the base's artists
// are drawn again, remapped from the base's frame into the view's frame.
// Changing the base (limits, artists) changes all its views on the next
// repaint.
//
// # Quick Start
//
//	fig := ggview.NewFigure(800, 400)
//	ax := fig.AddSurface(ggview.RectXYWH(20, 20, 360, 360),
//	    ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
//	ax.Add(ggview.NewLine(color.Black, 2, gg.Pt(0, 0), gg.Pt(10, 10)))
//
//	zoom := fig.AddSurface(ggview.RectXYWH(420, 20, 360, 360),
//	    ggview.WithXLim(4, 6), ggview.WithYLim(4, 6))
//	ggview.View(zoom, ax)
//
//	fig.SavePNG("out.png")
//
// # Coordinate System
//
// Display coordinates are figure pixels with the origin at the top-left
// and y increasing downwards, as in gg. Data coordinates have y increasing
// upwards. A surface maps its data limits onto its display rectangle,
// optionally preserving an aspect ratio (see Aspect).
//
// # Recursion
//
// A view may be part of the content it shows, for example an inset zoom
// that views its own parent. Such configurations are drawn recursively up
// to the link's render depth and then stop. A depth of 0 shows nothing,
// RenderDepthUnlimited stops at the first cycle. The recursion state lives
// in the figure's Guard and is reset on every Render.
//
// # Renderers
//
// Figure.Render draws into any Renderer. CanvasRenderer rasterizes into a
// gg.Context; the recording sub-package captures draw calls for
// inspection. Renderers are also available by name through NewRenderer.
//
// # Logging
//
// ggview is silent by default. Call SetLogger to receive debug records
// about redirection decisions and warnings about artists that failed to
// draw.
package ggview
