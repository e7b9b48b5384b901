// Package scenefile describes ggview figures in YAML or TOML.
//
// A scene lists surfaces with their data limits and artists, the views
// linking them and the zoom insets placed on them:
//
//	width: 800
//	height: 400
//	surfaces:
//	  - name: overview
//	    rect: [0, 0, 400, 400]
//	    xlim: [0, 10]
//	    ylim: [0, 10]
//	    artists:
//	      - {type: circle, xy: [5, 5], radius: 2, fill: "#1f77b4"}
//	  - name: zoom
//	    rect: [400, 0, 400, 400]
//	    xlim: [4, 6]
//	    ylim: [4, 6]
//	views:
//	  - {view: zoom, base: overview, depth: 2}
//
// Load decodes and validates a file, and Scene.Build turns it into a
// figure. Relative font and image paths are resolved against the scene's
// directory.
package scenefile
