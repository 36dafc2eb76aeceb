// Package svgraster parses a small, practical subset of SVG into a flat
// collection of cubic-Bézier paths and rasterizes them into an RGBA
// pixel buffer with analytic, sub-scanline anti-aliasing.
//
// # Overview
//
// svgraster is a Pure Go, dependency-light library for embedded and
// standalone use where no general 2D graphics stack is available. It
// parses an SVG document (from a byte buffer or a file path) into an
// [Image] of [Shape] values, each holding one or more flattened
// poly-Bézier [Path] contours in absolute user-space coordinates, and
// rasterizes that image into a caller-owned RGBA-8888 buffer.
//
// # Quick Start
//
//	img := svgraster.Parse(data)
//	if img == nil {
//	    // empty input; nothing was parsed
//	}
//
//	w, h := int(img.Width), int(img.Height)
//	r := svgraster.NewRasterizer()
//	buf := make([]byte, w*h*4)
//	r.Rasterize(img, 0, 0, 1.0, buf, w, h, w*4)
//
// # Scope
//
// Only fills are rasterized — no gradients, patterns, clipping,
// masking, text, images, stroking, dashing, filters, or animation.
// Color keywords resolve against the 10 core SVG names by default;
// [WithExtendedColorNames] opts into the full SVG 1.1 name table.
//
// # Coordinate system
//
// Origin at top-left, X increases right, Y increases down, matching
// SVG's own user-space convention. Transforms compose as SVG specifies:
// a child's own transform attribute applies in the child's local space
// before any inherited ancestor transform.
//
// # Concurrency
//
// Parsing is synchronous and keeps no shared state; it does overwrite
// bytes of the input slice it is given (see [Parse]). A [Rasterizer] owns growable scratch buffers and must not be shared
// across goroutines without external synchronization; independent
// rasterizers on independent images may run concurrently.
package svgraster
