// Package metrics is the default layout.MetricsProvider.
//
// Text is measured with a font fallback chain resolved on the host (see
// package text); image dimensions are read from file headers without
// decoding pixel data. PNG, JPEG, GIF, BMP, TIFF and WebP are recognised.
//
//	p := metrics.New(filepath.Dir(path))
//	placement, err := layout.Compute(slide, viewport, p, cfg)
package metrics
