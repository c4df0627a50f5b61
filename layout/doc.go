// Package layout computes where and how large a slide is drawn.
//
// Compute is a pure function of a slide, the viewport size, a
// MetricsProvider and the presentation configuration. It holds no cache and
// must be called again whenever the viewport is resized or the current slide
// changes.
//
// Content is fitted into the usable space, which is the viewport scaled by
// the golden-ratio conjugate in both axes, and centred in the full viewport.
//
// Text is measured once at ReferenceScale and the measured block is scaled
// up linearly. Measuring at a small size keeps rounding error from
// compounding as the scale grows.
package layout
