// Package sent parses presentations written in the plain-text format of the
// suckless sent tool.
//
// # Overview
//
// A presentation is a text file in which every paragraph (a run of lines
// separated by blank lines) becomes one slide:
//
//	#.font:Inter
//	#.fg:#eeeeee
//	#.bg:#222222
//
//	sent
//
//	why?
//	• PDFs are horrible
//	• too many distractions
//
//	@nyan.png
//
//	\@this line is text, not an image
//
//	\
//
// # Syntax
//
//   - Lines starting with '#' are comments.
//   - Lines starting with "#." are directives: font (repeatable fallback
//     chain), fg, bg (hex colours), cursor and invert.
//   - A paragraph whose first line starts with '@' shows the named image.
//   - A paragraph made of a single '\' is an empty slide.
//   - A leading '\' escapes any line, which is then taken literally.
//
// # Quick Start
//
//	p, diags := sent.Parse(string(data))
//	for _, d := range diags {
//	    log.Println(d)
//	}
//	for i := range p.Len() {
//	    switch s := p.Slide(i).(type) {
//	    case sent.TextSlide:
//	        fmt.Println(s.Lines)
//	    case sent.ImageSlide:
//	        fmt.Println("image", s.Path)
//	    case sent.EmptySlide:
//	    }
//	}
//
// # Architecture
//
// The module is organized into:
//   - sent: tokenizer, directive resolver, parser, colours, diagnostics
//   - layout: scale, centring and sampling decisions for a slide and viewport
//   - nav: navigation cursor and input bindings
//   - text: font chain resolution and glyph measurement
//   - metrics: a layout.MetricsProvider backed by text and image decoders
//   - load: reading presentation files from disk
//   - render: a headless reference renderer
//
// Parsing and layout are synchronous pure functions; there is no shared
// state beyond the navigation cursor owned by the host event loop.
package sent
