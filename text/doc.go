// Package text resolves font fallback chains and measures text.
//
// The measurement pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF/TTC files)
//   - Face: lightweight font instance at a specific size
//   - MultiFace: first-found-wins fallback across several faces
//   - Chain: the fonts named by a presentation, resolved on the host
//
// Measurements are unhinted and computed in font units before being scaled
// to the face size, so they stay linear in the size. This lets layout
// measure at a tiny reference size and scale up without accumulating
// rounding error.
//
// # Example usage
//
//	chain, err := text.NewChain([]string{"Inter", "Noto Sans"}, text.NewSystemLocator(""))
//	if err != nil {
//	    log.Fatal(err) // *sent.FontNotFoundError
//	}
//	w, h := text.Measure("Hello", chain.Face(24))
package text
