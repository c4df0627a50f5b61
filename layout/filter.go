package layout

import "github.com/gogpu/gputypes"

// FilterMode selects how image texels are sampled when scaled.
type FilterMode int

const (
	// FilterAnisotropic is high-quality smoothing, used up to NearestThreshold.
	FilterAnisotropic FilterMode = iota

	// FilterNearest is nearest-neighbour sampling, used for large
	// magnification where smoothing would only blur.
	FilterNearest
)

// maxAnisotropy is the anisotropy level requested for smooth sampling.
const maxAnisotropy = 16

// String returns the string representation of the filter mode.
func (m FilterMode) String() string {
	switch m {
	case FilterAnisotropic:
		return "anisotropic"
	case FilterNearest:
		return "nearest"
	default:
		return "unknown"
	}
}

// SamplerFilter returns the WebGPU min/mag filter for this mode.
func (m FilterMode) SamplerFilter() gputypes.FilterMode {
	if m == FilterNearest {
		return gputypes.FilterModeNearest
	}
	return gputypes.FilterModeLinear
}

// MaxAnisotropy returns the sampler anisotropy clamp for this mode.
// WebGPU requires linear filtering for values above 1.
func (m FilterMode) MaxAnisotropy() uint16 {
	if m == FilterNearest {
		return 1
	}
	return maxAnisotropy
}

// filterForScale picks nearest-neighbour sampling only when the image is
// magnified by more than NearestThreshold.
func filterForScale(scale float64) FilterMode {
	if scale > NearestThreshold {
		return FilterNearest
	}
	return FilterAnisotropic
}
