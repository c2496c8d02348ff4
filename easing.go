package tempo

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// Easing remaps linear progress in [0, 1] to eased progress. Elastic and back
// curves may leave [0, 1]; the Manager never clamps the result.
type Easing func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// InQuad accelerates from zero velocity.
func InQuad(t float64) float64 { return t * t }

// OutQuad decelerates to zero velocity.
func OutQuad(t float64) float64 { return t * (2 - t) }

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// FromGween adapts a gween/ease curve to the normalized Easing contract by
// evaluating it with begin 0, change 1 and duration 1.
//
// gween computes in float32, so results carry float32 precision:
// FromGween(ease.Linear)(0.2) is 0.20000000298..., not 0.2. Some gween curves
// also miss the endpoints slightly (ease.InExpo returns 0.999 at t=1).
// The Manager always passes exactly 1 to OnUpdate at the end, whatever the
// easing.
func FromGween(fn ease.TweenFunc) Easing {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var easings = map[string]Easing{
	"linear":      Linear,
	"in-quad":     InQuad,
	"out-quad":    OutQuad,
	"in-out-quad": InOutQuad,

	"in-cubic":       FromGween(ease.InCubic),
	"out-cubic":      FromGween(ease.OutCubic),
	"in-out-cubic":   FromGween(ease.InOutCubic),
	"in-sine":        FromGween(ease.InSine),
	"out-sine":       FromGween(ease.OutSine),
	"in-out-sine":    FromGween(ease.InOutSine),
	"in-expo":        FromGween(ease.InExpo),
	"out-expo":       FromGween(ease.OutExpo),
	"in-out-expo":    FromGween(ease.InOutExpo),
	"in-back":        FromGween(ease.InBack),
	"out-back":       FromGween(ease.OutBack),
	"in-out-back":    FromGween(ease.InOutBack),
	"in-elastic":     FromGween(ease.InElastic),
	"out-elastic":    FromGween(ease.OutElastic),
	"in-out-elastic": FromGween(ease.InOutElastic),
	"in-bounce":      FromGween(ease.InBounce),
	"out-bounce":     FromGween(ease.OutBounce),
	"in-out-bounce":  FromGween(ease.InOutBounce),
}

// EasingByName looks up a curve by its kebab-case name ("linear",
// "out-cubic", "in-out-sine", ...). Names are case-insensitive.
func EasingByName(name string) (Easing, bool) {
	fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// EasingNames returns the catalog names in no particular order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	return names
}
