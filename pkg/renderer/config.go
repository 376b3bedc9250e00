package renderer

// Config contains the rendering configuration. The numerical knobs are
// explicit values rather than compiled-in constants so tests can vary them.
type Config struct {
	MaxDepth          int     // Maximum recursion depth for trace
	Bias              float64 // Origin offset for shadow/reflection/refraction rays
	ShadowAttenuation float64 // Light contribution for occluded lights: 0 = hard shadows
	Workers           int     // Parallel row workers; <= 0 uses all CPUs
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:          5,
		Bias:              1e-3,
		ShadowAttenuation: 0.3,
		Workers:           0,
	}
}
