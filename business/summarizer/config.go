package summarizer

// Config tunes the LexRank summarizer. Start from DefaultConfig and override.
type Config struct {
	// number of units kept in the summary
	TopK int

	// edges need a cosine strictly greater than this
	Threshold float64

	// only the first MaxUnits inputs are considered
	MaxUnits int

	Separator string

	Damping       float64
	MaxIterations int
	Tolerance     float64
}

const (
	defaultTopK          = 3
	defaultThreshold     = 0.1
	defaultMaxUnits      = 50
	defaultSeparator     = ","
	defaultDamping       = 0.85
	defaultMaxIterations = 100
	defaultTolerance     = 1e-6
)

func DefaultConfig() Config {
	return Config{
		TopK:      defaultTopK,
		Threshold: defaultThreshold,
		MaxUnits:  defaultMaxUnits,
		Separator: defaultSeparator,

		Damping:       defaultDamping,
		MaxIterations: defaultMaxIterations,
		Tolerance:     defaultTolerance,
	}
}

// sanitize replaces out-of-range settings with defaults. Threshold and
// Separator are taken as given.
func (c Config) sanitize() Config {
	if c.TopK <= 0 {
		c.TopK = defaultTopK
	}
	if c.MaxUnits <= 0 {
		c.MaxUnits = defaultMaxUnits
	}
	if c.Damping <= 0 || c.Damping >= 1 {
		c.Damping = defaultDamping
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = defaultMaxIterations
	}
	if c.Tolerance <= 0 {
		c.Tolerance = defaultTolerance
	}
	return c
}
