package wrap

import "math"

// defaultMaxIterations is the effectively-unbounded cap used when the caller
// never calls WithMaxIterations.
const defaultMaxIterations = math.MaxInt32

// Config bundles every field spec §4.8 and §6 enumerate: the two scale
// parameters, the active traversability policy, the modified-alpha-
// traversability flag (DESIGN.md Open Question), the iteration cap, export
// cadence, output location, and visual style tag.
type Config struct {
	Alpha  float64
	Offset float64

	Policy                      Policy
	ModifiedAlphaTraversability bool

	MaxIterations     int
	IntermediateSteps int
	ExportStepLimit   int
	OutputDirectory   string
	OutputUseSubdir   bool
	Style             string

	InputFile string
	Logger    Logger
}

// Option configures a Config, mirroring dijkstra.Option /
// builder.BuilderOption: a function applied in sequence over the defaults.
type Option func(*Config)

// DefaultConfig returns a Config with alpha, offset set and every other
// field at its documented default: no policy (must be set with WithPolicy),
// MaxIterations effectively unbounded, no intermediate exports, style
// "default", and a stderr Logger.
func DefaultConfig(alpha, offset float64) Config {
	return Config{
		Alpha:             alpha,
		Offset:            offset,
		MaxIterations:     defaultMaxIterations,
		IntermediateSteps: 0,
		ExportStepLimit:   0,
		Style:             "default",
		Logger:            defaultLogger(),
	}
}

// WithPolicy selects the active traversability policy. Required: NewCarver
// returns ErrUnknownPolicy if no policy is set.
func WithPolicy(p Policy) Option {
	return func(c *Config) { c.Policy = p }
}

// WithModifiedAlphaTraversability selects the Open Question branch of
// MinimalDelaunayBallRadius's default case (see DESIGN.md). Default false
// reproduces the unmodified upstream path.
func WithModifiedAlphaTraversability(enabled bool) Option {
	return func(c *Config) { c.ModifiedAlphaTraversability = enabled }
}

// WithMaxIterations caps the main loop. Must be positive.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(ErrInvalidMaxIterations.Error())
	}
	return func(c *Config) { c.MaxIterations = n }
}

// WithIntermediateSteps records the intermediate-snapshot interval n in
// Config.IntermediateSteps. Carver does not read this field and takes no
// snapshot callback; no intermediate snapshots are produced during Run.
func WithIntermediateSteps(n int) Option {
	return func(c *Config) { c.IntermediateSteps = n }
}

// WithExportStepLimit records the intermediate-export iteration limit n in
// Config.ExportStepLimit. Like IntermediateSteps, Carver does not read it.
func WithExportStepLimit(n int) Option {
	return func(c *Config) { c.ExportStepLimit = n }
}

// WithOutputDirectory sets the directory the caller writes snapshots and
// statistics into. Carver itself never touches the filesystem.
func WithOutputDirectory(dir string, useSubdir bool) Option {
	return func(c *Config) {
		c.OutputDirectory = dir
		c.OutputUseSubdir = useSubdir
	}
}

// WithStyle sets the visualization preset tag ("default", "clean",
// "outside_filled"); export.Style interprets it.
func WithStyle(style string) Option {
	return func(c *Config) { c.Style = style }
}

// WithInputFile records the source file name for statistics reporting only.
func WithInputFile(path string) Option {
	return func(c *Config) { c.InputFile = path }
}

// WithLogger overrides the default stderr logger.
func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// validate checks the invariants NewCarver depends on.
func (c *Config) validate() error {
	if c.Alpha <= 0 {
		return ErrInvalidAlpha
	}
	if c.Offset <= 0 {
		return ErrInvalidOffset
	}
	if c.Policy == nil {
		return ErrUnknownPolicy
	}
	return nil
}
