package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/export"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/oracle"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/pointsfile"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/wrap"
)

// Default policy parameters for the two adaptive policies, not themselves
// exposed as CLI flags (spec §6 only names the policy kind).
const (
	defaultAlphaMaxFactor  = 0.25
	defaultDeviationFactor = 1.0
	defaultPointThreshold  = 4
	defaultToleranceFactor = 0.05
)

type cliOptions struct {
	input             string
	output            string
	outputUseSubdir   bool
	alpha             float64
	offset            float64
	traversability    string
	intermediateSteps int
	exportStepLimit   int
	maxIterations     int
	style             string
	configPath        string
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "alphawrap",
		Short: "Compute a 2D alpha-wrap surface from a point set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file seeding the options below")
	flags.StringVar(&opts.input, "input", "", "path to points file")
	flags.StringVar(&opts.output, "output", "", "path to results directory")
	flags.BoolVar(&opts.outputUseSubdir, "output_use_subdir", false, "append a unique suffix to the output directory")
	flags.Float64Var(&opts.alpha, "alpha", 0, "concavity scale, positive real")
	flags.Float64Var(&opts.offset, "offset", 0, "thickening radius, positive real")
	flags.StringVar(&opts.traversability, "traversability", "CONSTANT_ALPHA", "one of CONSTANT_ALPHA, DEVIATION_BASED, INTERSECTION_BASED")
	flags.IntVar(&opts.intermediateSteps, "intermediate_steps", 0, "intermediate snapshot interval, recorded in the run config (only the final snapshot is written)")
	flags.IntVar(&opts.exportStepLimit, "export_step_limit", 0, "intermediate export iteration limit, recorded in the run config (only the final snapshot is written)")
	flags.IntVar(&opts.maxIterations, "max_iterations", 0, "hard iteration cap (0 means unbounded)")
	flags.StringVar(&opts.style, "style", "default", "visualization preset: default, clean, outside_filled")

	return cmd
}

// applyFileConfig overlays a loaded YAML config under explicit flags: any
// field left at its zero value (for traversability and style: at its flag
// default) is filled from cfg.
func (o *cliOptions) applyFileConfig(cfg fileConfig) {
	if o.input == "" {
		o.input = cfg.Input
	}
	if o.output == "" {
		o.output = cfg.Output
	}
	if !o.outputUseSubdir {
		o.outputUseSubdir = cfg.OutputUseSubdir
	}
	if o.alpha == 0 {
		o.alpha = cfg.Alpha
	}
	if o.offset == 0 {
		o.offset = cfg.Offset
	}
	if cfg.Traversability != "" && o.traversability == "CONSTANT_ALPHA" {
		o.traversability = cfg.Traversability
	}
	if o.intermediateSteps == 0 {
		o.intermediateSteps = cfg.IntermediateSteps
	}
	if o.exportStepLimit == 0 {
		o.exportStepLimit = cfg.ExportStepLimit
	}
	if o.maxIterations == 0 {
		o.maxIterations = cfg.MaxIterations
	}
	if cfg.Style != "" && o.style == "default" {
		o.style = cfg.Style
	}
}

// policyFor builds the traversability policy named by tag, or ConfigError if
// unrecognized. Spec §7: "unknown policy or style" is a ConfigError reported
// before the core is ever entered.
func policyFor(tag string) (wrap.Policy, error) {
	switch tag {
	case "CONSTANT_ALPHA":
		return nil, nil // alpha is filled in by the caller once known
	case "DEVIATION_BASED":
		return wrap.DeviationBased(defaultAlphaMaxFactor, defaultDeviationFactor, defaultPointThreshold), nil
	case "INTERSECTION_BASED":
		return wrap.IntersectionBased(defaultToleranceFactor), nil
	default:
		return nil, fmt.Errorf("alphawrap: unknown traversability policy %q", tag)
	}
}

func run(opts *cliOptions) error {
	if opts.configPath != "" {
		cfg, err := loadFileConfig(opts.configPath)
		if err != nil {
			return err
		}
		opts.applyFileConfig(cfg)
	}

	if opts.input == "" {
		return fmt.Errorf("alphawrap: --input is required")
	}
	if opts.output == "" {
		return fmt.Errorf("alphawrap: --output is required")
	}
	if opts.alpha <= 0 {
		return fmt.Errorf("alphawrap: --alpha must be a positive real")
	}
	if opts.offset <= 0 {
		return fmt.Errorf("alphawrap: --offset must be a positive real")
	}

	points, err := pointsfile.LoadFile(opts.input)
	if err != nil {
		return err
	}

	policy, err := policyFor(opts.traversability)
	if err != nil {
		return err
	}
	if policy == nil {
		policy = wrap.ConstantAlpha(opts.alpha)
	}

	wrapOpts := []wrap.Option{
		wrap.WithPolicy(policy),
		wrap.WithInputFile(opts.input),
		wrap.WithIntermediateSteps(opts.intermediateSteps),
		wrap.WithExportStepLimit(opts.exportStepLimit),
		wrap.WithOutputDirectory(opts.output, opts.outputUseSubdir),
		wrap.WithStyle(opts.style),
	}
	if opts.maxIterations > 0 {
		wrapOpts = append(wrapOpts, wrap.WithMaxIterations(opts.maxIterations))
	}

	cfg := wrap.DefaultConfig(opts.alpha, opts.offset)
	for _, apply := range wrapOpts {
		apply(&cfg)
	}

	outputDir := opts.output
	if opts.outputUseSubdir {
		outputDir = filepath.Join(opts.output, time.Now().UTC().Format("20060102T150405"))
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("alphawrap: create output directory: %w", err)
	}

	ora := oracle.New(points)
	carver, err := wrap.NewCarver(ora, cfg)
	if err != nil {
		return err
	}

	result, err := carver.Run()
	if err != nil {
		return err
	}

	exporter := export.NewSVGExporter(export.StyleFor(opts.style))
	svgPath := filepath.Join(outputDir, "wrap.svg")
	if err := exporter.WriteSVG(svgPath, carver.Triangulation(), points, result.Edges); err != nil {
		return err
	}

	statsPath := filepath.Join(outputDir, "stats.json")
	if err := export.NewStatsExporter().WriteJSON(statsPath, result.Stats); err != nil {
		return err
	}

	return nil
}
