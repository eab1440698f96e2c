package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"conwaylife/internal/app"
	"conwaylife/internal/config"
	"conwaylife/internal/logging"
	"conwaylife/internal/render"
	"conwaylife/pkg/life"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

type runOptions struct {
	configPath string
	overrides  []string
	seed       int64
	renderer   string
	workers    int
	tps        int
	scale      int
	outDir     string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "life [world_size] [generations]",
		Short: "Conway's Game of Life on a bounded square grid",
		Long: `life seeds a square world with a fixed pseudo-random pattern and advances it
under the B3/S23 rule, rendering every generation.

world_size defaults to 50 and generations to 100.`,
		Args:          positionalArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringArrayVar(&opts.overrides, "set", nil, "config override in key=value form (repeatable)")
	flags.Int64Var(&opts.seed, "seed", defaults.Seed, "seed for the initial pattern")
	flags.StringVar(&opts.renderer, "renderer", defaults.Renderer.Name, "output: "+strings.Join(render.Names(), ", "))
	flags.IntVar(&opts.workers, "workers", defaults.Workers, "goroutines used to advance each generation")
	flags.IntVar(&opts.tps, "tps", defaults.Renderer.TPS, "frames per second, 0 for no delay")
	flags.IntVar(&opts.scale, "scale", defaults.Renderer.Scale, "cell size in pixels (window) or units (mesh)")
	flags.StringVar(&opts.outDir, "out", defaults.Renderer.OutDir, "output directory for the mesh renderer")
	flags.StringVar(&opts.logLevel, "log-level", defaults.Logging.Level, "log level: debug, info, warn, error")

	cmd.AddCommand(newVersionCmd(), newRenderersCmd())
	return cmd
}

// positionalArgs accepts up to two positive integers.
func positionalArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}
	names := []string{"world_size", "generations"}
	for i, arg := range args {
		if _, err := parsePositive(names[i], arg); err != nil {
			return err
		}
	}
	return nil
}

func parsePositive(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, arg)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %d", name, n)
	}
	return n, nil
}

// resolveConfig layers defaults, the config file, the environment, --set
// overrides, explicit flags and finally positional arguments.
func resolveConfig(cmd *cobra.Command, args []string, opts *runOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	overrides, err := config.ParseOverrides(opts.overrides)
	if err != nil {
		return nil, err
	}
	cfg.Apply(overrides)

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("renderer") {
		cfg.Renderer.Name = opts.renderer
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("tps") {
		cfg.Renderer.TPS = opts.tps
	}
	if flags.Changed("scale") {
		cfg.Renderer.Scale = opts.scale
	}
	if flags.Changed("out") {
		cfg.Renderer.OutDir = opts.outDir
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}

	if len(args) > 0 {
		if cfg.WorldSize, err = parsePositive("world_size", args[0]); err != nil {
			return nil, err
		}
	}
	if len(args) > 1 {
		if cfg.Generations, err = parsePositive("generations", args[1]); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string, opts *runOptions) error {
	cfg, err := resolveConfig(cmd, args, opts)
	if err != nil {
		return err
	}

	// The screen renderer owns the terminal; log lines would tear it.
	var logOut io.Writer = cmd.ErrOrStderr()
	if cfg.Renderer.Name == "screen" {
		logOut = io.Discard
	}
	logger := logging.NewLogger(cfg.Logging.Level, logOut)

	factory, ok := render.Lookup(cfg.Renderer.Name)
	if !ok {
		if cfg.Renderer.Name == "window" && !app.Available {
			return errors.New("the window renderer requires building with -tags ebiten")
		}
		return fmt.Errorf("unknown renderer %q (available: %s)", cfg.Renderer.Name, strings.Join(render.Names(), ", "))
	}

	grid, err := life.NewGrid(cfg.WorldSize, cfg.Seed)
	if err != nil {
		return err
	}

	out, err := factory(render.Options{
		Writer: cmd.OutOrStdout(),
		OutDir: cfg.Renderer.OutDir,
		TPS:    cfg.Renderer.TPS,
		Scale:  cfg.Renderer.Scale,
		Length: cfg.WorldSize,
		Title:  fmt.Sprintf("life %dx%d", cfg.WorldSize, cfg.WorldSize),
		Seed:   cfg.Seed,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("renderer %s: %w", cfg.Renderer.Name, err)
	}

	sim := life.NewSimulation(cfg.Generations, grid, out,
		life.WithWorkers(cfg.Workers),
		life.WithLogger(logger),
	)
	if looper, ok := out.(render.Looper); ok {
		err = looper.Loop(sim.Run)
	} else {
		err = sim.Run()
	}
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("renderer %s: %w", cfg.Renderer.Name, closeErr)
	}
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "life version %s\n", version)
		},
	}
}

func newRenderersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "renderers",
		Short: "List the available renderers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range render.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
