package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortwiz/internal/audio"
	"github.com/san-kum/sortwiz/internal/automation"
	"github.com/san-kum/sortwiz/internal/config"
	"github.com/san-kum/sortwiz/internal/experiment"
	"github.com/san-kum/sortwiz/internal/export"
	"github.com/san-kum/sortwiz/internal/layout"
	"github.com/san-kum/sortwiz/internal/logging"
	"github.com/san-kum/sortwiz/internal/seq"
	"github.com/san-kum/sortwiz/internal/session"
	"github.com/san-kum/sortwiz/internal/stepper"
	"github.com/san-kum/sortwiz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string

	count      int
	minValue   int64
	maxValue   int64
	seed       int64
	algorithm  string
	descending bool
	width      int
	height     int

	fps   int
	speed int
	theme string
	sound bool

	logType  string
	logLevel string
	logFile  string

	// trace / snapshot
	format   string
	outFile  string
	maxSteps int
	atStep   int

	// sweep
	counts []int
	trials int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sortwiz",
		Short:         "step-by-step sorting visualiser",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&count, "count", config.DefaultCount, "number of elements")
	pf.Int64Var(&minValue, "min", config.DefaultMin, "smallest value")
	pf.Int64Var(&maxValue, "max", config.DefaultMax, "largest value")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.StringVar(&algorithm, "algo", config.DefaultAlgorithm, "algorithm: bubble, insertion, selection, heap")
	pf.BoolVar(&descending, "desc", false, "sort in descending order")
	pf.IntVar(&width, "width", config.DefaultWidth, "canvas width in pixels")
	pf.IntVar(&height, "height", config.DefaultHeight, "canvas height in pixels")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.IntVar(&speed, "speed", config.DefaultSpeed, "steps per frame")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme: "+strings.Join(viz.ThemeNames(), ", "))
	pf.BoolVar(&sound, "sound", false, "play a tone for every step")
	pf.StringVar(&logType, "log-type", string(logging.Tint), "log format: json, text, tint")
	pf.StringVar(&logLevel, "log-level", "info", "log level")
	pf.StringVar(&logFile, "log-file", "", "log file (the tui discards logs otherwise)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal visualiser",
		RunE:  runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "sort headless and print a summary",
		RunE:  runHeadless,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run every algorithm on the same sequence",
		RunE:  benchAlgorithms,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot inversions over steps",
		RunE:  plotRun,
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "export the step trace",
		RunE:  traceRun,
	}
	traceCmd.Flags().StringVar(&format, "format", "json", "trace format: json, csv")
	traceCmd.Flags().StringVar(&outFile, "out", "", "output file (stdout if empty)")
	traceCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many steps")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render the bars after a given step as svg",
		RunE:  snapshotRun,
	}
	snapshotCmd.Flags().IntVar(&atStep, "step", 0, "step to render (0 renders the initial sequence, -1 the final one)")
	snapshotCmd.Flags().StringVar(&outFile, "out", "", "output file (stdout if empty)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "compare algorithms across element counts over many seeds",
		RunE:  sweepAlgorithms,
	}
	sweepCmd.Flags().IntSliceVar(&counts, "counts", []int{10, 50, 100, 200}, "element counts to sweep")
	sweepCmd.Flags().IntVar(&trials, "trials", 5, "seeds per cell")

	scriptCmd := &cobra.Command{
		Use:   "script [scenario.yaml]",
		Short: "replay a scripted session",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tTIME\tSPACE")
			for _, info := range experiment.NewRegistry().List() {
				fmt.Fprintf(w, "%c\t%s\t%s\t%s\n", info.Key, info.Name, info.TimeComplexity, info.SpaceComplexity)
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOUNT\tRANGE\tALGO\tORDER")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t[%d, %d]\t%s\t%s\n", name, p.Count, p.Min, p.Max, p.Algorithm, p.GetDirection())
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(tuiCmd, runCmd, benchCmd, sweepCmd, scriptCmd, plotCmd, traceCmd, snapshotCmd, algorithmsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveConfig layers the preset, then the config file, then explicit flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = count
	}
	if flags.Changed("min") {
		cfg.Min = minValue
	}
	if flags.Changed("max") {
		cfg.Max = maxValue
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("algo") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("desc") {
		cfg.Descending = descending
	}
	if flags.Changed("width") {
		cfg.Canvas.Width = width
	}
	if flags.Changed("height") {
		cfg.Canvas.Height = height
	}
	if flags.Changed("fps") {
		cfg.Display.FPS = fps
	}
	if flags.Changed("speed") {
		cfg.Display.Speed = speed
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = theme
	}
	if flags.Changed("sound") {
		cfg.Display.Sound = sound
	}
	if flags.Changed("log-type") {
		cfg.Log.Format = logging.Format(logType)
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup resolves the config and installs the logger it describes. The tui
// owns the terminal, so it only logs when a log file is configured.
func setup(cmd *cobra.Command, interactive bool) (*config.Config, func() error, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	var fallback io.Writer = os.Stderr
	if interactive {
		fallback = nil
	}
	closeLog, err := logging.Setup(cfg.Log, fallback)
	if err != nil {
		return nil, nil, err
	}
	return cfg, closeLog, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, closeLog, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := session.New(session.FromConfig(cfg), seq.New(cfg.Seed))
	if err != nil {
		return err
	}
	slog.Info("visualiser starting", "seed", cfg.Seed, "count", cfg.Count, "algorithm", cfg.Algorithm)

	opts := viz.Options{
		FPS:   cfg.Display.FPS,
		Speed: cfg.Display.Speed,
		Theme: cfg.Display.Theme,
	}
	if cfg.Display.Sound {
		l := sess.Layout()
		s := audio.NewSonifier(l.Min, l.Max, 30*time.Millisecond)
		if err := s.Initialize(); err != nil {
			slog.Warn("sound disabled", "error", err)
		} else {
			defer s.Close()
			opts.Sound = s
		}
	}

	return viz.Run(sess, opts)
}

func newExperiment(cfg *config.Config, algo stepper.Algorithm) experiment.Config {
	return experiment.Config{
		Algorithm: algo,
		Direction: cfg.GetDirection(),
		Count:     cfg.Count,
		Min:       cfg.Min,
		Max:       cfg.Max,
		Seed:      cfg.Seed,
	}
}

func runExperiment(ctx context.Context, ec experiment.Config) (*experiment.Result, error) {
	exp := experiment.New(ec)
	if err := exp.Setup(); err != nil {
		return nil, err
	}
	return exp.Run(ctx)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, closeLog, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	ec := newExperiment(cfg, cfg.GetAlgorithm())
	fmt.Printf("running %s (%s) on %d elements...\n", ec.Algorithm, ec.Direction, ec.Count)

	result, err := runExperiment(cmd.Context(), ec)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("seed: %d\n", result.Seed)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Printf("sorted: %t\n", result.Final.IsSorted(result.Direction))
	fmt.Println("\nmetrics:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range []string{"steps", "self_swaps", "inversions", "disorder"} {
		if v, ok := result.Metrics[name]; ok {
			fmt.Fprintf(w, "  %s\t%g\n", name, v)
		}
	}
	return w.Flush()
}

func benchAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, closeLog, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	initial, err := seq.New(cfg.Seed).Generate(cfg.Count, cfg.Min, cfg.Max)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %d elements, seed %d, %s\n\n", cfg.Count, cfg.Seed, cfg.GetDirection())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tSELF SWAPS\tELAPSED\tTIME/STEP\tCOMPLEXITY")

	registry := experiment.NewRegistry()
	for _, info := range registry.List() {
		exp := experiment.New(newExperiment(cfg, info.Algorithm))
		exp.UseSequence(initial)

		result, err := exp.Run(cmd.Context())
		if err != nil {
			return err
		}

		perStep := time.Duration(0)
		if result.Steps > 0 {
			perStep = result.Elapsed / time.Duration(result.Steps)
		}
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%v\t%v\t%s\n",
			info.Name,
			result.Steps,
			result.Metrics["self_swaps"],
			result.Elapsed.Round(time.Microsecond),
			perStep,
			info.TimeComplexity,
		)
	}
	return w.Flush()
}

func sweepAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, closeLog, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	fmt.Printf("sweeping counts %v, %d trials per cell, seeds from %d\n\n", counts, trials, cfg.Seed)

	sweep := experiment.NewSweep(stepper.Algorithms, counts, trials)
	summaries, err := sweep.Run(cmd.Context(), newExperiment(cfg, cfg.GetAlgorithm()))
	if err != nil {
		return err
	}

	fastest := experiment.Fastest(summaries)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tCOUNT\tMIN\tMEAN\tMAX\tSELF SWAPS\tELAPSED\t")
	for _, s := range summaries {
		mark := ""
		if fastest[s.Count] == s.Algorithm {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\t%d\t%.1f\t%v\t%s\n",
			s.Algorithm, s.Count, s.MinSteps, s.MeanSteps, s.MaxSteps, s.MeanSelfSwaps,
			s.Elapsed.Round(time.Microsecond), mark)
	}
	return w.Flush()
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, closeLog, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	sess, err := sc.NewSession(session.FromConfig(cfg))
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	fmt.Println()

	outcomes, runErr := automation.RunScenario(cmd.Context(), sc, sess)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tACTION\tSTATE\tSTEPS\tRESULT")
	for _, o := range outcomes {
		action := o.Action.Do
		if o.Action.Arg != "" {
			action += " " + o.Action.Arg
		}
		res := "ok"
		if o.Err != nil {
			res = o.Err.Error()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", o.Index, action, o.State, o.Steps, res)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return runErr
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, closeLog, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	result, err := runExperiment(cmd.Context(), newExperiment(cfg, cfg.GetAlgorithm()))
	if err != nil {
		return err
	}

	fmt.Printf("algorithm: %s\n", result.Algorithm)
	fmt.Printf("direction: %s\n", result.Direction)
	fmt.Printf("steps: %d\n\n", result.Steps)

	if len(result.Inversions) < 2 {
		fmt.Println("nothing to plot: the sequence was already in order")
		return nil
	}

	graph := asciigraph.Plot(result.Inversions,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("inversions vs step"),
	)
	fmt.Println(graph)
	return nil
}

func output() (io.Writer, func() error, error) {
	if outFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func traceRun(cmd *cobra.Command, args []string) error {
	cfg, closeLog, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	ec := newExperiment(cfg, cfg.GetAlgorithm())
	ec.MaxSteps = maxSteps
	ec.KeepEvents = true

	result, err := runExperiment(cmd.Context(), ec)
	if err != nil {
		return err
	}

	w, done, err := output()
	if err != nil {
		return err
	}

	switch format {
	case "json":
		err = export.WriteJSON(w, result)
	case "csv":
		err = export.WriteCSV(w, result)
	default:
		err = fmt.Errorf("unknown format: %s (want json or csv)", format)
	}
	if cerr := done(); err == nil {
		err = cerr
	}
	return err
}

func snapshotRun(cmd *cobra.Command, args []string) error {
	cfg, closeLog, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	ec := newExperiment(cfg, cfg.GetAlgorithm())
	ec.KeepEvents = true
	if atStep >= 0 {
		ec.MaxSteps = atStep
	}

	var (
		values stepper.Sequence
		ev     stepper.StepEvent
		result *experiment.Result
	)

	if atStep == 0 {
		exp := experiment.New(ec)
		if err := exp.Setup(); err != nil {
			return err
		}
		values = exp.Initial()
	} else {
		result, err = runExperiment(cmd.Context(), ec)
		if err != nil {
			return err
		}
		values = result.Final
		if n := len(result.Events); n > 0 && !result.Finished {
			ev = result.Events[n-1]
		}
	}

	l, err := layout.New(cfg.Canvas.Width, cfg.Canvas.Height, values)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s - %s", ec.Algorithm, ec.Direction)
	if result != nil {
		title = fmt.Sprintf("%s (step %d)", title, result.Steps)
	}

	w, done, err := output()
	if err != nil {
		return err
	}
	err = export.WriteSVG(w, l, values, ev, title)
	if cerr := done(); err == nil {
		err = cerr
	}
	return err
}
