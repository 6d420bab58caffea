package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitlab/internal/config"
	"github.com/san-kum/orbitlab/internal/export"
	"github.com/san-kum/orbitlab/internal/orbit"
	"github.com/san-kum/orbitlab/internal/storage"
	"github.com/san-kum/orbitlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	steps      int
	timeScale  float64
	satellites int
	svgPath    string
	bodyIndex  int
)

var logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
	Level: logLevelFromEnv(),
}))

func logLevelFromEnv() slog.Level {
	switch os.Getenv("ORBITLAB_LOG_LEVEL") {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitlab",
		Short: "interactive gravitational orbit sandbox",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the live view when no subcommand is given.
			if err := runLive(cmd, args); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitlab", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset starting system")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive simulation: click to spawn orbiting bodies",
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless simulation, recorded to the data directory",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&steps, "steps", 3000, "number of steps")
	runCmd.Flags().Float64Var(&timeScale, "scale", 0, "time scale multiplier (0 = config value)")
	runCmd.Flags().IntVar(&satellites, "satellites", 0, "extra randomly placed satellites")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write final state as SVG to this path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a body's orbital radius over a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&bodyIndex, "body", 1, "body index to plot (0 is the anchor)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata and frames as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list starting-system presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves preset, then config file, in that order.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	return cfg, nil
}

func fallbackSeed() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return viz.Run(cfg, fallbackSeed())
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runSeed := fallbackSeed()
	engine := cfg.Engine(runSeed)
	s := cfg.InitialState(engine)

	// Extra satellites at random distances, like interactive clicks.
	anchor := s.Bodies[s.Anchor()].Pos
	for i := 0; i < satellites; i++ {
		d := cfg.Anchor.Radius + cfg.Spawn.MaxRadius + 20 + float64(i*35)
		angle := float64(i) * 2 * math.Pi / float64(max(satellites, 1))
		p := anchor.Add(orbit.FromAngle(angle, d))
		s = engine.SpawnAt(s, p.X, p.Y)
	}

	ts := cfg.TimeScale
	if timeScale > 0 {
		ts = timeScale
	}

	logger.Info("starting run",
		"seed", runSeed, "steps", steps, "bodies", len(s.Bodies), "time_scale", ts)

	initialEnergy := engine.Energy(s)
	frames := make([]storage.Frame, 0, steps)
	start := time.Now()

	simTime := 0.0
	for i := 0; i < steps; i++ {
		s = engine.Step(s, ts)
		simTime += engine.BaseTimeStep * ts

		positions := make([]orbit.Vec2, len(s.Bodies))
		for j, b := range s.Bodies {
			positions[j] = b.Pos
		}
		frames = append(frames, storage.Frame{Time: simTime, Positions: positions})
	}
	elapsed := time.Since(start)

	finalEnergy := engine.Energy(s)
	metrics := map[string]float64{
		"energy_initial":   initialEnergy,
		"energy_final":     finalEnergy,
		"angular_momentum": engine.AngularMomentum(s),
	}
	if r := engine.MeanOrbitalRadius(s); !math.IsNaN(r) {
		metrics["mean_orbital_radius"] = r
	}

	runID, err := st.Save(storage.RunMetadata{
		Seed:       runSeed,
		G:          cfg.G,
		Dt:         cfg.BaseTimeStep,
		TimeScale:  ts,
		Bodies:     len(s.Bodies),
		Satellites: len(s.Bodies) - 1,
		Metrics:    metrics,
	}, frames)
	if err != nil {
		return err
	}

	logger.Info("run complete", "run_id", runID, "elapsed", elapsed.String())

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.StateToSVG(s)), 0644); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
		fmt.Printf("svg: %s\n", svgPath)
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", steps)
	fmt.Println("\nmetrics:")
	for name, val := range metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tBODIES\tSTEPS\tDT\tSCALE")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.3f\t%.2f\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04"), r.Bodies, r.Steps, r.Dt, r.TimeScale)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return fmt.Errorf("run not found: %w", err)
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if bodyIndex < 0 || bodyIndex >= meta.Bodies {
		return fmt.Errorf("body index %d out of range [0,%d)", bodyIndex, meta.Bodies)
	}

	// Orbital radius of the chosen body relative to the anchor (body 0).
	radii := make([]float64, 0, len(frames))
	for _, f := range frames {
		if bodyIndex >= len(f.Positions) {
			continue
		}
		radii = append(radii, f.Positions[bodyIndex].Distance(f.Positions[0]))
	}
	if len(radii) < 2 {
		return fmt.Errorf("not enough frames to plot body %d", bodyIndex)
	}

	fmt.Printf("run %s, body %d orbital radius\n\n", meta.ID, bodyIndex)
	fmt.Println(asciigraph.Plot(radii, asciigraph.Height(12), asciigraph.Width(70)))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return fmt.Errorf("run not found: %w", err)
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	type exportFrame struct {
		Time      float64      `json:"time"`
		Positions []orbit.Vec2 `json:"positions"`
	}
	out := struct {
		Metadata storage.RunMetadata `json:"metadata"`
		Frames   []exportFrame       `json:"frames"`
	}{Metadata: *meta}
	for _, f := range frames {
		out.Frames = append(out.Frames, exportFrame{Time: f.Time, Positions: f.Positions})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
