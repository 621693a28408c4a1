package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/geo/r2"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/fabiodan/bouncy-colors/internal/config"
	"github.com/fabiodan/bouncy-colors/internal/experiment"
	"github.com/fabiodan/bouncy-colors/internal/export"
	"github.com/fabiodan/bouncy-colors/internal/physics"
	"github.com/fabiodan/bouncy-colors/internal/sim"
	"github.com/fabiodan/bouncy-colors/internal/storage"
	"github.com/fabiodan/bouncy-colors/internal/viz"
)

var (
	jsonOut   string
	svgOut    string
	trailOut  string
	gifPath   string
	bodyIndex int
	advance   int
	raster    bool
	numRuns   int
)

// main registers commands and flags and launches the preset picker when no
// subcommand is given. It exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "bouncy",
		Short: "bouncing coloured bodies in a box",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(viz.NewInteractiveApp())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".bouncy", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a batch simulation and store it",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().StringVar(&gifPath, "gif", "bouncy.gif", "where G recordings are written")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot energy and contacts of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&jsonOut, "out", "o", "", "output file (stdout when empty)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render a fresh arena to SVG",
		Args:  cobra.NoArgs,
		RunE:  renderSVG,
	}
	addSimFlags(svgCmd)
	svgCmd.Flags().StringVarP(&svgOut, "out", "o", "bouncy.svg", "output file (- for stdout)")
	svgCmd.Flags().IntVar(&advance, "advance", 0, "ticks to simulate before rendering")
	svgCmd.Flags().BoolVar(&raster, "raster", false, "render the terminal canvas instead of vector circles")

	trailCmd := &cobra.Command{
		Use:   "trail [run_id]",
		Short: "render the path of one body to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  renderTrail,
	}
	trailCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index")
	trailCmd.Flags().StringVarP(&trailOut, "out", "o", "trail.svg", "output file (- for stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure tick throughput over body counts",
		Args:  cobra.NoArgs,
		RunE:  benchTicks,
	}
	addSimFlags(benchCmd)

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run several seeds in parallel",
		Args:  cobra.NoArgs,
		RunE:  runEnsemble,
	}
	addSimFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&numRuns, "runs", 8, "number of seeds")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "pick a preset and watch it live",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(viz.NewInteractiveApp())
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportJSONCmd, exportCSVCmd, svgCmd, trailCmd, presetsCmd, benchCmd, ensembleCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runProgram runs a Bubble Tea model full screen with mouse support. With
// BOUNCY_DEBUG set the standard logger writes to bouncy-debug.log,
// otherwise it is silenced so it cannot draw over the view.
func runProgram(m tea.Model) error {
	if os.Getenv("BOUNCY_DEBUG") != "" {
		f, err := tea.LogToFile("bouncy-debug.log", "debug")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	exp := experiment.New(cfg)
	if err := exp.Setup(registry.DefaultMetrics(cfg.Params().Arena)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %d bodies for %d ticks (seed %d)...\n", cfg.Bodies, cfg.Ticks, cfg.Seed)
	start := time.Now()

	result, err := exp.Run(ctx, true)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(preset, cfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", result.TicksTaken)
	fmt.Println("\nmetrics:")
	for _, name := range experiment.MetricNames() {
		fmt.Printf("  %s: %.6g\n", name, result.Metrics[name])
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg)
	if err != nil {
		return err
	}
	return runProgram(m.WithGIFPath(gifPath))
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tBODIES\tARENA\tTICKS\tCONTACTS")

	for _, run := range runs {
		name := run.Preset
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%gx%g\t%d\t%.0f\n",
			run.ID,
			name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Config.Bodies,
			run.Config.Width,
			run.Config.Height,
			run.TicksTaken,
			run.Metrics["contacts"],
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, []sim.Frame, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, frames, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("bodies: %d\n", meta.Config.Bodies)
	fmt.Printf("samples: %d\n\n", len(frames))

	energy := make([]float64, len(frames))
	contacts := make([]float64, len(frames))
	wallHits := make([]float64, len(frames))
	for i, f := range frames {
		energy[i] = physics.TotalKineticEnergy(f.Bodies)
		contacts[i] = float64(len(f.Contacts))
		wallHits[i] = float64(f.WallHits)
	}

	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{energy, "kinetic energy"},
		{contacts, "contacts per tick"},
		{wallHits, "wall hits per tick"},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return storage.ExportMetadata(os.Stdout, meta)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	if jsonOut == "" {
		return storage.ExportJSONStdout(meta, frames)
	}
	if err := storage.ExportJSON(jsonOut, meta, frames); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", jsonOut)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.WriteCSV(os.Stdout, frames)
}

func writeOutput(path, content string) error {
	if path == "-" {
		_, err := fmt.Fprintln(os.Stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func renderSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	th := viz.GetTheme(cfg.Theme)
	if raster {
		m, err := viz.NewModel(cfg)
		if err != nil {
			return err
		}
		for i := 0; i < advance; i++ {
			next, _ := m.Update(viz.TickMsg{})
			m = next.(viz.Model)
		}
		return writeOutput(svgOut, export.CanvasToSVG(m.Canvas(), th, 4))
	}

	s, err := sim.New(cfg.Params(), rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}
	for i := 0; i < advance; i++ {
		s.Tick()
	}
	return writeOutput(svgOut, export.SnapshotToSVG(s.Arena(), s.Bodies(), th))
}

func renderTrail(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	if len(frames) == 0 || bodyIndex < 0 || bodyIndex >= len(frames[0].Bodies) {
		return fmt.Errorf("body %d: %w", bodyIndex, physics.ErrNoSuchBody)
	}

	points := make([]r2.Point, len(frames))
	for i, f := range frames {
		points[i] = f.Bodies[bodyIndex].Position
	}

	th := viz.GetTheme(meta.Config.Theme)
	color := string(th.BodyColor(frames[len(frames)-1].Bodies[bodyIndex].Visual))
	arena := physics.Arena{Width: meta.Config.Width, Height: meta.Config.Height}
	return writeOutput(trailOut, export.TrajectoryToSVG(points, arena, color))
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBODIES\tARENA\tRADIUS\tSPEED\tTICKS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%gx%g\t%g\t%g\t%d\n",
			name, p.Bodies, p.Width, p.Height, p.Radius, p.Speed, p.Ticks)
	}
	return w.Flush()
}

func benchTicks(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	counts := []int{10, 25, 50, 100, 200}

	fmt.Printf("benchmarking %d ticks, radius %g\n\n", cfg.Ticks, cfg.Radius)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tARENA\tTICKS\tTIME\tTICKS/SEC\tCONTACTS")

	for _, n := range counts {
		p := cfg.Params()
		p.Count = n
		// Grow the arena so placement stays easy at every count.
		side := math.Max(p.Arena.Width, math.Sqrt(float64(n))*p.Radius*8)
		p.Arena = physics.Arena{Width: side, Height: side}

		s, err := sim.New(p, rand.New(rand.NewSource(cfg.Seed)))
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := sim.NewRunner(s).Run(context.Background(), sim.Config{Ticks: cfg.Ticks})
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%.0f\t%d\t%v\t%.0f\t%d\n",
			n, side, result.TicksTaken, elapsed, float64(result.TicksTaken)/elapsed.Seconds(), result.Contacts)
	}

	return w.Flush()
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if numRuns <= 0 {
		return fmt.Errorf("runs must be positive, got %d", numRuns)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	registry := experiment.NewRegistry()
	params := cfg.Params()
	ens := sim.NewEnsemble(params, numRuns, cfg.Seed, func() []sim.Metric {
		return registry.DefaultMetrics(params.Arena)
	})

	fmt.Printf("running %d seeds from %d, %d ticks each...\n\n", numRuns, cfg.Seed, cfg.Ticks)
	start := time.Now()

	results, err := ens.Run(ctx, sim.Config{Ticks: cfg.Ticks})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	names := experiment.MetricNames()
	fmt.Fprint(w, "SEED")
	for _, name := range names {
		fmt.Fprintf(w, "\t%s", name)
	}
	fmt.Fprintln(w)

	for i, res := range results {
		fmt.Fprintf(w, "%d", ens.Seed(i))
		for _, name := range names {
			fmt.Fprintf(w, "\t%.6g", res.Metrics[name])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ncompleted in %v\n", time.Since(start))
	return nil
}
