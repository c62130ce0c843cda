package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/oceanfft/internal/config"
	"github.com/san-kum/oceanfft/internal/export"
	"github.com/san-kum/oceanfft/internal/metrics"
	"github.com/san-kum/oceanfft/internal/ocean"
	"github.com/san-kum/oceanfft/internal/storage"
	"github.com/san-kum/oceanfft/internal/viz"
)

var (
	dataDir    string
	resolution int
	patchSize  float64
	windX      float64
	windY      float64
	choppiness float64
	dt         float64
	ticks      int
	seed       int64
	configFile string
	preset     string
	// Plot options
	plotRow int
	// SVG options
	svgOut   string
	svgScale float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "oceanfft",
		Short: "FFT ocean wave simulation",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".oceanfft", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation and store the result",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored surface",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotRow, "row", -1, "grid row for the transect (default: middle)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the stored surface to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "render a stored surface to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVar(&svgOut, "out", "surface.svg", "output file")
	svgCmd.Flags().Float64Var(&svgScale, "scale", 4.0, "pixels per braille dot")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Printf("  %-10s %dx%d patch %.0fm wind (%.0f, %.0f) choppiness %.1f\n",
					name, p.Resolution, p.Resolution, p.PatchSize, p.Wind.X, p.Wind.Y, p.Choppiness)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark tick throughput across resolutions",
		RunE:  benchResolutions,
	}
	benchCmd.Flags().IntVar(&ticks, "ticks", 30, "ticks per resolution")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, svgCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&resolution, "resolution", config.DefaultResolution, "grid resolution (power of two)")
	cmd.Flags().Float64Var(&patchSize, "patch", config.DefaultPatchSize, "patch size in meters")
	cmd.Flags().Float64Var(&windX, "wind-x", config.DefaultWindX, "wind x component (m/s)")
	cmd.Flags().Float64Var(&windY, "wind-y", config.DefaultWindY, "wind y component (m/s)")
	cmd.Flags().Float64Var(&choppiness, "choppiness", config.DefaultChoppiness, "horizontal displacement factor")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file, and CLI flags, with flags
// taking precedence over the file and the file over the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Seed = seed

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
		cfg.Seed = seed
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("resolution") {
		cfg.Resolution = resolution
	}
	if cmd.Flags().Changed("patch") {
		cfg.PatchSize = patchSize
	}
	if cmd.Flags().Changed("wind-x") {
		cfg.Wind.X = windX
	}
	if cmd.Flags().Changed("wind-y") {
		cfg.Wind.Y = windY
	}
	if cmd.Flags().Changed("choppiness") {
		cfg.Choppiness = choppiness
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("ticks") {
		cfg.Ticks = ticks
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
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

	sim, err := ocean.New(cfg.ToOcean())
	if err != nil {
		return err
	}
	sim.AddMetric(metrics.NewSignificantHeight())
	sim.AddMetric(metrics.NewPeakDisplacement())
	sim.AddMetric(metrics.NewSteepness(cfg.PatchSize / float64(cfg.Resolution)))

	fmt.Printf("running %dx%d ocean for %d ticks...\n", cfg.Resolution, cfg.Resolution, cfg.Ticks)
	start := time.Now()

	result, err := sim.Run(context.Background(), cfg.Ticks, cfg.Dt)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg, result, sim.Displacement())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", result.TicksTaken)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg.ToOcean(), cfg.Dt)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
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
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tRES\tPATCH\tWIND\tCHOP\tTICKS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.0fm\t(%.0f, %.0f)\t%.1f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Resolution,
			run.PatchSize,
			run.WindX,
			run.WindY,
			run.Choppiness,
			run.Ticks,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	disp, err := st.LoadSurface(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("resolution: %dx%d\n", meta.Resolution, meta.Resolution)
	fmt.Printf("patch: %.0fm, wind: (%.1f, %.1f), choppiness: %.2f\n\n",
		meta.PatchSize, meta.WindX, meta.WindY, meta.Choppiness)

	fmt.Println(viz.RenderField(disp, 80))

	row := plotRow
	if row < 0 {
		row = meta.Resolution / 2
	}
	heights := viz.Transect(disp, row)

	graph := asciigraph.Plot(heights,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("height along row %d", row)),
	)
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	disp, err := st.LoadSurface(runID)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "dx", "height", "dz"}); err != nil {
		return err
	}
	for y := 0; y < disp.N; y++ {
		for x := 0; x < disp.N; x++ {
			d := disp.At(x, y)
			row := []string{
				strconv.Itoa(x),
				strconv.Itoa(y),
				strconv.FormatFloat(d.X, 'f', 6, 64),
				strconv.FormatFloat(d.Y, 'f', 6, 64),
				strconv.FormatFloat(d.Z, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	disp, err := st.LoadSurface(runID)
	if err != nil {
		return err
	}

	canvas := viz.NewCanvas(100, 40)
	canvas.DrawSurface(disp, 8)

	svg := export.CanvasToSVG(canvas, svgScale)
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

func benchResolutions(cmd *cobra.Command, args []string) error {
	resolutions := []int{32, 64, 128, 256}

	fmt.Println("benchmarking ocean tick")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RES\tTICKS\tTIME\tTICKS/SEC")

	for _, res := range resolutions {
		cfg := ocean.Config{
			Resolution: res,
			PatchSize:  config.DefaultPatchSize,
			WindX:      config.DefaultWindX,
			WindY:      config.DefaultWindY,
			Choppiness: config.DefaultChoppiness,
			Seed:       42,
		}

		sim, err := ocean.New(cfg)
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := sim.Run(context.Background(), ticks, config.DefaultDt)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		ticksPerSec := float64(result.TicksTaken) / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%v\t%.1f\n", res, result.TicksTaken, elapsed, ticksPerSec)
	}

	return w.Flush()
}
