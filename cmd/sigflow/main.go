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
	"github.com/spf13/cobra"

	"github.com/tomaskol/sigflow/internal/analysis"
	"github.com/tomaskol/sigflow/internal/config"
	"github.com/tomaskol/sigflow/internal/models"
	"github.com/tomaskol/sigflow/internal/stats"
	"github.com/tomaskol/sigflow/internal/store"
	"github.com/tomaskol/sigflow/internal/viz"
)

var (
	dataDir  string
	dt       float64
	duration float64
	// model parameters
	pos         float64
	vel         float64
	gravity     float64
	restitution float64
	omega       float64
	temp        float64
	ambient     float64
	coolingK    float64
	// config file and preset
	configFile string
	preset     string
	// live view
	frameRate int
	// analysis
	column string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sigflow",
		Short: "discrete-time signal function lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sigflow", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run a signal model and record its trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runModel,
	}
	addModelFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "run a signal model with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addModelFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a recorded trace",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&column, "column", "", "trace column (default: first)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list available models",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range models.NewRegistry().List() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, analyzeCmd, exportJSONCmd, exportCSVCmd, presetsCmd, modelsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Float64Var(&pos, "pos", 10.0, "initial position (ball)")
	cmd.Flags().Float64Var(&vel, "vel", 0.0, "initial velocity (ball)")
	cmd.Flags().Float64Var(&gravity, "gravity", -9.8, "gravity (ball)")
	cmd.Flags().Float64Var(&restitution, "restitution", 0.9, "bounce restitution (ball)")
	cmd.Flags().Float64Var(&omega, "omega", 1.0, "angular frequency (oscillator)")
	cmd.Flags().Float64Var(&temp, "temp", 90.0, "initial temperature (cooling)")
	cmd.Flags().Float64Var(&ambient, "ambient", 20.0, "ambient temperature (cooling)")
	cmd.Flags().Float64Var(&coolingK, "k", 0.5, "cooling constant (cooling)")
}

// resolveConfig merges preset, config file and flags; flags win when set
// explicitly.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = model

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		cfg.Dt = p.Dt
		cfg.Duration = p.Duration
		for k, v := range p.Params {
			cfg.Params[k] = v
		}
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Dt = fileCfg.Dt
		cfg.Duration = fileCfg.Duration
		for k, v := range fileCfg.Params {
			cfg.Params[k] = v
		}
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	flagParams := map[string]float64{
		"pos": pos, "vel": vel, "gravity": gravity, "restitution": restitution,
		"omega": omega, "temp": temp, "ambient": ambient, "k": coolingK,
	}
	for name, val := range flagParams {
		if cmd.Flags().Changed(name) {
			cfg.Params[name] = val
		}
	}
	return cfg, nil
}

func runModel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := models.NewRegistry()
	m, err := registry.Get(cfg.Model)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s...\n", cfg.Model)
	start := time.Now()

	trace, err := m.Run(context.Background(), models.RunConfig{
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
		Params:   cfg.Params,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	summary := make(map[string]float64)
	for _, col := range trace.Columns {
		data, err := trace.Column(col)
		if err != nil {
			continue
		}
		s := stats.Summarize(data)
		summary[col+"_min"] = s.Min
		summary[col+"_max"] = s.Max
		summary[col+"_mean"] = s.Mean
		summary[col+"_crossings"] = float64(s.Crossing)
	}

	runID, err := st.Save(cfg.Model, cfg.Dt, cfg.Duration, trace, summary)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", trace.Len())
	fmt.Println("\nstats:")
	for _, col := range trace.Columns {
		data, _ := trace.Column(col)
		s := stats.Summarize(data)
		fmt.Printf("  %-6s min=%.4f max=%.4f mean=%.4f crossings=%d\n", col, s.Min, s.Max, s.Mean, s.Crossing)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := models.NewRegistry()
	m, err := registry.Get(cfg.Model)
	if err != nil {
		return err
	}

	view := viz.NewModel(cfg.Model, func() models.Stepper {
		return m.Stepper(cfg.Params)
	}, cfg.Dt, frameRate)

	p := tea.NewProgram(view)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tDURATION\tDT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if trace.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", trace.Len())
	fmt.Print(viz.PlotTrace(trace, 10, 80))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if trace.Len() == 0 {
		return fmt.Errorf("no data")
	}

	col := column
	if col == "" {
		col = trace.Columns[0]
	}
	data, err := trace.Column(col)
	if err != nil {
		return err
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("column: %s\n\n", col)

	ps := analysis.PowerSpectrum(data)
	if n := len(ps) / 4; n > 1 {
		fmt.Println(viz.PlotSeries(ps[:n], "power spectrum", 15, 80))
		fmt.Println()
	}

	freq := analysis.DominantFrequency(data, meta.Dt)
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return store.ExportJSON(enc, meta, trace)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if trace.Len() == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(append([]string{"time"}, trace.Columns...)); err != nil {
		return err
	}
	for i, row := range trace.Rows {
		record := []string{strconv.FormatFloat(trace.Times[i], 'f', 6, 64)}
		for _, val := range row {
			record = append(record, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
