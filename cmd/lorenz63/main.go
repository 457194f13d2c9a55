package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lorenz63/internal/analysis"
	"github.com/san-kum/lorenz63/internal/config"
	"github.com/san-kum/lorenz63/internal/integrators"
	"github.com/san-kum/lorenz63/internal/lorenz"
	"github.com/san-kum/lorenz63/internal/report"
	"github.com/san-kum/lorenz63/internal/sim"
	"github.com/san-kum/lorenz63/internal/storage"
	"github.com/san-kum/lorenz63/internal/viz"
)

var (
	dataDir string
	// Phase plot axes
	xAxis int
	yAxis int
	// Frame rate for live view
	frameRate int
)

var coordNames = []string{"x", "y", "z"}

// main registers commands and flags and executes the root command,
// which prints the fixed reference trajectory. Dynamics constants are
// baked in; only presentation-side flags exist.
func main() {
	rootCmd := &cobra.Command{
		Use:   "lorenz63",
		Short: "Lorenz 63 forward-Euler trajectory demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printReference()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lorenz63", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the reference simulation and save it",
		RunE:  runSimulation,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot each coordinate of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 2, "state index for y-axis")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the attractor in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, phaseCmd, exportCSVCmd, exportJSONCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// printReference streams the fixed 99-step report to stdout.
func printReference() error {
	cfg := config.Default()

	dyn := lorenz.NewWith(cfg.Prandtl, cfg.Rayleigh, cfg.Beta)
	s := sim.New(dyn, integrators.NewEuler())

	r := report.New(os.Stdout, cfg)
	r.Header()
	s.AddObserver(r)

	_, err := s.Run(context.Background(), cfg.InitialState(), cfg.RunConfig())
	return err
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg := config.Default()

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	dyn := lorenz.NewWith(cfg.Prandtl, cfg.Rayleigh, cfg.Beta)
	s := sim.New(dyn, integrators.NewEuler())

	fmt.Println("running lorenz simulation...")
	start := time.Now()

	result, err := s.Run(context.Background(), cfg.InitialState(), cfg.RunConfig())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save("euler", cfg, result)
	if err != nil {
		return err
	}

	final := result.Final()
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("final state: [%.8f, %.8f, %.8f]\n", final[0], final[1], final[2])

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
	fmt.Fprintln(w, "ID\tTIME\tSTEPS\tDT\tINTEG")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.4fs\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Config.Dt,
			run.Integrator,
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

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(states))

	for varIdx := range states[0] {
		data := make([]float64, len(states))
		for i := range states {
			if varIdx < len(states[i]) {
				data[i] = states[i][varIdx]
			}
		}

		caption := fmt.Sprintf("x%d vs time", varIdx)
		if varIdx < len(coordNames) {
			caption = coordNames[varIdx] + " vs time"
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	portrait := analysis.PortraitFromStates(states, xAxis, yAxis)
	if portrait == nil {
		return fmt.Errorf("state dimension too small for selected axes")
	}

	fmt.Printf("phase space plot: %s\n", meta.ID)
	fmt.Printf("x-axis: x%d, y-axis: x%d\n\n", xAxis, yAxis)
	fmt.Print(portrait.ToASCII(70, 20))

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range states[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 8, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, states, times)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg := config.Default()

	dyn := lorenz.NewWith(cfg.Prandtl, cfg.Rayleigh, cfg.Beta)
	m := viz.NewModel(dyn, integrators.NewEuler(), cfg.InitialState(), cfg.Dt, frameRate)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
