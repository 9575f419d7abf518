package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/dynarr/internal/config"
	"github.com/san-kum/dynarr/internal/replay"
	"github.com/san-kum/dynarr/internal/storage"
	"github.com/san-kum/dynarr/internal/tui"
	"github.com/san-kum/dynarr/internal/viz"
)

var (
	dataDir  string
	capacity int
	noSave   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dynarr",
		Short: "dynamic array demonstration lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive explorer when no command given
			return tui.Run(capacity)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".dynarr", "data directory")
	rootCmd.Flags().IntVar(&capacity, "capacity", config.DefaultInitialCapacity, "initial capacity")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "run the built-in demonstration script",
		RunE:  runDemo,
	}
	demoCmd.Flags().IntVar(&capacity, "capacity", config.DefaultInitialCapacity, "initial capacity")
	demoCmd.Flags().BoolVar(&noSave, "no-save", false, "do not save the run")

	runCmd := &cobra.Command{
		Use:   "run [script.yaml]",
		Short: "run a script file",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not save the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot length vs capacity for a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive array explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(capacity)
		},
	}
	liveCmd.Flags().IntVar(&capacity, "capacity", config.DefaultInitialCapacity, "initial capacity")

	rootCmd.AddCommand(demoCmd, runCmd, listCmd, plotCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	script := config.DefaultScript()
	script.InitialCapacity = capacity
	return execute(script)
}

func runScript(cmd *cobra.Command, args []string) error {
	script, err := config.Load(args[0])
	if err != nil {
		return err
	}
	return execute(script)
}

func execute(script *config.Script) error {
	res, err := replay.Run(script)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "step\top\tlen\tcap\tcontents")
	for i, step := range res.Steps {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%v\n", i, step.Detail, step.Len, step.Cap, step.Items)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(viz.Cells(res.Array.Items(), res.Array.Cap()))
	fmt.Println(viz.Stats(res.Array.Len(), res.Array.Cap()))
	fmt.Println()
	fmt.Println(viz.GrowthPlot(traceSeries(res)))

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(res)
	if err != nil {
		return err
	}
	fmt.Printf("\nsaved run: %s\n", runID)
	return nil
}

func traceSeries(res *replay.Result) ([]float64, []float64) {
	lens := make([]float64, len(res.Steps))
	caps := make([]float64, len(res.Steps))
	for i, step := range res.Steps {
		lens[i] = float64(step.Len)
		caps[i] = float64(step.Cap)
	}
	return lens, caps
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tscript\ttime\tsteps\tlen\tcap")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID, run.Script, run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps, run.FinalLen, run.FinalCap)
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
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("steps: %d\n\n", meta.Steps)

	lens := make([]float64, len(trace))
	caps := make([]float64, len(trace))
	for i, p := range trace {
		lens[i] = float64(p.Len)
		caps[i] = float64(p.Cap)
	}
	fmt.Println(viz.GrowthPlot(lens, caps))
	return nil
}
