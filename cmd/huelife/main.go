package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"huelife/internal/app"
	"huelife/internal/config"
	"huelife/internal/core"
	"huelife/internal/export"
	"huelife/internal/lab"
	"huelife/internal/life"
	"huelife/internal/render"
	"huelife/internal/sim"
	"huelife/internal/tui"
)

var (
	configFile string
	preset     string

	termFlags   simFlags
	guiFlags    simFlags
	labFlags    simFlags
	renderFlags simFlags
	benchFlags  simFlags

	outPath string
	ticks   int
	every   int

	benchGens int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "huelife",
		Short: "conway's game of life with hue-cycled rendering",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(termDefaults())
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset configuration")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "watch the simulation in the terminal",
		RunE:  runTerm,
	}
	termFlags.bind(termCmd, termDefaults())

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the desktop window (build with the 'ebiten' tag)",
		RunE:  runGUI,
	}
	guiFlags.bind(guiCmd, guiDefaults())

	labCmd := &cobra.Command{
		Use:   "lab",
		Short: "open the control laboratory (build with the 'fyne' tag)",
		RunE:  runLab,
	}
	labFlags.bind(labCmd, labDefaults())

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "run headless and write a gif or png",
		RunE:  runRender,
	}
	renderFlags.bind(renderCmd, renderDefaults())
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "life.gif", "output path (.gif or .png)")
	renderCmd.Flags().IntVar(&ticks, "ticks", 300, "generations to simulate")
	renderCmd.Flags().IntVar(&every, "every", 2, "capture every n-th generation (gif)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time the step strategies",
		RunE:  runBench,
	}
	benchFlags.bind(benchCmd, benchDefaults())
	benchCmd.Flags().IntVar(&benchGens, "gens", 200, "generations per strategy")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		RunE:  runPresets,
	}

	rootCmd.AddCommand(termCmd, guiCmd, labCmd, renderCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: the command's defaults,
// replaced wholesale by a preset or config file when one is named.
func loadConfig(base config.Config) (config.Config, error) {
	cfg := base
	if preset != "" && configFile != "" {
		return cfg, errors.New("--preset and --config are mutually exclusive")
	}
	if preset != "" {
		p, ok := config.Preset(preset)
		if !ok {
			return cfg, errors.Errorf("unknown preset %q (have %v)", preset, config.PresetNames())
		}
		cfg = p
	}
	if configFile != "" {
		p, err := config.Load(configFile)
		if err != nil {
			return cfg, err
		}
		cfg = p
	}
	return cfg, nil
}

func termDefaults() config.Config {
	cfg := config.Default()
	cfg.Width = 120
	cfg.Height = 50
	cfg.CellSize = 2
	cfg.TPS = 10
	return cfg
}

func guiDefaults() config.Config {
	return config.Default()
}

func labDefaults() config.Config {
	cfg := config.Default()
	cfg.Width = 640
	cfg.Height = 480
	cfg.CellSize = 8
	cfg.TPS = 30
	return cfg
}

func renderDefaults() config.Config {
	cfg := config.Default()
	cfg.Width = 320
	cfg.Height = 240
	cfg.CellSize = 4
	return cfg
}

func benchDefaults() config.Config {
	cfg := config.Default()
	cfg.Width = 1920
	cfg.Height = 1080
	cfg.CellSize = 2
	return cfg
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(termDefaults())
	if err != nil {
		return err
	}
	termFlags.apply(cmd, &cfg)
	return tui.Run(cfg)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(guiDefaults())
	if err != nil {
		return err
	}
	guiFlags.apply(cmd, &cfg)
	return app.Run(cfg)
}

func runLab(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(labDefaults())
	if err != nil {
		return err
	}
	labFlags.apply(cmd, &cfg)
	return lab.Run(cfg)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(renderDefaults())
	if err != nil {
		return err
	}
	renderFlags.apply(cmd, &cfg)
	if ticks < 1 {
		ticks = 1
	}
	if every < 1 {
		every = 1
	}

	s, err := sim.New(cfg, nil)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".gif":
		return writeGIF(s, cfg)
	case ".png":
		return writePNG(s, cfg)
	default:
		return errors.Errorf("unsupported output %q (want .gif or .png)", outPath)
	}
}

func writeGIF(s *sim.Sim, cfg config.Config) error {
	rec := export.NewRecorder(every * 100 / cfg.TPS)

	now := time.Now()
	tick := time.Second / time.Duration(cfg.TPS)
	for i := 0; i < ticks; i++ {
		if err := s.Tick(now); err != nil {
			return err
		}
		if i%every == 0 {
			size := s.Size()
			rec.Capture(s.Cells(), size.W, size.H, s.CellSize(),
				render.AliveColor(s.Hue()), render.DeadColor())
		}
		now = now.Add(tick)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "create %s", outPath)
	}
	defer f.Close()
	if err := rec.EncodeGIF(f); err != nil {
		return err
	}
	fmt.Printf("wrote %d frames to %s\n", rec.Len(), outPath)
	return nil
}

func writePNG(s *sim.Sim, cfg config.Config) error {
	now := time.Now()
	tick := time.Second / time.Duration(cfg.TPS)
	for i := 0; i < ticks; i++ {
		if err := s.Tick(now); err != nil {
			return err
		}
		now = now.Add(tick)
	}

	img := export.Scale(nil, s.Frame(), s.CellSize())
	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "create %s", outPath)
	}
	defer f.Close()
	if err := export.EncodePNG(f, img); err != nil {
		return err
	}
	b := img.Bounds()
	fmt.Printf("wrote %dx%d png to %s\n", b.Dx(), b.Dy(), outPath)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(benchDefaults())
	if err != nil {
		return err
	}
	benchFlags.apply(cmd, &cfg)
	if benchGens < 1 {
		benchGens = 1
	}

	view := core.NewViewport(cfg.Width, cfg.Height, cfg.CellSize)
	size := view.GridSize()
	fmt.Printf("%dx%d grid, %d cells, %d generations\n\n", size.W, size.H, size.W*size.H, benchGens)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tTIME\tGEN/S\tCELLS/S")

	for _, name := range life.Names() {
		strat, err := life.Pick(name, cfg.Workers)
		if err != nil {
			return err
		}
		board, err := core.NewBoard(size.W, size.H, cfg.MaxCells)
		if err != nil {
			return err
		}
		board.Reseed(core.NewRNG(cfg.Seed))

		start := time.Now()
		for i := 0; i < benchGens; i++ {
			if err := strat.Step(board.Scratch(), board.Cells(), size.W, size.H); err != nil {
				return err
			}
			board.Swap()
		}
		elapsed := time.Since(start)

		gps := float64(benchGens) / elapsed.Seconds()
		fmt.Fprintf(tw, "%s\t%v\t%.1f\t%.0f\n",
			strat.Name(), elapsed.Round(time.Millisecond), gps, gps*float64(size.W*size.H))
	}
	return tw.Flush()
}

func runPresets(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSURFACE\tCELL\tTPS\tRESET\tINFO")
	for _, name := range config.PresetNames() {
		p, _ := config.Preset(name)
		fmt.Fprintf(tw, "%s\t%dx%d\t%dpx\t%d\t%v\t%v\n",
			name, p.Width, p.Height, p.CellSize, p.TPS, p.ResetPeriod(), p.InfoPeriod())
	}
	return tw.Flush()
}
