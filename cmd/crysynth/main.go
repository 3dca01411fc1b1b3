package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/urfave/cli"
	"golang.org/x/term"

	"github.com/valerio/go-crysynth/crysynth"
	"github.com/valerio/go-crysynth/crysynth/audio"
	"github.com/valerio/go-crysynth/crysynth/backend"
	"github.com/valerio/go-crysynth/crysynth/backend/headless"
	"github.com/valerio/go-crysynth/crysynth/backend/oto"
	"github.com/valerio/go-crysynth/crysynth/backend/terminal"
	"github.com/valerio/go-crysynth/crysynth/cry"
	"github.com/valerio/go-crysynth/crysynth/debug"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newApp(ctx).Run(os.Args)
	if err != nil {
		slog.Error("Error running crysynth", "error", err)
		stop()
		os.Exit(1)
	}
}

func newApp(ctx context.Context) *cli.App {
	app := cli.NewApp()
	app.Name = "crysynth"
	app.Description = "Synthesizes handheld console sound effect cries"
	app.Usage = "crysynth <command> [options] <cry.yaml>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	}
	app.Before = func(c *cli.Context) error {
		setupLogging(c.App.ErrWriter, c.GlobalBool("verbose"))
		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:      "export",
			Usage:     "Render a cry to a WAV file",
			ArgsUsage: "<cry.yaml>",
			Flags: append(renderFlags(),
				cli.StringFlag{
					Name:  "out, o",
					Usage: "Output path, - for stdout (default: <name>-cry.wav)",
				},
			),
			Action: func(c *cli.Context) error { return runExport(ctx, c) },
		},
		{
			Name:      "play",
			Usage:     "Play a cry on the default audio device",
			ArgsUsage: "<cry.yaml>",
			Flags:     renderFlags(),
			Action: func(c *cli.Context) error {
				return runBackend(ctx, c, oto.New())
			},
		},
		{
			Name:      "view",
			Usage:     "Show the waveforms of a cry in the terminal",
			ArgsUsage: "<cry.yaml>",
			Flags:     renderFlags(),
			Action: func(c *cli.Context) error {
				return runBackend(ctx, c, terminal.New())
			},
		},
		{
			Name:      "diagram",
			Usage:     "Save a PNG waveform diagram of a cry",
			ArgsUsage: "<cry.yaml>",
			Flags: append(renderFlags(),
				cli.StringFlag{
					Name:  "out, o",
					Usage: "Output path (default: <name>-cry.png)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "Diagram width in pixels",
					Value: debug.DefaultDiagramWidth,
				},
				cli.IntFlag{
					Name:  "row-height",
					Usage: "Height of each waveform row in pixels",
					Value: debug.DefaultDiagramRowHeight,
				},
			),
			Action: runDiagram,
		},
		{
			Name:      "dump",
			Usage:     "Print the commands, raw hex dump and note table of a cry",
			ArgsUsage: "<cry.yaml>",
			Flags: append(renderFlags(),
				cli.BoolFlag{
					Name:  "clipboard",
					Usage: "Copy the hex dump to the clipboard",
				},
			),
			Action: runDump,
		},
		{
			Name:      "import",
			Usage:     "Convert a raw hex dump into a cry file",
			ArgsUsage: "<dump file, - for stdin>",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name",
					Usage: "Cry name",
				},
				cli.IntFlag{
					Name:  "pitch",
					Usage: "Pitch offset stored in the file",
				},
				cli.IntFlag{
					Name:  "length",
					Usage: "Length scale stored in the file",
				},
			},
			Action: runImport,
		},
	}

	return app
}

func renderFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "pitch",
			Usage: "Pitch offset added to every note (default: from the cry file)",
		},
		cli.IntFlag{
			Name:  "length",
			Usage: "Length scale applied to every note (default: from the cry file)",
		},
		cli.IntFlag{
			Name:  "volume",
			Usage: "Output volume, 256 is unity (default: from the cry file, else 50)",
		},
		cli.IntFlag{
			Name:  "rate",
			Usage: "Output sample rate in Hz",
			Value: crysynth.DefaultOutputRate,
		},
		cli.BoolFlag{
			Name:  "no-pulse1",
			Usage: "Mute the first pulse channel",
		},
		cli.BoolFlag{
			Name:  "no-pulse2",
			Usage: "Mute the second pulse channel",
		},
		cli.BoolFlag{
			Name:  "no-noise",
			Usage: "Mute the noise channel",
		},
	}
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// loadCry reads the cry file named by the first argument and builds the
// render options from it and the flags. Flags override file values.
func loadCry(c *cli.Context) (*cry.File, crysynth.Options, error) {
	path := c.Args().First()
	if path == "" {
		cli.ShowCommandHelp(c, c.Command.Name)
		return nil, crysynth.Options{}, errors.New("no cry file provided")
	}

	file, err := cry.Load(path)
	if err != nil {
		return nil, crysynth.Options{}, err
	}
	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	opts := crysynth.DefaultOptions()
	opts.Pitch = file.Pitch
	opts.Length = file.Length
	opts.Volume = file.VolumeOr(crysynth.DefaultVolume)
	if c.IsSet("pitch") {
		opts.Pitch = c.Int("pitch")
	}
	if c.IsSet("length") {
		opts.Length = c.Int("length")
	}
	if c.IsSet("volume") {
		opts.Volume = c.Int("volume")
	}

	opts.OutputRate = c.Int("rate")
	if opts.OutputRate <= 0 {
		return nil, crysynth.Options{}, fmt.Errorf("invalid sample rate %d", opts.OutputRate)
	}

	opts.Enabled = audio.Enabled{
		cry.Pulse1: !c.Bool("no-pulse1"),
		cry.Pulse2: !c.Bool("no-pulse2"),
		cry.Noise:  !c.Bool("no-noise"),
	}

	return file, opts, nil
}

func render(c *cli.Context) (*crysynth.Result, error) {
	file, opts, err := loadCry(c)
	if err != nil {
		return nil, err
	}
	return crysynth.New(audio.DefaultConfig()).Render(file.Cry(), opts), nil
}

func runExport(ctx context.Context, c *cli.Context) error {
	res, err := render(c)
	if err != nil {
		return err
	}

	var out backend.Backend
	switch path := c.String("out"); path {
	case "-":
		if isTerminal(c.App.Writer) {
			return errors.New("refusing to write WAV data to a terminal, redirect stdout or use --out")
		}
		out = headless.NewWriter(c.App.Writer)
	default:
		out = headless.New(path, ".")
	}

	return output(ctx, out, res)
}

func runBackend(ctx context.Context, c *cli.Context, b backend.Backend) error {
	res, err := render(c)
	if err != nil {
		return err
	}
	return output(ctx, b, res)
}

func output(ctx context.Context, b backend.Backend, res *crysynth.Result) error {
	err := b.Init(backend.Config{
		Title:      res.Cry.DisplayName(),
		SampleRate: res.Clip.SampleRate,
	})
	if err != nil {
		return err
	}
	defer b.Cleanup()

	return b.Output(ctx, res)
}

func runDiagram(c *cli.Context) error {
	res, err := render(c)
	if err != nil {
		return err
	}

	path := c.String("out")
	if path == "" {
		path = strings.ToLower(res.Cry.DisplayName()) + "-cry.png"
	}

	img := debug.RenderDiagram(debug.DiagramRows(res), c.Int("width"), c.Int("row-height"))
	return debug.SaveDiagramPNG(img, path)
}

func runImport(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		cli.ShowCommandHelp(c, c.Command.Name)
		return errors.New("no hex dump provided")
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read hex dump: %w", err)
	}

	parsed, err := cry.ParseHex(string(data))
	if err != nil {
		return err
	}
	parsed.Name = c.String("name")

	return cry.NewFile(parsed, c.Int("pitch"), c.Int("length")).Encode(c.App.Writer)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
