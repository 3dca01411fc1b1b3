package terminal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-crysynth/crysynth"
	"github.com/valerio/go-crysynth/crysynth/backend"
	"github.com/valerio/go-crysynth/crysynth/backend/terminal/render"
	"github.com/valerio/go-crysynth/crysynth/cry"
	"github.com/valerio/go-crysynth/crysynth/debug"
)

const (
	minTermWidth  = 40
	minTermHeight = 16
	logHeight     = 5
	logCapacity   = 100

	minZoom = 1
	// scrollDivisor is the fraction of the view one scroll step moves.
	scrollDivisor = 8
)

// rowLabels names the waveform rows, the channels then the mix.
var rowLabels = []string{"Pulse 1", "Pulse 2", "Noise", "Mix"}

// Backend shows the waveforms of a rendered cry in the terminal.
type Backend struct {
	screen    tcell.Screen
	config    backend.Config
	logBuffer *render.LogBuffer
	logLevel  slog.Level
	prevLog   *slog.Logger // restored by Cleanup
	running   bool

	res    *crysynth.Result
	offset int // first sample shown, at the synthesis rate
	zoom   int // samples per column
}

// New creates a terminal backend on the controlling terminal.
func New() *Backend {
	return &Backend{logLevel: slog.LevelInfo}
}

// NewWithScreen creates a backend drawing on screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	b := New()
	b.screen = screen
	return b
}

// Init initializes the screen and routes logging into the log pane.
func (t *Backend) Init(config backend.Config) error {
	t.config = config

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		t.screen = screen
	}

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	t.logBuffer = render.NewLogBuffer(logCapacity)
	t.prevLog = slog.Default()
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, slog.LevelDebug)))

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()
	t.running = true

	slog.Info("Terminal backend initialized")
	return nil
}

// Output shows res until the user quits or ctx is cancelled.
func (t *Backend) Output(ctx context.Context, res *crysynth.Result) error {
	if t.screen == nil {
		return fmt.Errorf("terminal not initialized")
	}

	t.res = res
	t.offset = 0
	t.fit()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go t.screen.ChannelEvents(events, quit)
	defer close(quit)

	t.draw()
	for t.running {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			t.handleEvent(ev)
			t.draw()
		}
	}

	t.config.Callbacks.Quit()
	return nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.screen != nil {
		t.screen.Fini()
		t.screen = nil
	}
	if t.prevLog != nil {
		slog.SetDefault(t.prevLog)
		t.prevLog = nil
	}
	return nil
}

// fit zooms out so the longest row fills the width.
func (t *Backend) fit() {
	width, _ := t.screen.Size()
	t.zoom = max((t.longest()+width-1)/max(width, 1), minZoom)
}

func (t *Backend) longest() int {
	n := len(t.res.Mixed)
	for _, ch := range cry.Channels {
		n = max(n, len(t.res.Channels.Get(ch)))
	}
	return n
}

func (t *Backend) rows() [][]float64 {
	return [][]float64{
		t.res.Channels.Pulse1,
		t.res.Channels.Pulse2,
		t.res.Channels.Noise,
		t.res.Mixed,
	}
}

func (t *Backend) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		t.handleKey(ev)
	}
}

func (t *Backend) handleKey(ev *tcell.EventKey) {
	width, _ := t.screen.Size()
	step := max(width/scrollDivisor, 1) * t.zoom

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.running = false
	case tcell.KeyLeft:
		t.scroll(-step)
	case tcell.KeyRight:
		t.scroll(step)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			t.running = false
		case '+', '=':
			t.setZoom(t.zoom / 2)
		case '-', '_':
			t.setZoom(t.zoom * 2)
		case '0':
			t.offset = 0
			t.fit()
		case '[':
			t.changeLogLevel(-1)
		case ']':
			t.changeLogLevel(1)
		}
	}
}

func (t *Backend) scroll(delta int) {
	t.offset = min(max(t.offset+delta, 0), max(t.longest()-1, 0))
}

func (t *Backend) setZoom(zoom int) {
	zoom = max(zoom, minZoom)
	if zoom != t.zoom {
		t.zoom = zoom
		slog.Debug("Zoom changed", "samples_per_column", zoom)
	}
}

// changeLogLevel widens (+1) or narrows (-1) the log pane filter.
func (t *Backend) changeLogLevel(direction int) {
	levels := []slog.Level{slog.LevelError, slog.LevelWarn, slog.LevelInfo, slog.LevelDebug}
	for i, l := range levels {
		if l == t.logLevel {
			next := min(max(i+direction, 0), len(levels)-1)
			if levels[next] != t.logLevel {
				slog.Info("Log filter changed", "from", t.logLevel, "to", levels[next])
				t.logLevel = levels[next]
			}
			return
		}
	}
}

func (t *Backend) draw() {
	t.screen.Clear()
	defer t.screen.Show()

	termWidth, termHeight := t.screen.Size()
	if termWidth < minTermWidth || termHeight < minTermHeight {
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, msg, tcell.StyleDefault.Foreground(tcell.ColorRed))
		return
	}

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	source := float64(t.res.SourceRate)
	title := fmt.Sprintf(" %s | pitch %d length %d | %.1f ms at %d samples/col ",
		t.res.Cry.DisplayName(), t.res.Options.Pitch, t.res.Options.Length,
		float64(t.offset)/source*1000, t.zoom)
	t.drawText(0, 0, termWidth, title, titleStyle)

	waveTop := 1
	waveHeight := termHeight - logHeight - 3
	rowHeight := waveHeight / len(rowLabels)
	for i, samples := range t.rows() {
		t.drawWave(waveTop+i*rowHeight, rowHeight, termWidth, rowLabels[i], samples, t.rowEnabled(i))
	}

	dividerY := termHeight - logHeight - 2
	for x := 0; x < termWidth; x++ {
		t.screen.SetContent(x, dividerY, '─', nil, borderStyle)
	}
	t.drawText(1, dividerY, termWidth-1, fmt.Sprintf(" Logs [%s] ", render.LevelTag(t.logLevel)), titleStyle)
	t.drawLogs(dividerY+1, termWidth)

	help := " q=quit ←/→=scroll +/-=zoom 0=reset [/]=log filter "
	t.drawText(0, termHeight-1, termWidth, help, borderStyle)
}

func (t *Backend) rowEnabled(row int) bool {
	if row >= len(cry.Channels) {
		return true
	}
	return t.res.Options.Enabled[cry.Channels[row]]
}

func (t *Backend) drawWave(y, height, width int, label string, samples []float64, enabled bool) {
	if height < 2 {
		return
	}

	waveStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	axisStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	if !enabled {
		waveStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
		label += " (muted)"
	}

	waveY := y + 1
	waveHeight := height - 1
	mid := waveY + waveHeight/2
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, mid, '·', nil, axisStyle)
	}

	columns := min((len(samples)-t.offset+t.zoom-1)/t.zoom, width)
	for x, p := range debug.Peaks(samples, t.offset, t.zoom, max(columns, 0)) {
		top, bottom := render.PeakRows(p, waveHeight)
		for row := top; row <= bottom; row++ {
			t.screen.SetContent(x, waveY+row, '█', nil, waveStyle)
		}
	}

	t.drawText(0, y, width, label, labelStyle)
}

func (t *Backend) drawLogs(y, width int) {
	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, entry := range t.logBuffer.Recent(logHeight, t.logLevel) {
		style := infoStyle
		switch {
		case entry.Level >= slog.LevelError:
			style = errStyle
		case entry.Level >= slog.LevelWarn:
			style = warnStyle
		case entry.Level < slog.LevelInfo:
			style = debugStyle
		}
		t.drawText(0, y+i, width, render.FormatLogEntry(entry), style)
	}
}

func (t *Backend) drawText(x, y, width int, text string, style tcell.Style) {
	for i, ch := range []rune(render.Truncate(text, width)) {
		t.screen.SetContent(x+i, y, ch, nil, style)
	}
}
