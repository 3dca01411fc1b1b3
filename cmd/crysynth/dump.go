package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli"
	"golang.design/x/clipboard"

	"github.com/valerio/go-crysynth/crysynth/audio"
	"github.com/valerio/go-crysynth/crysynth/cry"
	"github.com/valerio/go-crysynth/crysynth/debug"
)

type dumpStyles struct {
	title   lipgloss.Style
	section lipgloss.Style
	command lipgloss.Style
	hex     lipgloss.Style
	border  lipgloss.Style
}

func newDumpStyles() dumpStyles {
	return dumpStyles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		command: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		hex:     lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(5)),
		border:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
	}
}

func runDump(c *cli.Context) error {
	file, opts, err := loadCry(c)
	if err != nil {
		return err
	}

	parsed := file.Cry()
	data := debug.ExtractCryData(parsed, opts.Params, audio.DefaultConfig())
	hex := cry.FormatHex(parsed)

	writeDump(c.App.Writer, newDumpStyles(), parsed, data, hex)

	if c.Bool("clipboard") {
		copyToClipboard(hex)
	}
	return nil
}

func writeDump(w io.Writer, styles dumpStyles, c *cry.Cry, data *debug.CryData, hex string) {
	fmt.Fprintln(w, styles.title.Render(fmt.Sprintf("%s  pitch %d  length %d",
		data.Name, data.Params.Pitch, data.Params.Length)))

	pulse1, pulse2, noise := c.Text()
	for i, text := range []string{pulse1, pulse2, noise} {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styles.section.Render(cry.Channels[i].String()))
		fmt.Fprint(w, styles.command.Render(text))
		if text != "" && !strings.HasSuffix(text, "\n") {
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.section.Render("hex"))
	fmt.Fprintln(w, styles.hex.Render(strings.TrimSpace(hex)))

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.section.Render("notes"))
	fmt.Fprintln(w, noteTable(styles, data))
}

func noteTable(styles dumpStyles, data *debug.CryData) string {
	ms := func(samples int) string {
		return fmt.Sprintf("%.1f", float64(samples)*1000/float64(data.SourceRate))
	}

	var rows [][]string
	for _, ch := range data.Channels {
		for _, n := range ch.Notes {
			shape := n.Duty.String()
			if ch.Channel == cry.Noise {
				shape = "15-bit"
				if n.Narrow {
					shape = "7-bit"
				}
			}
			rows = append(rows, []string{
				ch.Channel.String(),
				fmt.Sprint(n.Index),
				ms(n.Start),
				ms(n.Samples),
				fmt.Sprint(n.Volume),
				fmt.Sprint(n.Fade),
				fmt.Sprintf("0x%03x", n.Control),
				fmt.Sprintf("%.1f", n.Frequency),
				n.Note,
				shape,
			})
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.border).
		Headers("CHANNEL", "#", "START MS", "LEN MS", "VOL", "FADE", "CONTROL", "HZ", "NOTE", "SHAPE").
		Rows(rows...).
		String()
}

func copyToClipboard(text string) {
	if err := clipboard.Init(); err != nil {
		slog.Warn("Clipboard not available", "error", err)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	slog.Info("Hex dump copied to clipboard", "bytes", len(text))
}
