package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cc2ass/cinecanvas"
	"cc2ass/fonts"
	"cc2ass/state"
)

const textColumnWidth = 60

// Info prints document metadata, declared fonts and subtitle list.
func Info(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("info")

	path, doc, err := loadSource(cmd, log)
	if err != nil {
		return err
	}
	return writeInfo(env.Out, doc, fonts.NewLoader(filepath.Dir(path), log))
}

// Dump prints parsed document tree.
func Dump(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("dump")

	_, doc, err := loadSource(cmd, log)
	if err != nil {
		return err
	}
	_, err = io.WriteString(env.Out, doc.String())
	return err
}

// loadSource parses document named by the first argument. With "dom" flag
// document is read into etree first and walked.
func loadSource(cmd *cli.Command, log *zap.Logger) (string, *cinecanvas.Document, error) {
	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return "", nil, errors.New("no input source has been specified")
	}
	path, err := filepath.Abs(src)
	if err != nil {
		return "", nil, err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var doc *cinecanvas.Document
	if cmd.Bool("dom") {
		tree := etree.NewDocument()
		if err = tree.ReadFromFile(path); err != nil {
			return "", nil, fmt.Errorf("unable to read subtitles (%s): %w", src, err)
		}
		doc, err = cinecanvas.ParseTree(tree, log)
	} else {
		doc, err = cinecanvas.ParseFile(path, log)
	}
	if err != nil {
		return "", nil, fmt.Errorf("unable to parse subtitles (%s): %w", src, err)
	}
	return path, doc, nil
}

func writeInfo(w io.Writer, doc *cinecanvas.Document, loader cinecanvas.FontLoader) error {
	meta := newTable()
	meta.AppendRows([]table.Row{
		{"ID", doc.ID},
		{"Title", doc.Title},
		{"Reel", doc.Reel},
		{"Language", doc.Language},
		{"Version", doc.Version},
		{"Subtitles", len(doc.Subtitles)},
	})
	if _, err := fmt.Fprintln(w, meta.Render()); err != nil {
		return err
	}

	if len(doc.Fonts) > 0 {
		ft := newTable()
		ft.AppendHeader(table.Row{"Id", "URI", "Name"})
		for _, f := range doc.Fonts {
			name, err := f.DisplayName(loader)
			if err != nil {
				name = "unavailable: " + err.Error()
			}
			ft.AppendRow(table.Row{f.ID, f.URI, name})
		}
		ft.SetColumnConfigs([]table.ColumnConfig{{Number: 3, WidthMax: textColumnWidth}})
		if _, err := fmt.Fprintln(w, ft.Render()); err != nil {
			return err
		}
	}

	st := newTable()
	st.AppendHeader(table.Row{"#", "Number", "In", "Out", "Duration", "Runs", "Text"})
	for i := range doc.Subtitles {
		sub := &doc.Subtitles[i]
		st.AppendRow(table.Row{
			i + 1,
			sub.Number,
			sub.Start,
			sub.End,
			(sub.End.Duration() - sub.Start.Duration()).String(),
			len(sub.Runs),
			subtitleText(sub),
		})
	}
	st.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, WidthMax: textColumnWidth},
	})
	_, err := fmt.Fprintln(w, st.Render())
	return err
}

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// subtitleText joins runs of subtitle into single line.
func subtitleText(sub *cinecanvas.Subtitle) string {
	lines := make([]string, 0, len(sub.Runs))
	for _, run := range sub.Runs {
		lines = append(lines, strings.Join(strings.Fields(run.Text()), " "))
	}
	return strings.Join(lines, " / ")
}
