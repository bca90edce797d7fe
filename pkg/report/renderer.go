// Package report renders stock snapshots for diagnostic output.
//
// The text format follows the classic "texttest" layout:
//
//	-------- day 0 --------
//	name, sellIn, quality
//	+5 Dexterity Vest, 10, 20
//
// The term format is the same layout styled with lipgloss. The json, yaml
// and toml formats encode a {days: [...]} document.
package report

import (
	"embed"
	"encoding/json"
	"io"
	"os"
	"text/template"

	"github.com/arthur-debert/gildedrose/pkg/errors"
	"github.com/arthur-debert/gildedrose/pkg/logging"
	"github.com/arthur-debert/gildedrose/pkg/report/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Options controls how a Renderer writes
type Options struct {
	Format       Format
	NoColor      bool
	ShowCategory bool
}

// Renderer writes snapshots to an io.Writer in a single format
type Renderer struct {
	writer  io.Writer
	options Options
	logger  zerolog.Logger
}

type document struct {
	Days []Snapshot `json:"days" yaml:"days" toml:"days"`
}

type templateData struct {
	Days         []Snapshot
	ShowCategory bool
}

// NewRenderer creates a renderer. FormatAuto is resolved against w when it
// is a file, and falls back to text otherwise.
func NewRenderer(w io.Writer, opts Options) *Renderer {
	logger := logging.GetLogger("report.Renderer")

	if opts.Format == FormatAuto {
		opts.Format = FormatText
		if f, ok := w.(*os.File); ok && !opts.NoColor {
			opts.Format = DetectFormat(f)
		}
	}
	if opts.NoColor && opts.Format == FormatTerminal {
		opts.Format = FormatText
	}

	logger.Debug().
		Str("format", opts.Format.String()).
		Bool("showCategory", opts.ShowCategory).
		Msg("Creating renderer")

	return &Renderer{
		writer:  w,
		options: opts,
		logger:  logger,
	}
}

// Format returns the resolved output format
func (r *Renderer) Format() Format {
	return r.options.Format
}

// Render writes the snapshots in order
func (r *Renderer) Render(snapshots ...Snapshot) error {
	r.logger.Debug().Int("days", len(snapshots)).Msg("Rendering report")

	doc := document{Days: snapshots}

	var err error
	switch r.options.Format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(r.writer)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(r.writer).Encode(doc)
	case FormatTerminal:
		err = r.renderTemplate(doc, r.styled())
	default:
		err = r.renderTemplate(doc, plain)
	}

	if err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to render %s report", r.options.Format)
	}
	return nil
}

func (r *Renderer) renderTemplate(doc document, style func(name, s string) string) error {
	tmpl, err := template.New("report.tmpl").
		Funcs(template.FuncMap{"style": style}).
		ParseFS(templatesFS, "templates/report.tmpl")
	if err != nil {
		return err
	}

	return tmpl.Execute(r.writer, templateData{
		Days:         doc.Days,
		ShowCategory: r.options.ShowCategory,
	})
}

// styled renders through a lipgloss renderer bound to the output writer
func (r *Renderer) styled() func(name, s string) string {
	renderer := lipgloss.NewRenderer(r.writer)
	if _, ok := r.writer.(*os.File); !ok {
		renderer.SetColorProfile(termenv.TrueColor)
	}
	r.logger.Trace().Int("colorProfile", int(renderer.ColorProfile())).Msg("Terminal styling enabled")

	return func(name, s string) string {
		return renderer.NewStyle().Inherit(styles.GetStyle(name)).Render(s)
	}
}

func plain(_ string, s string) string {
	return s
}
