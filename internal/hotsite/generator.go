package hotsite

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

var (
	// ErrNilProject is returned when a render is asked for without an aggregate.
	ErrNilProject = errors.New("hotsite: nil project")
	// ErrYearRequired is returned by NewGenerator when no copyright year is set.
	ErrYearRequired = errors.New("hotsite: year is required")
)

// DefaultHighlightTier is the zero-based index of the price card that gets
// the highlight class.
const DefaultHighlightTier = 2

// Options controls a Generator. Year is the copyright year; the generator
// never reads the clock.
type Options struct {
	Year int
	// HighlightTier is the zero-based price card index to highlight. A
	// negative value disables the highlight.
	HighlightTier int
	// MarkdownFAQ renders FAQ answers as markdown instead of plain text.
	MarkdownFAQ bool
}

// DefaultOptions returns options for the given year with the default tier.
func DefaultOptions(year int) Options {
	return Options{Year: year, HighlightTier: DefaultHighlightTier}
}

// Artifacts are the three generated texts of a hotsite.
type Artifacts struct {
	HTML string
	CSS  string
	JS   string
}

// Generator renders hotsite artifacts. It holds only parsed templates and
// options, so one Generator can serve concurrent requests.
type Generator struct {
	opts   Options
	page   *template.Template
	script *texttemplate.Template
	md     goldmark.Markdown
}

// NewGenerator parses the page and script templates.
func NewGenerator(opts Options) (*Generator, error) {
	if opts.Year <= 0 {
		return nil, ErrYearRequired
	}

	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	script, err := texttemplate.New("script").Parse(scriptTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing script template: %w", err)
	}

	// Raw HTML in answers is dropped: goldmark omits it unless WithUnsafe is set.
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
	)

	return &Generator{opts: opts, page: page, script: script, md: md}, nil
}

// Options returns the options the generator was built with.
func (g *Generator) Options() Options { return g.opts }

// Generate renders all three artifacts for the aggregate.
func (g *Generator) Generate(full *project.Full) (Artifacts, error) {
	if full == nil {
		return Artifacts{}, ErrNilProject
	}

	html, err := g.RenderHTML(full)
	if err != nil {
		return Artifacts{}, err
	}
	js, err := g.RenderJS(full)
	if err != nil {
		return Artifacts{}, err
	}

	return Artifacts{
		HTML: html,
		CSS:  RenderCSS(full.BrandColor),
		JS:   js,
	}, nil
}

// renderAnswer turns a FAQ answer into the trusted fragment placed inside the
// accordion panel.
func (g *Generator) renderAnswer(answer string) (template.HTML, error) {
	if !g.opts.MarkdownFAQ {
		return template.HTML("<p>" + template.HTMLEscapeString(answer) + "</p>"), nil
	}

	var buf bytes.Buffer
	if err := g.md.Convert([]byte(answer), &buf); err != nil {
		return "", fmt.Errorf("converting faq answer: %w", err)
	}
	return template.HTML(bytes.TrimSpace(buf.Bytes())), nil
}
