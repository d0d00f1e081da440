package hotsite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

func sampleProject() *project.Full {
	return &project.Full{
		Project: project.Project{
			Name:             "Walk'a Pinheiros",
			Slug:             "walka-pinheiros",
			AddressFull:      "Rua dos Pinheiros, 100 - São Paulo/SP",
			WhatsAppLink:     "https://wa.me/5511999998888",
			BrandColor:       "#F47B6B",
			HeroHeadline:     "Studios mobiliados",
			HeroSubheadline:  "Perto de tudo",
			HeroImageURL:     "hero.jpg",
			LogoURL:          "https://cdn.example/logo.svg",
			PointsOfInterest: "Metro - 5min\n\nShopping - 10min",
			TechSpecs:        "Área: 25 m²\nPiscina",
		},
		Gallery: []project.GalleryItem{
			{ImageURL: "images/g2.jpg", DisplayOrder: 2},
			{ImageURL: "images/g1.jpg", DisplayOrder: 1},
			{ImageURL: "images/g3.jpg", DisplayOrder: 3},
		},
		Plants: []project.Plant{
			{Title: "Eco Basic", Style: "ECO", Package: "BASIC", ImageURL: "images/eco-basic.png"},
			{Title: "Urban Design", Style: "Urban", Package: "Design", ImageURL: "images/urban-design.png"},
			{Title: "Sem estilo", Package: "BASIC", ImageURL: "images/orphan.png"},
		},
		Tours: []project.Tour{
			{Label: "Decorado", IframeURL: "https://tour.example/eco-1", StyleCategory: "ECO"},
			{Label: "Varanda", IframeURL: "https://tour.example/eco-2", StyleCategory: "ECO"},
			{Label: "Slim", IframeURL: "https://tour.example/slim-1", StyleCategory: "SLIM"},
		},
		Prices: []project.Price{
			{Title: "Standard", PriceValue: "R$ 300 mil", Features: "Vaga\n\nVaranda"},
			{Title: "Basic", PriceValue: "R$ 320 mil", BadgeText: "Popular"},
			{Title: "Design", PriceValue: "R$ 380 mil", CTALink: "https://pay.example/design"},
		},
		Faqs: []project.Faq{
			{Question: "Aceita financiamento?", Answer: "Sim, com os principais bancos."},
		},
	}
}

func newTestGenerator(t *testing.T, opts Options) *Generator {
	t.Helper()
	g, err := NewGenerator(opts)
	require.NoError(t, err)
	return g
}

func TestNewGeneratorRequiresYear(t *testing.T) {
	_, err := NewGenerator(Options{})
	assert.ErrorIs(t, err, ErrYearRequired)
}

func TestGenerateNilProject(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(2025))
	_, err := g.Generate(nil)
	assert.ErrorIs(t, err, ErrNilProject)
}

func TestRenderHTMLSections(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(2025))
	html, err := g.RenderHTML(sampleProject())
	require.NoError(t, err)

	for _, id := range []string{
		`id="section-local"`, `id="section-galeria"`, `id="section-plantas"`, `id="tours"`,
		`id="section-ficha-tecnica"`, `id="section-price"`, `id="section-faq"`,
	} {
		assert.Contains(t, html, id)
	}
	for _, anchor := range []string{"#section-local", "#section-galeria", "#section-plantas", "#tours",
		"#section-ficha-tecnica", "#section-price", "#section-faq"} {
		assert.Contains(t, html, `href="`+anchor+`"`)
	}

	assert.Contains(t, html, `<html lang="pt-br" data-project="walka-pinheiros">`)
	assert.Contains(t, html, `<meta name="theme-color" content="#F47B6B">`)
	assert.Contains(t, html, `href="images/favicon.png"`)
	assert.Contains(t, html, `href="images/apple-touch-icon.png"`)
	assert.Contains(t, html, `<meta property="og:image" content="images/hero.jpg">`)
	assert.Contains(t, html, `url('images/hero.jpg')`)
	assert.Contains(t, html, `<h4 class="h4 h4-footer">&#43;55 (11) 99999-8888</h4>`)
	assert.Contains(t, html, "Copyright © 2025 Walk&#39;a Pinheiros | All Rights Reserved")
	assert.Contains(t, html, `href="https://wa.me/5511999998888">Ver Tours 360</a>`)
}

func TestRenderHTMLPointsOfInterest(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(2025))
	html, err := g.RenderHTML(sampleProject())
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(html, `class="div-icon-txt-local"`))
	metro := strings.Index(html, `<h4 class="h4-local">Metro - 5min</h4>`)
	shopping := strings.Index(html, `<h4 class="h4-local">Shopping - 10min</h4>`)
	require.NotEqual(t, -1, metro)
	require.NotEqual(t, -1, shopping)
	assert.Less(t, metro, shopping)
}

func TestRenderHTMLGalleryRows(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(2025))
	html, err := g.RenderHTML(sampleProject())
	require.NoError(t, err)

	row1 := html[strings.Index(html, "image-row-1"):strings.Index(html, "image-row-2")]
	assert.Contains(t, row1, `src="images/g1.jpg"`)
	assert.Contains(t, row1, `src="images/g2.jpg"`)
	assert.NotContains(t, row1, `src="images/g3.jpg"`)
	assert.Equal(t, 3, strings.Count(html, `class="gallery-image"`))
}

func TestRenderHTMLPlantTabs(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(2025))
	html, err := g.RenderHTML(sampleProject())
	require.NoError(t, err)

	assert.Contains(t, html, `<button class="btn is-active" data-plant="eco">ECO</button>`)
	assert.Contains(t, html, `<button class="btn" data-plant="urban">Urban</button>`)
	assert.NotContains(t, html, `data-plant=""`)

	assert.Contains(t, html, `<button class="btn pkg is-active" data-package="standard">Standard</button>`)
	for _, pkg := range []string{"basic", "essential", "design"} {
		assert.Contains(t, html, `data-package="`+pkg+`"`)
	}
	assert.Equal(t, 4, strings.Count(html, "data-package="))
	assert.Contains(t, html, `onclick="window.open('https:`)
	assert.Contains(t, html, `5511999998888', '_blank')"`)
}

func TestPlantKeysMatchAcrossArtifacts(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(2025))
	full := sampleProject()
	full.Plants = []project.Plant{
		{Title: "Loft", Style: "Urban/Loft", Package: "BASIC", ImageURL: "images/loft.png"},
		{Title: "Plus", Style: "Eco (Plus)", Package: "DESIGN", ImageURL: "images/plus.png"},
	}

	html, err := g.RenderHTML(full)
	require.NoError(t, err)
	js, err := g.RenderJS(full)
	require.NoError(t, err)

	assert.NotContains(t, html, "ZgotmplZ")
	for _, key := range []string{"urban/loft", "eco (plus)"} {
		assert.Contains(t, html, `data-plant="`+key+`"`)
		assert.Contains(t, js, `"`+key+`": {`)
	}
	assert.Contains(t, js, "currentStyle = btn.dataset.plant;")
	assert.Contains(t, js, `let currentStyle = "urban/loft";`)
}

func TestRenderHTMLTourPanels(t *testing.T) {
	full := sampleProject()
	full.Tours = append(full.Tours, project.Tour{Label: "Sem estilo", IframeURL: "https://tour.example/none"})

	g := newTestGenerator(t, DefaultOptions(2025))
	html, err := g.RenderHTML(full)
	require.NoError(t, err)

	assert.Contains(t, html, `<button class="tab is-active" data-tab="eco">ECO</button>`)
	assert.Contains(t, html, `<button class="tab" data-tab="slim">SLIM</button>`)
	assert.Contains(t, html, `<div class="tab-panel is-active" id="panel-eco">`)
	assert.Contains(t, html, `<div class="tab-panel" id="panel-slim">`)
	assert.Equal(t, 2, strings.Count(html, `id="panel-`))

	eco := html[strings.Index(html, `id="panel-eco"`):strings.Index(html, `id="panel-slim"`)]
	assert.Contains(t, eco, `<button class="btn is-active" data-iframe="https://tour.example/eco-1">Decorado</button>`)
	assert.Contains(t, eco, `<button class="btn" data-iframe="https://tour.example/eco-2">Varanda</button>`)
	assert.Contains(t, eco, `<iframe src="https://tour.example/eco-1"`)
	assert.NotContains(t, html, "tour.example/none")
}

func TestRenderHTMLTechSpecs(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(2025))
	html, err := g.RenderHTML(sampleProject())
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(html, `class="div-detalhe"`))
	assert.Contains(t, html, `<h4 class="h4-infos">Área</h4>`)
	assert.Contains(t, html, `<h5 class="h5-infos">25 m²</h5>`)
	assert.Contains(t, html, `<h4 class="h4-infos">Piscina</h4>`)
	assert.Contains(t, html, `<h5 class="h5-infos"></h5>`)
}

func TestPriceHighlight(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(2025))

	full := sampleProject()
	html, err := g.RenderHTML(full)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(html, "price-4"))
	assert.Contains(t, html, `<div id="price-3" class="price-4">`)
	assert.Contains(t, html, `<div id="price-1" class="">`)
	assert.Contains(t, html, `<h6 class="h6-price">Opção</h6>`)
	assert.Contains(t, html, `<h6 class="h6-price">Popular</h6>`)
	assert.Contains(t, html, `href="https://pay.example/design"`)
	assert.Equal(t, 2, strings.Count(html, `class="div-icon-txt-price"`))

	full.Prices = full.Prices[:2]
	html, err = g.RenderHTML(full)
	require.NoError(t, err)
	assert.NotContains(t, html, "price-4")

	off := newTestGenerator(t, Options{Year: 2025, HighlightTier: -1})
	html, err = off.RenderHTML(sampleProject())
	require.NoError(t, err)
	assert.NotContains(t, html, "price-4")

	first := newTestGenerator(t, Options{Year: 2025, HighlightTier: 0})
	html, err = first.RenderHTML(sampleProject())
	require.NoError(t, err)
	assert.Contains(t, html, `<div id="price-1" class="price-4">`)
}

func TestRenderHTMLEscapesText(t *testing.T) {
	full := sampleProject()
	full.Name = `<script>alert(1)</script>`
	full.AddressFull = `"><img src=x onerror=alert(1)>`
	full.CTALink = "javascript:alert(1)"
	full.Faqs = []project.Faq{{Question: "<b>?</b>", Answer: "<i>resposta</i>"}}

	g := newTestGenerator(t, DefaultOptions(2025))
	html, err := g.RenderHTML(full)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, html, "<img src=x")
	assert.Contains(t, html, `href="#ZgotmplZ"`)
	assert.Contains(t, html, "<p>&lt;i&gt;resposta&lt;/i&gt;</p>")
	assert.NotContains(t, html, "<b>?</b>")
}

func TestRenderHTMLMarkdownFAQ(t *testing.T) {
	full := sampleProject()
	full.Faqs = []project.Faq{{Question: "Q", Answer: "**Sim**, veja <script>x()</script>"}}

	g := newTestGenerator(t, Options{Year: 2025, HighlightTier: DefaultHighlightTier, MarkdownFAQ: true})
	html, err := g.RenderHTML(full)
	require.NoError(t, err)

	assert.Contains(t, html, "<strong>Sim</strong>")
	assert.NotContains(t, html, "<script>x()")
}

func TestRenderCSS(t *testing.T) {
	css := RenderCSS("#10E6E1")
	assert.Contains(t, css, "--brand: #10E6E1;")
	assert.NotContains(t, css, brandPlaceholder)
	assert.Contains(t, css, ".image-row-2 { display: none !important; }")

	assert.Contains(t, RenderCSS("not a color"), "--brand: not a color;")
}

func TestRenderJS(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(2025))
	js, err := g.RenderJS(sampleProject())
	require.NoError(t, err)

	assert.Contains(t, js, `let currentStyle = "eco";`)
	assert.Contains(t, js, `"urban": {`)
	assert.Contains(t, js, `"design": "images/urban-design.png"`)
	assert.Contains(t, js, `"basic": "images/eco-basic.png"`)
	assert.NotContains(t, js, "orphan.png")
	assert.Contains(t, js, `"eco": document.getElementById("panel-eco"),`)
	assert.Contains(t, js, `"slim": document.getElementById("panel-slim")`)
	assert.Contains(t, js, "console.warn")
	assert.Contains(t, js, `e.key === "Escape"`)
}

func TestRenderJSWithoutPlants(t *testing.T) {
	full := sampleProject()
	full.Plants = nil
	full.Tours = nil

	g := newTestGenerator(t, DefaultOptions(2025))
	js, err := g.RenderJS(full)
	require.NoError(t, err)

	assert.Contains(t, js, `let currentStyle = "eco";`)
	assert.Contains(t, js, "const imgMap = {};")
	assert.NotContains(t, js, "getElementById(\"panel-")
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := newTestGenerator(t, DefaultOptions(2025))
	a, err := g.Generate(sampleProject())
	require.NoError(t, err)
	b, err := g.Generate(sampleProject())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	next := newTestGenerator(t, DefaultOptions(2026))
	c, err := next.Generate(sampleProject())
	require.NoError(t, err)
	assert.Equal(t, a.CSS, c.CSS)
	assert.Equal(t, a.JS, c.JS)
	assert.NotEqual(t, a.HTML, c.HTML)
	assert.Equal(t, strings.Replace(a.HTML, "© 2025", "© 2026", 1), c.HTML)
}
