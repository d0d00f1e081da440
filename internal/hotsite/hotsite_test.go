package hotsite

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

func TestActiveStyles(t *testing.T) {
	plants := []project.Plant{{Style: "ECO"}, {Style: "SLIM"}, {Style: "ECO"}, {Style: ""}, {Style: "URBAN"}}
	assert.Equal(t, []string{"ECO", "SLIM", "URBAN"}, ActiveStyles(plants))

	tours := []project.Tour{{StyleCategory: "SLIM"}, {StyleCategory: "Slim"}, {StyleCategory: "SLIM"}}
	assert.Equal(t, []string{"SLIM", "Slim"}, ActiveStyles(tours), "labels compare case-sensitively")

	assert.Empty(t, ActiveStyles([]project.Plant(nil)))
}

func TestParseStyleAndPackage(t *testing.T) {
	assert.Equal(t, StyleEco, ParseStyle("eco"))
	assert.Equal(t, StyleUrban, ParseStyle(" Urban "))
	assert.Equal(t, StyleUnrecognized, ParseStyle("LUXO"))

	assert.Equal(t, PackageDesign, ParsePackage("design"))
	assert.Equal(t, PackageUnrecognized, ParsePackage("premium"))

	assert.Equal(t, "essential", PackageEssential.Key())
	assert.Equal(t, "Essential", PackageEssential.Title())
	assert.Equal(t, "", PackageUnrecognized.Title())
}

func TestImgPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"logo.png", "images/logo.png"},
		{"https://x.com/y.png", "https://x.com/y.png"},
		{"http://x.com/y.png", "http://x.com/y.png"},
		{"images/hero.jpg", "images/hero.jpg"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ImgPath(tt.in), "ImgPath(%q)", tt.in)
	}
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+55 (11) 99999-8888", FormatPhone("https://wa.me/5511999998888"))
	assert.Equal(t, "+55 (11) 99999-8888", FormatPhone("https://wa.me/55 11 99999-8888?text=oi"))
	assert.Equal(t, "1199998888", FormatPhone("https://wa.me/1199998888"))
	assert.Equal(t, "", FormatPhone(""))
}

func TestFallbacks(t *testing.T) {
	p := &project.Project{Name: "Walk'a", HeroSubheadline: "Sub", HeroImageURL: "hero.jpg"}

	assert.Equal(t, "#", CTALink(p))
	assert.Equal(t, "Walk'a", PageTitle(p))
	assert.Equal(t, "Sub", MetaDescription(p))
	assert.Equal(t, "images/hero.jpg", SocialImage(p))
	assert.Equal(t, "favicon.png", FaviconFile(p))
	assert.Equal(t, "apple-touch-icon.png", WebclipFile(p))

	p.WhatsAppLink = "https://wa.me/5511999998888"
	assert.Equal(t, p.WhatsAppLink, CTALink(p))
	p.CTALink = "https://example.com/agenda"
	assert.Equal(t, p.CTALink, CTALink(p))

	p.SEOTitle, p.SEODesc, p.SEOImageURL = "SEO", "Desc", "https://cdn.example/og.png"
	assert.Equal(t, "SEO", PageTitle(p))
	assert.Equal(t, "Desc", MetaDescription(p))
	assert.Equal(t, "https://cdn.example/og.png", SocialImage(p))

	assert.Equal(t, p.CTALink, PriceCTA(project.Price{}, p))
	assert.Equal(t, "https://pay.example", PriceCTA(project.Price{CTALink: "https://pay.example"}, p))
	assert.Equal(t, "Opção", PriceBadge(project.Price{}))
	assert.Equal(t, "Mais vendido", PriceBadge(project.Price{BadgeText: "Mais vendido"}))
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"Metro - 5min", "Shopping - 10min"}, Lines("Metro - 5min\n\nShopping - 10min"))
	assert.Equal(t, []string{"a", "b"}, Lines("  a  \n \t \nb\n"))
	assert.Empty(t, Lines(""))
}

func TestSpecRows(t *testing.T) {
	rows := SpecRows("Área: 25 m²\nHorário: 08:00 às 18:00\nPiscina\n: sem rótulo")
	require.Len(t, rows, 4)
	assert.Equal(t, SpecRow{Label: "Área", Value: "25 m²"}, rows[0])
	assert.Equal(t, SpecRow{Label: "Horário", Value: "08:00 às 18:00"}, rows[1])
	assert.Equal(t, SpecRow{Label: "Piscina", Value: ""}, rows[2])
	assert.Equal(t, ": sem rótulo", rows[3].Label)
}

func TestSplitGallery(t *testing.T) {
	var items []project.GalleryItem
	for i := 7; i >= 1; i-- {
		items = append(items, project.GalleryItem{ImageURL: string(rune('a' + i - 1)), DisplayOrder: i})
	}

	row1, row2 := SplitGallery(items)
	assert.Equal(t, []string{"a", "b", "c", "d"}, imageURLs(row1))
	assert.Equal(t, []string{"e", "f", "g"}, imageURLs(row2))
	assert.Equal(t, "g", items[0].ImageURL, "input is not reordered")

	row1, row2 = SplitGallery(nil)
	assert.Empty(t, row1)
	assert.Empty(t, row2)
}

func TestPlantImageMap(t *testing.T) {
	plants := []project.Plant{
		{Style: "Urban", Package: "Design", ImageURL: "urban-design.png"},
		{Style: "ECO", Package: "BASIC", ImageURL: "eco-basic.png"},
		{Style: "SLIM", Package: "BASIC", ImageURL: "slim-basic.png"},
		{Style: "ECO", Package: "LOFT", ImageURL: "eco-loft.png"},
	}
	m := BuildPlantImageMap([]string{"Urban", "ECO"}, plants)

	img, ok := m.Lookup("urban", "design")
	assert.True(t, ok)
	assert.Equal(t, "urban-design.png", img)

	img, ok = m.Lookup("urban", "standard")
	assert.True(t, ok)
	assert.Empty(t, img)

	_, ok = m.Lookup("slim", "basic")
	assert.False(t, ok, "inactive style is dropped")

	assert.Equal(t, []string{"urban", "eco"}, m.Styles())

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t,
		`{"urban":{"standard":"","basic":"","essential":"","design":"urban-design.png"},`+
			`"eco":{"standard":"","basic":"eco-basic.png","essential":"","design":"","loft":"eco-loft.png"}}`,
		string(raw))
}

func TestDiagnose(t *testing.T) {
	full := &project.Full{
		Plants: []project.Plant{
			{Title: "ok", Style: "ECO", Package: "BASIC", ImageURL: "a.png"},
			{Title: "typo", Style: "ECOO", Package: "BASIC", ImageURL: "b.png"},
			{Title: "pkg", Style: "Eco", Package: "PREMIUM", ImageURL: "c.png"},
			{Title: "bare", Package: "DESIGN"},
		},
		Tours: []project.Tour{
			{Label: "t1", StyleCategory: "SLIM"},
			{Label: "t2", StyleCategory: "MODERN"},
		},
	}

	kinds := make(map[WarningKind]int)
	for _, w := range Diagnose(full) {
		kinds[w.Kind]++
		assert.NotEmpty(t, w.Message)
	}
	assert.Equal(t, 2, kinds[WarnUnknownStyle])
	assert.Equal(t, 1, kinds[WarnUnknownPackage])
	assert.Equal(t, 1, kinds[WarnMissingStyle])
	assert.Equal(t, 1, kinds[WarnMissingImage])
	assert.Equal(t, 1, kinds[WarnStyleCollision], "ECO and Eco share a key")

	assert.Nil(t, Diagnose(nil))
	assert.Empty(t, Diagnose(&project.Full{}))
}
