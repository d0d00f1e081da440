package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dudaspaulo/gerador-de-walka/internal/db"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Studio Bela Vista", "studio-bela-vista"},
		{"Edifício São João", "edificio-sao-joao"},
		{"  --Walk'a  Pinheiros!! ", "walk-a-pinheiros"},
		{"ÁGUA BRANCA 360", "agua-branca-360"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestStyleLabel(t *testing.T) {
	primary, secondary := Plant{Style: "ECO"}.StyleLabel()
	assert.Equal(t, "ECO", primary)
	assert.Empty(t, secondary)

	primary, secondary = Tour{StyleCategory: "SLIM"}.StyleLabel()
	assert.Empty(t, primary)
	assert.Equal(t, "SLIM", secondary)
}

const sampleYAML = `name: Studio Bela Vista
brand_color: "#10E6E1"
whatsapp_link: https://wa.me/5511999998888
points_of_interest: |
  Metrô Paulista - 5 min
  Shopping - 10 min
gallery:
  - image_url: a.jpg
    display_order: 2
  - image_url: b.jpg
    display_order: 1
plants:
  - title: Studio ECO
    style: ECO
    package: BASIC
    image_url: images/eco-basic.png
tours:
  - label: Decorado
    iframe_url: https://tour.example/eco
    style_category: ECO
prices:
  - title: Pacote Standard
    price_value: R$ 60.000,00
    features: |
      Mobília completa
faqs:
  - question: Como funciona?
    answer: Assim.
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	full, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Studio Bela Vista", full.Name)
	assert.Equal(t, "studio-bela-vista", full.Slug, "slug derived from name")
	assert.Equal(t, StatusDraft, full.Status)
	assert.Equal(t, "#10E6E1", full.BrandColor)
	assert.Len(t, full.Gallery, 2)
	assert.Len(t, full.Plants, 1)
	assert.Equal(t, "BASIC", full.Plants[0].Package)
	assert.Len(t, full.Tours, 1)
	assert.Len(t, full.Prices, 1)
	assert.Len(t, full.Faqs, 1)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	in := &Full{Project: Project{Name: "Vila Nova", Slug: "vila-nova", Status: StatusPublished}}
	in.Faqs = []Faq{{Question: "Q", Answer: "A"}}

	require.NoError(t, SaveFile(path, in))
	out, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "vila-nova", out.Slug)
	assert.Equal(t, StatusPublished, out.Status)
	require.Len(t, out.Faqs, 1)
	assert.Equal(t, "A", out.Faqs[0].Answer)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestStoreCreateAndGetFull(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, Full{
		Project: Project{Name: "Studio Bela Vista", BrandColor: "#f47b6b"},
		Gallery: []GalleryItem{
			{ImageURL: "third.jpg", DisplayOrder: 3},
			{ImageURL: "first.jpg", DisplayOrder: 1},
			{ImageURL: "second.jpg", DisplayOrder: 2},
		},
		Plants: []Plant{{Style: "URBAN", Package: "DESIGN"}, {Style: "ECO", Package: "BASIC"}},
		Tours:  []Tour{{Label: "A", StyleCategory: "ECO"}},
		Prices: []Price{{Title: "One"}, {Title: "Two"}, {Title: "Three"}},
		Faqs:   []Faq{{Question: "Q1"}, {Question: "Q2"}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "studio-bela-vista", created.Slug)

	full, err := store.GetFull(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "#f47b6b", full.BrandColor)
	require.Len(t, full.Gallery, 3)
	assert.Equal(t, "first.jpg", full.Gallery[0].ImageURL)
	assert.Equal(t, "second.jpg", full.Gallery[1].ImageURL)
	assert.Equal(t, "third.jpg", full.Gallery[2].ImageURL)

	require.Len(t, full.Plants, 2)
	assert.Equal(t, "URBAN", full.Plants[0].Style, "insertion order preserved")
	assert.Equal(t, created.ID, full.Plants[0].ProjectID)

	require.Len(t, full.Prices, 3)
	assert.Equal(t, "Three", full.Prices[2].Title)
	require.Len(t, full.Faqs, 2)
	assert.Equal(t, "Q2", full.Faqs[1].Question)
}

func TestStoreCreateRequiresName(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Create(context.Background(), Full{})
	assert.Error(t, err)
}

func TestStoreGetNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetFull(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreListAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a, err := store.Create(ctx, Full{Project: Project{Name: "A"}, Faqs: []Faq{{Question: "Q"}}})
	require.NoError(t, err)
	_, err = store.Create(ctx, Full{Project: Project{Name: "B"}})
	require.NoError(t, err)

	projects, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	require.NoError(t, store.Delete(ctx, a.ID))
	assert.ErrorIs(t, store.Delete(ctx, a.ID), ErrNotFound)

	projects, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "B", projects[0].Name)
}
