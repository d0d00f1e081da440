package cmd

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dudaspaulo/gerador-de-walka/internal/audit"
	"github.com/dudaspaulo/gerador-de-walka/internal/config"
	"github.com/dudaspaulo/gerador-de-walka/internal/hotsite"
	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

func TestScaffoldIsClean(t *testing.T) {
	full := scaffold("Walk'a Perdizes", "Walka", "São Paulo/SP", "https://wa.me/5511999990000", "#10E6E1")

	assert.Equal(t, "walk-a-perdizes", full.Slug)
	assert.Empty(t, hotsite.Diagnose(full))
}

func TestCollectJobsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perdizes.yaml")
	require.NoError(t, project.SaveFile(path, scaffold("Perdizes", "", "", "", "#000")))

	jobs, err := collectJobs(context.Background(), nil, []string{path}, "", false)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, path, jobs[0].source)
	assert.Equal(t, "Perdizes", jobs[0].full.Name)
}

func TestCollectJobsFromStore(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	database, store, err := openStore(cfg)
	require.NoError(t, err)
	defer database.Close()
	_, err = store.Create(context.Background(), *scaffold("Perdizes", "", "", "", "#000"))
	require.NoError(t, err)
	_, err = store.Create(context.Background(), *scaffold("Pompeia", "", "", "", "#000"))
	require.NoError(t, err)

	jobs, err := collectJobs(context.Background(), store, nil, "", true)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	_, err = collectJobs(context.Background(), store, nil, "missing", false)
	assert.ErrorIs(t, err, project.ErrNotFound)
}

func TestExportOne(t *testing.T) {
	cfg := config.DefaultConfig()
	gen, err := newGenerator(cfg)
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "out", "perdizes.zip")
	res, err := exportOne(context.Background(), gen, dest, scaffold("Perdizes", "", "", "", "#000"), nil, false)
	require.NoError(t, err)
	assert.Contains(t, res.Entries, hotsite.EntryHTML)

	zr, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer zr.Close()
	assert.Len(t, zr.File, 4)
}

func TestOpenAssetsEmpty(t *testing.T) {
	source, err := openAssets(config.DefaultConfig(), "")
	require.NoError(t, err)
	assert.Nil(t, source)
}

func TestExportOnePreview(t *testing.T) {
	gen, err := newGenerator(config.DefaultConfig())
	require.NoError(t, err)

	out := t.TempDir()
	_, err = exportOne(context.Background(), gen, filepath.Join(out, "perdizes.zip"), scaffold("Perdizes", "", "", "", "#000"), nil, true)
	require.NoError(t, err)

	for _, name := range []string{"index.html", "css/style.css", "js/script.js"} {
		_, err := os.Stat(filepath.Join(out, "perdizes", filepath.FromSlash(name)))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(out, "perdizes.zip"))
	assert.NoError(t, err)
}

func TestRecordActivity(t *testing.T) {
	t.Setenv("USER", "corretor")
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	database, _, err := openStore(cfg)
	require.NoError(t, err)
	defer database.Close()

	recordActivity(context.Background(), database, zap.NewNop(), audit.Entry{
		Action:    audit.ActionHotsiteExported,
		ProjectID: "p-1",
		Summary:   "perdizes.zip",
	})

	entries, err := audit.NewStore(database).Query(context.Background(), audit.QueryFilter{ProjectID: "p-1"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ActorCLI, entries[0].ActorType)
	assert.Equal(t, "corretor", entries[0].ActorID)
}
