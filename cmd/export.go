package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dudaspaulo/gerador-de-walka/internal/audit"
	"github.com/dudaspaulo/gerador-de-walka/internal/db"
	"github.com/dudaspaulo/gerador-de-walka/internal/hotsite"
	"github.com/dudaspaulo/gerador-de-walka/internal/progress"
	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

var exportCmd = &cobra.Command{
	Use:   "export [file.yaml]",
	Short: "Generate a hotsite and pack it into a zip archive",
	Long: `Generates index.html, css/style.css and js/script.js for a project and
writes them, with the images they reference, to <slug>.zip in the output
directory. The project comes from a YAML file, from the database (--id), or
every stored project is exported (--all).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("id", "", "export a stored project by id")
	exportCmd.Flags().Bool("all", false, "export every stored project")
	exportCmd.Flags().StringP("out", "o", "", "output directory (overrides config)")
	exportCmd.Flags().String("assets", "", "images directory (overrides config)")
	exportCmd.Flags().Bool("preview", false, "also write the unpacked files to <out>/<slug>/")
	exportCmd.Flags().Bool("strict", false, "fail when the project has label warnings")
	rootCmd.AddCommand(exportCmd)
}

// exportJob is one project to export.
type exportJob struct {
	source string
	full   *project.Full
}

func runExport(cmd *cobra.Command, args []string) error {
	start := time.Now()

	id, _ := cmd.Flags().GetString("id")
	all, _ := cmd.Flags().GetBool("all")
	sources := 0
	for _, set := range []bool{len(args) == 1, id != "", all} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("specify exactly one of a project file, --id or --all")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.OutputDir = out
	}
	assetsDir, _ := cmd.Flags().GetString("assets")
	strict, _ := cmd.Flags().GetBool("strict")
	preview, _ := cmd.Flags().GetBool("preview")

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stored projects also get their exports recorded in the activity log.
	var database *db.DB
	var store *project.Store
	if len(args) == 0 {
		database, store, err = openStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()
	}

	jobs, err := collectJobs(ctx, store, args, id, all)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Println("No projects to export.")
		return nil
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	source, err := openAssets(cfg, assetsDir)
	if err != nil {
		return err
	}
	if source == nil {
		logger.Debug("no assets directory configured; archives will not contain images")
	}

	var reporter progress.Reporter
	if len(jobs) > 1 {
		reporter = progress.NewReporter()
		reporter.Start(len(jobs))
	}

	var exported, missing int
	for i, job := range jobs {
		warnings := hotsite.Diagnose(job.full)
		for _, w := range warnings {
			logger.Warn(w.Message,
				zap.String("project", job.source),
				zap.String("kind", string(w.Kind)),
				zap.String("item", w.Item),
				zap.String("label", w.Label),
			)
		}
		if strict && len(warnings) > 0 {
			if reporter != nil {
				reporter.Finish()
			}
			return fmt.Errorf("%s: %d warnings (--strict)", job.source, len(warnings))
		}

		dest := filepath.Join(cfg.OutputDir, hotsite.ArchiveName(job.full, cfg.DefaultArchive))
		res, err := exportOne(ctx, gen, dest, job.full, source, preview)
		if err != nil {
			if reporter != nil {
				reporter.Finish()
			}
			return fmt.Errorf("exporting %s: %w", job.source, err)
		}

		exported++
		missing += len(res.Missing)
		logger.Info("hotsite exported",
			zap.String("project", job.source),
			zap.String("archive", dest),
			zap.Int("entries", len(res.Entries)),
			zap.Int("bundled", len(res.Bundled)),
		)
		if len(res.Missing) > 0 {
			logger.Warn("referenced images not bundled", zap.String("project", job.source), zap.Strings("missing", res.Missing))
		}
		if database != nil {
			recordActivity(ctx, database, logger, audit.Entry{
				Action:        audit.ActionHotsiteExported,
				ProjectID:     job.full.ID,
				Summary:       filepath.Base(dest),
				Detail:        dest,
				MissingAssets: res.Missing,
			})
		}
		if reporter != nil {
			reporter.Update(i+1, filepath.Base(dest))
		} else {
			fmt.Printf("Hotsite written to %s\n", dest)
		}
	}
	if reporter != nil {
		reporter.Finish()
	}

	if len(jobs) > 1 || verbose {
		fmt.Println()
		fmt.Println("Export complete!")
		fmt.Printf("  Archives:        %d\n", exported)
		fmt.Printf("  Missing images:  %d\n", missing)
		fmt.Printf("  Duration:        %s\n", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func exportOne(ctx context.Context, gen *hotsite.Generator, dest string, full *project.Full, source hotsite.AssetSource, preview bool) (*hotsite.Result, error) {
	artifacts, err := gen.Generate(full)
	if err != nil {
		return nil, err
	}
	if preview {
		dir := strings.TrimSuffix(dest, filepath.Ext(dest))
		if err := writePreview(dir, artifacts); err != nil {
			return nil, err
		}
	}
	return hotsite.SaveArchive(ctx, dest, artifacts, full, source)
}

// writePreview writes the generated files unpacked, in the archive layout.
// Images are not copied; open the page next to the assets directory or use
// `walka serve` for a complete preview.
func writePreview(dir string, a hotsite.Artifacts) error {
	files := map[string]string{
		hotsite.EntryHTML: a.HTML,
		hotsite.EntryCSS:  a.CSS,
		hotsite.EntryJS:   a.JS,
	}
	for name, body := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("creating preview dir: %w", err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			return fmt.Errorf("writing preview %s: %w", name, err)
		}
	}
	return nil
}

// collectJobs loads the project file named in args, or the stored project
// id, or every stored project.
func collectJobs(ctx context.Context, store *project.Store, args []string, id string, all bool) ([]exportJob, error) {
	if len(args) == 1 {
		full, err := project.LoadFile(args[0])
		if err != nil {
			return nil, err
		}
		return []exportJob{{source: args[0], full: full}}, nil
	}
	if store == nil {
		return nil, fmt.Errorf("no project store")
	}

	if id != "" {
		full, err := store.GetFull(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("loading project %s: %w", id, err)
		}
		return []exportJob{{source: id, full: full}}, nil
	}

	projects, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	jobs := make([]exportJob, 0, len(projects))
	for _, p := range projects {
		full, err := store.GetFull(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("loading project %s: %w", p.ID, err)
		}
		jobs = append(jobs, exportJob{source: p.Slug, full: full})
	}
	return jobs, nil
}
