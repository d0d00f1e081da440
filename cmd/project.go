package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dudaspaulo/gerador-de-walka/internal/audit"
	"github.com/dudaspaulo/gerador-de-walka/internal/hotsite"
	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"projects"},
	Short:   "Manage projects stored in the local database",
	Long:    `Import, list, show and remove the projects walka keeps in its SQLite database.`,
}

var projectImportCmd = &cobra.Command{
	Use:   "import <file.yaml>...",
	Short: "Import project files into the database",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProjectImport,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored projects",
	RunE:  runProjectList,
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored project as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

var projectRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a stored project and its collections",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectRemove,
}

func init() {
	projectShowCmd.Flags().String("out", "", "write the project to this YAML file instead of stdout")

	projectCmd.AddCommand(projectImportCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectRemoveCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	database, store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := context.Background()
	for _, path := range args {
		full, err := project.LoadFile(path)
		if err != nil {
			return err
		}
		for _, w := range hotsite.Diagnose(full) {
			logger.Warn(w.Message, zap.String("file", path), zap.String("kind", string(w.Kind)), zap.String("item", w.Item))
		}
		created, err := store.Create(ctx, *full)
		if err != nil {
			return fmt.Errorf("importing %s: %w", path, err)
		}
		recordActivity(ctx, database, logger, audit.Entry{
			Action:    audit.ActionProjectCreated,
			ProjectID: created.ID,
			Summary:   created.Name,
			Detail:    path,
		})
		fmt.Printf("Imported %q as %s\n", created.Name, created.ID)
	}
	return nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	database, store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	projects, err := store.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing projects: %w", err)
	}

	if len(projects) == 0 {
		fmt.Println("No projects stored. Use `walka project import` to add one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSLUG\tSTATUS\tCITY\tCREATED\tNAME")
	for _, p := range projects {
		city := p.CityState
		if city == "" {
			city = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Slug, p.Status, city, p.CreatedAt.Format("2006-01-02 15:04"), p.Name)
	}
	w.Flush()

	return nil
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	database, store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	full, err := store.GetFull(context.Background(), args[0])
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return fmt.Errorf("project %q not found", args[0])
		}
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out != "" {
		if err := project.SaveFile(out, full); err != nil {
			return err
		}
		fmt.Printf("Project written to %s\n", out)
		return nil
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(full)
}

func runProjectRemove(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	database, store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := context.Background()
	if err := store.Delete(ctx, args[0]); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return fmt.Errorf("project %q not found", args[0])
		}
		return fmt.Errorf("removing project: %w", err)
	}
	recordActivity(ctx, database, logger, audit.Entry{Action: audit.ActionProjectDeleted, ProjectID: args[0]})

	fmt.Printf("Project %s removed\n", args[0])
	return nil
}
