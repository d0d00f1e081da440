package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dudaspaulo/gerador-de-walka/internal/audit"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the project activity log",
	Long: `Lists imports, deletions and exports recorded by the CLI and the HTTP API,
newest first. --prune removes entries older than the given age.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("project", "", "only entries for this project id")
	historyCmd.Flags().String("action", "", "only entries with this action (project_created, project_deleted, hotsite_exported)")
	historyCmd.Flags().Int("limit", 20, "maximum number of entries")
	historyCmd.Flags().Duration("prune", 0, "delete entries older than this age (e.g. 720h) instead of listing")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	database, _, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := context.Background()
	activity := audit.NewStore(database)

	if prune, _ := cmd.Flags().GetDuration("prune"); prune > 0 {
		n, err := activity.DeleteBefore(ctx, time.Now().Add(-prune))
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d entries\n", n)
		return nil
	}

	filter := audit.QueryFilter{}
	filter.ProjectID, _ = cmd.Flags().GetString("project")
	action, _ := cmd.Flags().GetString("action")
	filter.Action = audit.Action(action)
	filter.Limit, _ = cmd.Flags().GetInt("limit")

	entries, err := activity.Query(ctx, filter)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No activity recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tACTOR\tACTION\tPROJECT\tMISSING\tSUMMARY")
	for _, e := range entries {
		actor := string(e.ActorType)
		if e.ActorID != "" {
			actor += ":" + e.ActorID
		}
		project := e.ProjectID
		if project == "" {
			project = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04"), actor, e.Action, project, len(e.MissingAssets), e.Summary)
	}
	w.Flush()

	return nil
}
