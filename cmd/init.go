package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dudaspaulo/gerador-de-walka/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a walka configuration file",
	Long: `Writes .walka.yml with default settings. With --interactive a wizard asks
for the output directory, the images directory and the highlighted price card.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolP("interactive", "i", false, "run the configuration wizard")
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(cfgFile); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive {
		if _, err := config.RunWizard(cfgFile); err != nil {
			return err
		}
		return nil
	}

	if err := config.DefaultConfig().Save(cfgFile); err != nil {
		return err
	}
	fmt.Printf("Configuration written to %s\n", cfgFile)
	return nil
}
