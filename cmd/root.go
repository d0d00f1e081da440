package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "walka",
	Short: "Hotsite generator for real-estate launches",
	Long: `walka turns a real-estate project (gallery, floor plans, 360 tours,
prices and FAQ) into a ready-to-publish hotsite: one HTML page, its
stylesheet and script, packed into a zip together with the images it uses.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".walka.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
