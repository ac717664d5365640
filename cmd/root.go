package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Bilingual Khmer/English portfolio server",
	Long: `Serves a single-page bilingual portfolio. Theme, language, scroll and
section animations are coordinated per visitor over a websocket, and the
light/dark choice is remembered across visits.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
}
