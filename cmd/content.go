package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the page content",
}

var contentCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a content file and report missing translations",
	Long: `Loads a content file (or the one named in the config, or the built-in
content) and reports structural problems and entries missing a Khmer or
English translation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else if cfg, err := config.Load(cfgFile); err == nil {
			path = cfg.ContentFile
		}

		c, err := content.Load(path)
		if err != nil {
			return err
		}
		if err := c.Check(); err != nil {
			return err
		}

		source := path
		if source == "" {
			source = "built-in content"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, every entry translated\n", source, len(c.Catalog()))
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentCheckCmd)
	rootCmd.AddCommand(contentCmd)
}
