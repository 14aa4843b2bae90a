/*
Copyright © 2025 Katie Mulliken <katie@mulliken.net>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/seckatie/gbookmarks2json/internal/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gbookmarks2json",
	Short: "Convert a Google bookmarks export into JSON grouped by folder",
	Long: `gbookmarks2json reads a bookmarks HTML export (the Netscape bookmark
format written by Google and Chrome) and writes a JSON document with one
entry per top-level folder. Each entry lists the folder's bookmarks in
document order, with add_date timestamps converted to ISO-8601 dates.

Links inside nested folders are listed under their top-level folder. Use
--direct-only to keep only the links placed directly in each folder.

Example:

	gbookmarks2json --input data/GoogleBookmarks.html --output data/result.json`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConvert(); err != nil {
			log.Fatalf("Conversion failed: %v", err)
		}
	},
}

// runConvert is the main function for the root command.
func runConvert() error {
	format := viper.GetString("format")
	if err := validateFormat(format); err != nil {
		return err
	}

	opts := core.ConvertOptions{
		InputPath:  viper.GetString("input"),
		OutputPath: viper.GetString("output"),
		Format:     format,
		Extract:    extractOptions(),
	}

	res, err := core.Convert(opts)
	if err != nil {
		return err
	}
	warnNested(res.Nested)

	log.Printf("Converted %d group(s) with %d bookmark(s) into %s", len(res.Groups), res.Bookmarks, opts.OutputPath)
	return nil
}

func extractOptions() core.ExtractOptions {
	return core.ExtractOptions{DirectOnly: viper.GetBool("direct-only")}
}

func validateFormat(format string) error {
	switch format {
	case core.FormatJSON, core.FormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

// warnNested flags folders whose links were merged into their parent group.
func warnNested(nested []core.NestedFolder) {
	for _, n := range nested {
		log.Printf("Warning: folder %q contains nested folder(s) %s; their bookmarks are listed under %q (use --direct-only to skip them)",
			n.GroupTitle, quoteAll(n.Folders), n.GroupTitle)
	}
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gbookmarks2json.yaml or ~/.config/gbookmarks2json/gbookmarks2json.yaml)")
	rootCmd.PersistentFlags().StringP("input", "i", core.DefaultInputPath, "Path to the bookmarks HTML export")
	rootCmd.PersistentFlags().Bool("direct-only", false, "Only keep links placed directly in each top-level folder")

	rootCmd.Flags().StringP("output", "o", core.DefaultOutputPath, "Path of the resulting file")
	rootCmd.Flags().StringP("format", "f", core.FormatJSON, "Output format: json or yaml")

	bindFlags(rootCmd.PersistentFlags(), "input", "direct-only")
	bindFlags(rootCmd.Flags(), "output", "format")
}
