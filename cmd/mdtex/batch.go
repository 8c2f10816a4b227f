// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdtex/internal/convert"
	"github.com/pdiddy/mdtex/internal/settings"
	"github.com/pdiddy/mdtex/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Convert several Markdown files into a directory of .tex files",
	Long: `Batch converts each Markdown file to <out-dir>/<name>.tex, printing one
status line per file and a summary. A failing file does not stop the run;
the command exits non-zero if any file failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := settings.Resolve(viper.GetViper())
		result := convert.ConvertBatch(cfg, args, cfg.OutDir, os.Stdout)
		if result.HasFailures() {
			return fmt.Errorf("%d file(s) failed conversion", result.Failed)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().String("out-dir", types.DefaultOutDir, "directory for generated .tex files")
	_ = viper.BindPFlag(settings.KeyOutDir, batchCmd.Flags().Lookup("out-dir"))

	rootCmd.AddCommand(batchCmd)
}
