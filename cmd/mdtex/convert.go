// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdtex/internal/convert"
	"github.com/pdiddy/mdtex/internal/settings"
	"github.com/pdiddy/mdtex/pkg/types"
)

func runConvert(cmd *cobra.Command, args []string) error {
	inPath, _ := cmd.Flags().GetString("in-markdown")
	cfg := settings.Resolve(viper.GetViper())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "The markdown file passed is: %s\n", inPath)

	// A missing input is reported by ConvertFile and is not an error.
	_, err := convert.ConvertFile(cfg, inPath, cfg.OutTex, out)
	return err
}

func init() {
	rootCmd.Flags().String("in-markdown", "", "input markdown file path")
	rootCmd.Flags().String("out-tex", types.DefaultOutTex, "output tex file path")
	_ = rootCmd.MarkFlagRequired("in-markdown")

	_ = viper.BindPFlag(settings.KeyOutTex, rootCmd.Flags().Lookup("out-tex"))
}
