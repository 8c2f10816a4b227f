// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mdtex CLI, which converts a small
// Markdown subset into LaTeX.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/mdtex/internal/latex"
	"github.com/pdiddy/mdtex/internal/settings"
)

// version is set at build time via ldflags.
var version = "dev"

// exitUnsupported is the exit status when a document uses a construct that
// has no LaTeX mapping.
const exitUnsupported = 2

// rootCmd converts a single file; subcommands cover batch runs and tooling.
var rootCmd = &cobra.Command{
	Use:   "mdtex --in-markdown <file> [--out-tex <file>]",
	Short: "Write papers and notes in simple Markdown, get LaTeX",
	Long: `mdtex converts a restricted Markdown subset into LaTeX: paragraphs,
headings (levels 1-3), lists, bold text, links, tables, code blocks and
inline code. Any other construct stops the conversion with an error that
names it; the output written up to that point is kept.

Settings can come from flags, from mdtex.yaml (current directory or
~/.config/mdtex/), or from MDTEX_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !viper.GetBool(settings.KeyTrace) {
			return nil
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating trace logger: %w", err)
		}
		latex.SetLogger(l)
		return nil
	},
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)
	settings.SetDefaults(viper.GetViper())

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./mdtex.yaml or ~/.config/mdtex/mdtex.yaml)")
	flags.Bool("standalone", false, "wrap the output in a compilable document with a preamble")
	flags.Bool("strikethrough", false, "render ~~text~~ as \\sout{text} instead of rejecting it")
	flags.Bool("trace", false, "log every parse event to stderr")

	_ = viper.BindPFlag(settings.KeyStandalone, flags.Lookup("standalone"))
	_ = viper.BindPFlag(settings.KeyStrikethrough, flags.Lookup("strikethrough"))
	_ = viper.BindPFlag(settings.KeyTrace, flags.Lookup("trace"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mdtex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mdtex"))
		}
	}

	viper.SetEnvPrefix("MDTEX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	err := rootCmd.Execute()
	_ = latex.Logger().Sync()
	if err != nil {
		if errors.Is(err, latex.ErrUnsupported) {
			os.Exit(exitUnsupported)
		}
		os.Exit(1)
	}
}
