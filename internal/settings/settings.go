// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package settings resolves mdtex configuration from viper (config file,
// MDTEX_* environment variables and bound flags) into a ConversionConfig.
package settings

import (
	"fmt"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mdtex/pkg/types"
)

// Configuration keys. They double as the YAML field names of ConversionConfig.
const (
	KeyOutTex        = "out_tex"
	KeyOutDir        = "out_dir"
	KeyStandalone    = "standalone"
	KeyStrikethrough = "strikethrough"
	KeyTrace         = "trace"
)

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutTex, types.DefaultOutTex)
	v.SetDefault(KeyOutDir, types.DefaultOutDir)
	v.SetDefault(KeyStandalone, false)
	v.SetDefault(KeyStrikethrough, false)
	v.SetDefault(KeyTrace, false)
}

// Resolve reads the effective configuration from v.
func Resolve(v *viper.Viper) types.ConversionConfig {
	return types.ConversionConfig{
		OutTex:        v.GetString(KeyOutTex),
		OutDir:        v.GetString(KeyOutDir),
		Standalone:    v.GetBool(KeyStandalone),
		Strikethrough: v.GetBool(KeyStrikethrough),
		Trace:         v.GetBool(KeyTrace),
	}
}

// YAML renders cfg in the format accepted by mdtex.yaml.
func YAML(cfg types.ConversionConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}
