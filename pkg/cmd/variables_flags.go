// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"carvel.dev/mdbook-variables/pkg/config"
	"carvel.dev/mdbook-variables/pkg/variables"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type VariablesFlags struct {
	EnvPrefixes []string
	Files       []string
	KVs         []string
}

func (s *VariablesFlags) Set(cmd *cobra.Command) {
	s.SetOnFlagSet(cmd.Flags())
}

func (s *VariablesFlags) SetOnFlagSet(fs *pflag.FlagSet) {
	fs.StringArrayVar(&s.EnvPrefixes, "vars-env", nil, "Extract variables from prefixed env vars (format: PREFIX for PREFIX_name=value) (can be specified multiple times)")
	fs.StringArrayVar(&s.Files, "vars-file", nil, "Read variables from a YAML, JSON or TOML file (can be specified multiple times)")
	fs.StringArrayVarP(&s.KVs, "var", "v", nil, "Set variable to given string (format: name=value) (can be specified multiple times)")
}

// Table combines all variable flags. Env vars come first, then files,
// then key=value pairs; later sources win.
func (s *VariablesFlags) Table(configKey string) (*variables.Table, error) {
	result := variables.NewTable()

	for _, prefix := range s.EnvPrefixes {
		table, err := config.TableFromEnv(prefix, os.Environ())
		if err != nil {
			return nil, fmt.Errorf("Extracting variables from env under prefix '%s': %s", prefix, err)
		}
		result = result.Merge(table)
	}

	for _, path := range s.Files {
		table, err := config.TableFromFile(path, configKey)
		if err != nil {
			return nil, err
		}
		result = result.Merge(table)
	}

	table, err := config.TableFromKVs(s.KVs)
	if err != nil {
		return nil, fmt.Errorf("Extracting variables from KV: %s", err)
	}

	return result.Merge(table), nil
}
