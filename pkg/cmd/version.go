// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"strings"

	"carvel.dev/mdbook-variables/pkg/cmd/ui"
	"carvel.dev/mdbook-variables/pkg/experiments"
	"carvel.dev/mdbook-variables/pkg/preprocessor"
	"carvel.dev/mdbook-variables/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct{}

func NewVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func NewVersionCmd(o *VersionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run(ui.NewTTY(false)) },
	}
	return cmd
}

func (o *VersionOptions) Run(ui ui.UI) error {
	ui.Printf("mdbook-variables version %s\n", version.Version)
	ui.Printf("supported mdBook versions: %s\n", preprocessor.SupportedMdbookVersions)

	if enabled := experiments.GetEnabled(); len(enabled) > 0 {
		ui.Printf("enabled experiments: %s\n", strings.Join(enabled, ", "))
	}

	return nil
}
