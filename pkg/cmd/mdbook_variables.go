// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"io"
	"os"

	"carvel.dev/mdbook-variables/pkg/cmd/ui"
	"carvel.dev/mdbook-variables/pkg/config"
	"carvel.dev/mdbook-variables/pkg/experiments"
	"carvel.dev/mdbook-variables/pkg/preprocessor"
	"carvel.dev/mdbook-variables/pkg/substitute"
	"carvel.dev/mdbook-variables/pkg/version"
	"carvel.dev/mdbook-variables/pkg/walk"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

// acceptsArgsAnnotation marks commands that take positional arguments.
const acceptsArgsAnnotation = "mdbook-variables/accepts-args"

type PreprocessOptions struct {
	ConfigKey       string
	ExactDelimiters bool
	Parallel        bool
	Debug           bool

	VariablesFlags VariablesFlags
}

func NewPreprocessOptions() *PreprocessOptions {
	return &PreprocessOptions{ConfigKey: config.DefaultKey}
}

func NewDefaultMdbookVariablesCmd() *cobra.Command {
	return NewMdbookVariablesCmd(NewPreprocessOptions())
}

func NewMdbookVariablesCmd(o *PreprocessOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mdbook-variables",
		Version: version.Version,
		Short:   "mdbook-variables substitutes ${{name}} placeholders in mdBook chapters",
		Long: `mdbook-variables is an mdBook preprocessor that substitutes ${{name}} placeholders
in chapters with values from the [variables] table of book.toml.

Without a subcommand, reads [context, book] JSON from stdin and writes the book to stdout.

Unknown variables are replaced with UNKNOWN VARIABLE 'name'.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return o.Run(ui.NewTTY(o.Debug), os.Stdin)
		},
	}
	cmd.Flags().StringVar(&o.ConfigKey, "config-key", o.ConfigKey, "Book configuration key holding the variables table (dotted, eg preprocessor.variables.variables)")
	cmd.Flags().BoolVar(&o.ExactDelimiters, "exact-delimiters", false, "Only consume the '}}' closing each placeholder")
	cmd.Flags().BoolVar(&o.Parallel, "parallel", false, "Process top-level chapters concurrently")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	o.VariablesFlags.Set(cmd)

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewSupportsCmd(NewSupportsOptions()))
	cmd.AddCommand(NewSubstituteCmd(NewSubstituteOptions()))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		disallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}

func (o *PreprocessOptions) Run(ui ui.UI, in io.Reader) error {
	overrides, err := o.VariablesFlags.Table(o.ConfigKey)
	if err != nil {
		return err
	}

	opts := preprocessor.Opts{
		ConfigKey:  o.ConfigKey,
		Overrides:  overrides,
		Substitute: substitute.Opts{ExactDelimiters: o.ExactDelimiters || experiments.IsExactDelimitersEnabled()},
		Walk:       walk.Opts{Parallel: o.Parallel},
	}

	ctx, b, err := preprocessor.ReadInput(in)
	if err != nil {
		return err
	}

	_, err = preprocessor.NewPreprocessor(opts, ui).Run(ctx, b)
	if err != nil {
		return err
	}

	return preprocessor.WriteOutput(ui.OutputWriter(), b)
}

func disallowExtraArgs(cmd *cobra.Command) {
	if _, accepts := cmd.Annotations[acceptsArgsAnnotation]; accepts {
		return
	}
	cobrautil.DisallowExtraArgs(cmd)
}
