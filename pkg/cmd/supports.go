// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"carvel.dev/mdbook-variables/pkg/cmd/ui"
	"carvel.dev/mdbook-variables/pkg/preprocessor"
	"github.com/spf13/cobra"
)

// UnsupportedRendererError makes the process exit with status 1,
// which is how mdBook learns that a renderer is not supported.
type UnsupportedRendererError struct {
	Renderer string
}

func (e UnsupportedRendererError) Error() string {
	return fmt.Sprintf("Renderer '%s' is not supported", e.Renderer)
}

type SupportsOptions struct {
	Debug bool
}

func NewSupportsOptions() *SupportsOptions {
	return &SupportsOptions{}
}

func NewSupportsCmd(o *SupportsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "supports",
		Short:       "Check whether a renderer is supported (exit status 0 if so, 1 otherwise)",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{acceptsArgsAnnotation: ""},
		RunE:        func(_ *cobra.Command, args []string) error { return o.Run(ui.NewTTY(o.Debug), args[0]) },
	}
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *SupportsOptions) Run(ui ui.UI, renderer string) error {
	supported := preprocessor.NewPreprocessor(preprocessor.Opts{}, ui).SupportsRenderer(renderer)

	ui.Debugf("renderer '%s' supported: %t\n", renderer, supported)

	if !supported {
		return UnsupportedRendererError{renderer}
	}
	return nil
}
