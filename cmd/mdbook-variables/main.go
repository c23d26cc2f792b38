// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"carvel.dev/mdbook-variables/pkg/cmd"
	uierrs "github.com/cppforlife/go-cli-ui/errors"
)

func main() {
	command := cmd.NewDefaultMdbookVariablesCmd()

	err := command.Execute()
	if err != nil {
		// mdBook only looks at the exit status of "supports"
		var unsupportedErr cmd.UnsupportedRendererError
		if errors.As(err, &unsupportedErr) {
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "mdbook-variables: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
