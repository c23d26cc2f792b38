// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package experiments

import (
	"os"
	"strings"
)

/*
Registering a New Experiment

1. add its name to `all` and implement a getter `Is<experiment-name>Enabled()`

2. circuit-break functionality behind that check:

    if experiments.Is<experiment-name>Enabled() {
        ...
    }

3. in tests, enable experiment(s) by setting the environment variable:

    experiments.ResetForTesting()
    t.Setenv(experiments.Env, "<experiment-name>,<other-experiment-name>,...")
*/

// Env is the OS environment variable with comma-separated names of experiments to enable.
const Env = "MDBOOKVARSEXPERIMENTS"

const exactDelimiters = "exact-delimiters"

var all = []string{exactDelimiters}

// GetEnabled reports the name of all enabled experiments.
//
// An experiment is enabled by including its name in the OS environment variable named Env.
func GetEnabled() []string {
	experiments := []string{}
	for _, name := range all {
		if isSet(name) {
			experiments = append(experiments, name)
		}
	}
	return experiments
}

// IsExactDelimitersEnabled reports whether placeholders should consume only
// their own closing delimiter (instead of every "}}" that follows them).
func IsExactDelimitersEnabled() bool {
	return isSet(exactDelimiters)
}

func isSet(flag string) bool {
	for _, setting := range getSettings() {
		if setting == flag {
			return true
		}
	}
	return false
}

func getSettings() []string {
	if settings == nil {
		for _, setting := range strings.Split(os.Getenv(Env), ",") {
			settings = append(settings, strings.ToLower(strings.TrimSpace(setting)))
		}
	}
	return settings
}

// settings cached copy of name of experiments that are enabled (cleaned up).
var settings []string

// ResetForTesting clears the experiment flag settings, forcing reload from the Env on next use.
//
// This is for testing purposes only.
func ResetForTesting() {
	settings = nil
}
