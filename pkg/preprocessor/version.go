// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocessor

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

// SupportedMdbookVersions is the range of mdBook versions whose preprocessor
// protocol this implementation speaks.
const SupportedMdbookVersions = ">= 0.4.0, < 0.5.0"

// CheckVersion reports a warning message when mdbookVersion falls outside
// SupportedMdbookVersions. An empty or unparsable version is not an error;
// it yields a warning too.
func CheckVersion(mdbookVersion string) (string, error) {
	constraints, err := version.NewConstraint(SupportedMdbookVersions)
	if err != nil {
		return "", fmt.Errorf("Parsing supported mdBook versions: %s", err)
	}

	if len(mdbookVersion) == 0 {
		return "mdBook did not report its version", nil
	}

	ver, err := version.NewVersion(mdbookVersion)
	if err != nil {
		return fmt.Sprintf("Unable to parse mdBook version '%s': %s", mdbookVersion, err), nil
	}

	if !constraints.Check(ver) {
		return fmt.Sprintf("mdBook version %s is outside of the supported range (%s)",
			mdbookVersion, SupportedMdbookVersions), nil
	}
	return "", nil
}
