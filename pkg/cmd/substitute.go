// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"carvel.dev/mdbook-variables/pkg/cmd/ui"
	"carvel.dev/mdbook-variables/pkg/config"
	"carvel.dev/mdbook-variables/pkg/experiments"
	"carvel.dev/mdbook-variables/pkg/files"
	"carvel.dev/mdbook-variables/pkg/preprocessor"
	"carvel.dev/mdbook-variables/pkg/substitute"
	"carvel.dev/mdbook-variables/pkg/variables"
	"github.com/k14s/difflib"
	"github.com/spf13/cobra"
)

type SubstituteOptions struct {
	Files           []string
	BookTOML        string
	ConfigKey       string
	OutputDirectory string
	ExactDelimiters bool
	Diff            bool
	Inspect         bool
	Debug           bool

	VariablesFlags VariablesFlags
}

func NewSubstituteOptions() *SubstituteOptions {
	return &SubstituteOptions{ConfigKey: config.DefaultKey}
}

func NewSubstituteCmd(o *SubstituteOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "substitute",
		Aliases: []string{"s", "sub"},
		Short:   "Substitute variables in markdown files outside of mdBook",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run(ui.NewTTY(o.Debug)) },
	}
	cmd.Flags().StringArrayVarP(&o.Files, "file", "f", nil, "File or directory of markdown files (ie local path, -) (can be specified multiple times)")
	cmd.Flags().StringVar(&o.BookTOML, "book-toml", "", "Read variables from book configuration file (eg book.toml)")
	cmd.Flags().StringVar(&o.ConfigKey, "config-key", o.ConfigKey, "Key holding the variables table within TOML files (dotted)")
	cmd.Flags().StringVarP(&o.OutputDirectory, "output-directory", "o", "", "Write processed files into directory (directory contents are replaced)")
	cmd.Flags().BoolVar(&o.ExactDelimiters, "exact-delimiters", false, "Only consume the '}}' closing each placeholder")
	cmd.Flags().BoolVar(&o.Diff, "diff", false, "Show changes instead of output")
	cmd.Flags().BoolVar(&o.Inspect, "inspect", false, "Print effective variables as YAML and exit")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	o.VariablesFlags.Set(cmd)
	return cmd
}

func (o *SubstituteOptions) Run(ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	table, err := o.table()
	if err != nil {
		return err
	}

	if o.Inspect {
		out, err := config.MarshalYAML(table)
		if err != nil {
			return err
		}
		ui.Printf("%s", out)
		return nil
	}

	err = preprocessor.DumpTable(ui, table)
	if err != nil {
		return err
	}

	if len(o.Files) == 0 {
		return fmt.Errorf("Expected at least one file (use -f)")
	}

	err = o.checkOutputDirectory()
	if err != nil {
		return err
	}

	filesToProcess, err := files.NewFiles(o.Files)
	if err != nil {
		return err
	}

	engine := substitute.NewEngine(substitute.Opts{
		ExactDelimiters: o.ExactDelimiters || experiments.IsExactDelimitersEnabled(),
	})

	var (
		outputs []files.OutputFile
		total   substitute.Report
	)

	for _, file := range filesToProcess {
		data, err := file.Bytes()
		if err != nil {
			return fmt.Errorf("Reading %s: %s", file.Description(), err)
		}

		result, report := engine.SubstituteWithReport(table, string(data))
		total.Add(report)

		ui.Debugf("%s: %d resolved, %d unknown\n", file.RelativePath(), report.Resolved, len(report.Unknown))

		switch {
		case o.Diff:
			o.printDiff(ui, file.RelativePath(), string(data), result)
		case len(o.OutputDirectory) > 0:
			outputs = append(outputs, files.NewOutputFile(file.RelativePath(), []byte(result)))
		default:
			ui.Printf("%s", result)
		}
	}

	if len(total.Unknown) > 0 {
		ui.Warnf("Unknown variable(s): %s\n", preprocessor.DescribeUnknown(total.Unknown, table))
	}

	if len(o.OutputDirectory) > 0 && !o.Diff {
		return files.NewOutputDirectory(o.OutputDirectory, outputs, ui).Write()
	}
	return nil
}

func (o *SubstituteOptions) table() (*variables.Table, error) {
	result := variables.NewTable()

	if len(o.BookTOML) > 0 {
		table, found, err := config.TableFromTOMLFile(o.BookTOML, o.ConfigKey)
		if err != nil {
			return nil, err
		}
		if found {
			result = table
		}
	}

	overrides, err := o.VariablesFlags.Table(o.ConfigKey)
	if err != nil {
		return nil, err
	}

	return result.Merge(overrides), nil
}

// checkOutputDirectory rejects an output directory that holds any of the
// inputs, since writing it removes everything inside it first.
func (o *SubstituteOptions) checkOutputDirectory() error {
	if len(o.OutputDirectory) == 0 || o.Diff {
		return nil
	}

	outDir, err := filepath.Abs(o.OutputDirectory)
	if err != nil {
		return fmt.Errorf("Resolving output directory '%s': %s", o.OutputDirectory, err)
	}

	for _, path := range o.Files {
		if path == "-" {
			continue
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("Resolving file '%s': %s", path, err)
		}

		rel, err := filepath.Rel(outDir, absPath)
		if err != nil {
			continue
		}
		if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}

		return fmt.Errorf("Expected output directory '%s' to not contain input '%s'", o.OutputDirectory, path)
	}

	return nil
}

func (o *SubstituteOptions) printDiff(ui ui.UI, path, before, after string) {
	if before == after {
		return
	}
	ui.Printf("--- %s\n%s\n", path, difflib.PPDiff(strings.Split(before, "\n"), strings.Split(after, "\n")))
}
