// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocessor

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"carvel.dev/mdbook-variables/pkg/book"
	"carvel.dev/mdbook-variables/pkg/cmd/ui"
	"carvel.dev/mdbook-variables/pkg/config"
	"carvel.dev/mdbook-variables/pkg/spell"
	"carvel.dev/mdbook-variables/pkg/substitute"
	"carvel.dev/mdbook-variables/pkg/variables"
	"carvel.dev/mdbook-variables/pkg/walk"
)

const (
	Name = "variables"

	// unsupportedRenderer is the only renderer name that is turned down;
	// it exists so that the renderer check can be exercised.
	unsupportedRenderer = "not-supported"
)

type Opts struct {
	// ConfigKey locates the variables table within the book configuration.
	ConfigKey string
	// Overrides are applied on top of the configured table, and are used
	// even when the configuration has no table.
	Overrides *variables.Table

	Substitute substitute.Opts
	Walk       walk.Opts
}

type Preprocessor struct {
	opts Opts
	ui   ui.UI
}

// Result summarises a run.
type Result struct {
	// Skipped is set when no variables were configured.
	Skipped  bool
	Chapters int
	Report   substitute.Report
}

func NewPreprocessor(opts Opts, ui ui.UI) *Preprocessor {
	if len(opts.ConfigKey) == 0 {
		opts.ConfigKey = config.DefaultKey
	}
	return &Preprocessor{opts, ui}
}

func (p *Preprocessor) Name() string { return Name }

// SupportsRenderer answers mdBook's capability query.
func (p *Preprocessor) SupportsRenderer(renderer string) bool {
	return renderer != unsupportedRenderer
}

// Table returns the variables for ctx: the configured table merged with overrides.
// Second result is false when neither is present (nothing to do).
func (p *Preprocessor) Table(ctx Context) (*variables.Table, bool, error) {
	table, found, err := config.TableFromConfig(ctx.Config, p.opts.ConfigKey)
	if err != nil {
		return nil, false, err
	}

	if p.opts.Overrides.Len() > 0 {
		return table.Merge(p.opts.Overrides), true, nil
	}
	return table, found, nil
}

// Run substitutes variables in every chapter of b, in place.
func (p *Preprocessor) Run(ctx Context, b *book.Book) (Result, error) {
	t1 := time.Now()

	defer func() {
		p.ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	if msg, err := CheckVersion(ctx.MdbookVersion); err != nil {
		return Result{}, err
	} else if len(msg) > 0 {
		p.ui.Warnf("[WARN] (mdbook-%s): %s\n", Name, msg)
	}

	table, found, err := p.Table(ctx)
	if err != nil {
		return Result{}, err
	}
	if !found {
		p.ui.Debugf("no '%s' table in book configuration; skipping\n", p.opts.ConfigKey)
		return Result{Skipped: true}, nil
	}

	err = DumpTable(p.ui, table)
	if err != nil {
		return Result{}, err
	}

	var (
		result Result
		mu     sync.Mutex
	)

	engine := substitute.NewEngine(p.opts.Substitute)

	rewrite := func(text string) string {
		out, report := engine.SubstituteWithReport(table, text)

		mu.Lock()
		result.Chapters++
		result.Report.Add(report)
		mu.Unlock()

		return out
	}

	walk.WalkAll(b.Nodes(), rewrite, p.opts.Walk)

	p.ui.Debugf("substituted %d placeholder(s) in %d chapter(s)\n", result.Report.Resolved, result.Chapters)

	if len(result.Report.Unknown) > 0 {
		p.ui.Warnf("[WARN] (mdbook-%s): Unknown variable(s): %s\n", Name, DescribeUnknown(result.Report.Unknown, table))
	}

	return result, nil
}

// DumpTable prints the effective variables as YAML when debugging.
func DumpTable(ui ui.UI, table *variables.Table) error {
	out, err := config.MarshalYAML(table)
	if err != nil {
		return err
	}
	fmt.Fprintf(ui.DebugWriter(), "variables:\n%s", out)
	return nil
}

// DescribeUnknown lists unknown placeholder names with their number of
// occurrences and, when one is close, the variable that was probably meant.
func DescribeUnknown(names []string, table *variables.Table) string {
	counts := map[string]int{}
	for _, name := range names {
		counts[name]++
	}

	known := table.Names()

	var pieces []string
	for name, count := range counts {
		piece := fmt.Sprintf("'%s' (%dx", name, count)
		if suggestion := spell.Nearest(name, known); len(suggestion) > 0 {
			piece += fmt.Sprintf(", did you mean '%s'?", suggestion)
		}
		pieces = append(pieces, piece+")")
	}
	sort.Strings(pieces)

	return strings.Join(pieces, ", ")
}
