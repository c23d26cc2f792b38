// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package substitute

import (
	"fmt"
	"strings"

	"carvel.dev/mdbook-variables/pkg/variables"
)

const (
	OpenDelim  = "${{"
	CloseDelim = "}}"

	unknownVariableFmt = "UNKNOWN VARIABLE '%s'"
)

type Opts struct {
	// ExactDelimiters makes the name end at the first "}}" and consumes only
	// that one "}}"; the remaining text of the fragment is left untouched.
	// Unterminated placeholders keep their "${{".
	ExactDelimiters bool
}

type Engine struct {
	opts Opts
}

// Report describes what happened to the placeholders of one text.
type Report struct {
	Resolved int
	// Unknown holds placeholder names (as written) that were not substituted,
	// in order of occurrence.
	Unknown []string
}

func (r *Report) Add(other Report) {
	r.Resolved += other.Resolved
	r.Unknown = append(r.Unknown, other.Unknown...)
}

func NewEngine(opts Opts) Engine {
	return Engine{opts}
}

// Substitute rewrites text with the default options.
func Substitute(table *variables.Table, text string) string {
	return Engine{}.Substitute(table, text)
}

// UnknownVariableMarker is the text emitted in place of an unresolved placeholder.
func UnknownVariableMarker(name string) string {
	return fmt.Sprintf(unknownVariableFmt, name)
}

func (e Engine) Substitute(table *variables.Table, text string) string {
	result, _ := e.SubstituteWithReport(table, text)
	return result
}

func (e Engine) SubstituteWithReport(table *variables.Table, text string) (string, Report) {
	var report Report

	fragments := strings.Split(text, OpenDelim)
	if len(fragments) == 1 {
		return text, report
	}

	var out strings.Builder
	out.Grow(len(text))
	out.WriteString(fragments[0])

	for _, fragment := range fragments[1:] {
		endIdx := strings.Index(fragment, CloseDelim)
		if endIdx < 0 {
			if e.opts.ExactDelimiters {
				out.WriteString(OpenDelim)
			}
			out.WriteString(fragment)
			continue
		}

		name, tail := fragment[:endIdx], fragment[endIdx:]

		if val, found := table.String(e.lookupKey(name)); found {
			out.WriteString(val)
			report.Resolved++
		} else {
			out.WriteString(UnknownVariableMarker(name))
			report.Unknown = append(report.Unknown, name)
		}

		out.WriteString(e.trimTail(tail))
	}

	return out.String(), report
}

func (e Engine) lookupKey(name string) string {
	if e.opts.ExactDelimiters {
		return name
	}
	// no-op while name ends before the first "}}"
	return strings.ReplaceAll(name, CloseDelim, "")
}

// trimTail removes the closing delimiter from tail (which starts with it).
func (e Engine) trimTail(tail string) string {
	if e.opts.ExactDelimiters {
		return tail[len(CloseDelim):]
	}
	return strings.ReplaceAll(tail, CloseDelim, "")
}
