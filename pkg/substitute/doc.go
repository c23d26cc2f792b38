// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package substitute is the Substitution Engine: it rewrites a piece of text by
replacing every ${{name}} placeholder with the string value of name from a
variables.Table.

Substitution is a single linear pass. The text is split on the opening
delimiter and each fragment is scanned for the first closing delimiter; output
is never scanned again, so a value that itself contains ${{...}} is emitted as
is. There is no escaping, nesting or expression evaluation.

Nothing here fails. A placeholder whose name is not in the table (or whose value
is not a string) is replaced with an inline marker:

	UNKNOWN VARIABLE 'name'

and an unterminated placeholder is passed through.

By default every "}}" that follows a placeholder within the same fragment is
removed, which existing books may rely on. Opts.ExactDelimiters (see also the
"exact-delimiters" experiment) consumes only the delimiters that belong to the
placeholder.
*/
package substitute
