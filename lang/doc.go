// Package lang implements the lithium scripting engine: a small dynamically
// typed imperative language evaluated directly against a host [Context].
//
// # Philosophy
//
// Parsing a construct is evaluating it. There is no token stream, no syntax
// tree, and no compile phase. [Context.Execute] walks the source once with a
// recursive descent parser and applies each statement as soon as it has been
// recognized. A loop re-parses its own condition text before every
// iteration.
//
// # Values
//
// Every datum is a [Value] of one of five kinds: null, bool, int (int64),
// float (float32), or string. Operators dispatch on the kind of their left
// operand and coerce the right operand to match:
//
//	"a" + 1      // "a1"
//	1 + "2"      // 3
//	1 + "a"      // type error
//	7 / 2        // 3
//	7.0 / 2      // 3.5
//
// # Grammar
//
// Informal EBNF:
//
//	Statement  → 'int' Ident Expression
//	           | 'set' 'local' Ident Expression
//	           | 'set' Ident Expression
//	           | 'to' Ident Ident Expression
//	           | 'if' Expression ':' Statement* '.'
//	           | 'loop' Expression ':' Statement* '.'
//	Expression → Term (('+' | '-') Term)*
//	Term       → Factor (('*' | '/' | '%') Factor)*
//	Factor     → Number | String | 'true' | 'false' | '(' Expression ')'
//	           | 'get' 'local' Ident | 'get' Ident
//	           | 'from' Ident ['get'] Ident | 'local' Ident
//
// Identifiers are runs of characters other than whitespace, the period, and
// ASCII punctuation. Strings are delimited by double quotes and have no
// escapes.
//
// # Example
//
//	int n 3
//	int sum 0
//	loop local n:
//	  set local sum (local sum + local n)
//	  set local n (local n - 1)
//	.
//	if local sum - 6: set answer "wrong".
//	to Host total local sum * from Math Pi
//
// # Scoping
//
// Variables live in one flat namespace per [Context]. A variable declared
// inside an if or loop block is removed when the block exits, and a nested
// declaration of a name that is already live fails with [ErrNameConflict].
//
// # Host binding
//
// Hosts expose properties with [Context.AddAccessor] and link other contexts
// as modules with [Context.AddModule]. Scripts read properties with get,
// write them with set, and reach module properties with from and to.
package lang
