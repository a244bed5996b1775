// Package hitdice parses and evaluates hit-dice notation such as "2d8+3".
//
// Parsing is lenient about layout: whitespace is ignored, the 'd' separator
// is case-insensitive and characters that do not form a term are skipped.
// It is strict about values: dice pools may not be negative and every count
// and face value must be at least one.
//
//	expr, err := hitdice.Parse("2d8 + 3")
//	hp, err := evaluator.Evaluate(expr)
package hitdice
