// Package lang scans and parses programs for the eight-symbol tape
// language.
//
// # Pipeline
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Source    │────▶│   Scanner   │────▶│   Parser    │
//	│  (cleaned)  │     │  (symbols)  │     │   (tree)    │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// The scanner maps each of the characters
//
//	>  <  +  -  [  ]  .  ,
//
// to a Symbol and fails on anything else, including whitespace. Callers
// strip whitespace first (see package source).
//
// The parser turns the symbol sequence into a tree of Instruction values.
// Brackets never appear in the tree: a loop start and its matching loop
// end become a single Loop node owning its body.
//
// # Errors
//
//	*UnrecognizedSymbolError   scanner, first bad character and its index
//	*UnmatchedBracketsError    parser, loop start/end counts differ
//	*UnexpectedLoopEndError    parser, a loop end closes nothing
//
// # Example
//
//	tree, err := lang.Compile("++>+++++[<+>-]<.")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(lang.SymbolString(lang.Flatten(tree)))
package lang
