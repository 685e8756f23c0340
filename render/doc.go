// Package render draws core graphs and their spanning trees.
//
// ToDOT writes plain Graphviz DOT text that is deterministic and
// diffable in tests. SVG feeds that text through the embedded Graphviz
// engine when an actual picture is wanted. Splitting the two keeps DOT
// generation cheap and the heavyweight layout step opt-in.
package render
