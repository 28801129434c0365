// Package analyzer implements the core of the tool: enumerating every
// function-like node in a parsed source file and classifying each one as
// markup-producing or plain.
//
// The classifier is a heuristic, not a type checker. It combines two
// structural checks (see Classify) and deliberately over-approximates:
// any markup anywhere in a function's body subtree marks the function as
// markup-producing, whether or not the markup is ever returned.
package analyzer
