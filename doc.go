// Command-free library root for pdgame-m2.
//
// pdgame-m2 classifies deterministic memory-2 iterated Prisoner's Dilemma
// strategies against three game-theoretic properties:
//
//	action/    — the single Cooperate/Defect move
//	state/     — the 16 possible memory-2 states and their transitions
//	digraph/   — a small fixed-order directed graph with Tarjan SCCs
//	matrix/    — a dense float64 matrix and a rectangular least-squares solver
//	strategy/  — the Strategy Analysis Engine: defensibility, efficiency,
//	             distinguishability, both by exact computation and by a
//	             topological surrogate, plus a cross-check between the two
//	config/    — loads epsilon/theta/workers from an optional YAML file
//
// See cmd/pdclassify for the enumeration driver.
package pdgamem2
