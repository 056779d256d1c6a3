/*
Package codec serializes automata to and from a structured document form, in
JSON and YAML.

Decoding replays every transition through the same invariant checks as
interactive construction, so a corrupted document (an undeclared symbol, a
transition endpoint outside the state set, or an edge into the start state)
fails with the same sentinel errors as the mutators. Round-tripping any valid
automaton reconstructs an equal one.
*/
package codec
