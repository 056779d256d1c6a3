/*
Package runtime implements the simulation engine that decides whether an
automaton accepts an input string.

The engine runs the non-deterministic search as a frontier of simultaneous
states: it starts from the epsilon-closure of the start state and, for each
input symbol, advances every frontier member through its symbol-keyed
transitions and re-closes the result under epsilon edges. The input is
accepted exactly when the final frontier intersects the accept set. Closure
computation uses an explicit worklist with a visited set, so the epsilon
cycles introduced by the Kleene-closure combinator always terminate.
*/
package runtime
