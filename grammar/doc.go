// Package grammar ties a rule set and a start graph into a driver that
// repeatedly samples a rule order, finds a match for the first rule in
// that order with one, applies it, and repeats. Rule order, match
// choice, and choice-rule alternative all flow from one injected PRNG so
// a run is reproducible given a seed.
package grammar
