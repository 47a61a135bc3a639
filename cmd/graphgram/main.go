// Command graphgram applies a graph grammar to a start graph, rewriting
// it one matched rule at a time until no rule applies or an iteration
// bound is reached, then renders the result as SVG.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
