// Command frontier is the CLI driver: it reads a graph or hypergraph from
// stdin, builds the requested family's ZDD over it, and writes the result
// per the chosen output controls.
package main

func main() {
	Execute()
}
