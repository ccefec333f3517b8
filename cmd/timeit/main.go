// cmd/timeit/main.go
package main

import (
	cmd "github.com/mwiater/timeit/internal/commands"
)

// main starts the timeit CLI application by delegating to the
// cobra root command defined in the timeit package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
