// Command iron is Iron's CLI entry point: iron [OPTIONS] FILE...
package main

import (
	"fmt"
	"os"

	"github.com/arcterus/iron/cmd/iron/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
