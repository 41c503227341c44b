// Command reaxtrace detects chemical reactions in a molecular dynamics trajectory.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reaxtrace/reaxtrace/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
