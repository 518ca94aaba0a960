package main

import (
	"fmt"
	"os"

	"github.com/BuzzLyutic/task-list/internal/cli"
)

// version задается через ldflags при сборке
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
