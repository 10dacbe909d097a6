// Command walletctl reads and writes the wallet files from a terminal,
// using the same directory and messages as walletd.
//
// Usage:
//
//	walletctl save [--address ADDR] [DATA]   (DATA read from stdin when omitted)
//	walletctl read
//	walletctl address
//	walletctl exists
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr, func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	})
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
