package main

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/itemkeeper/internal/hashpw"
)

func main() {
	in := hashpw.Input{Reader: os.Stdin, Fd: int(os.Stdin.Fd())}
	if err := hashpw.Run(os.Args[1:], in, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}
}
