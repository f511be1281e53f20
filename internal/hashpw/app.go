// Package hashpw implements the hashpw command: it reads a password without
// echo and prints the bcrypt hash the server would store for it.
package hashpw

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/itemkeeper/internal/server/auth"
	"github.com/dmitrijs2005/itemkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/itemkeeper/internal/shared"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword   = errors.New("password is empty")
	ErrPasswordTooLong = fmt.Errorf("password is longer than %d bytes", auth.MaxPasswordBytes)
	ErrMismatch        = errors.New("passwords do not match")
)

// Input is where the password comes from. Fd is consulted only to detect
// and drive a terminal.
type Input struct {
	Reader io.Reader
	Fd     int
}

// Run parses args and writes hashes to out. Prompts go to errOut so out can
// be redirected.
func Run(args []string, in Input, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("hashpw", flag.ContinueOnError)
	fs.SetOutput(errOut)
	cost := fs.Int("cost", 10, "bcrypt cost")
	demo := fs.Bool("demo", false, "print hashes for the demo accounts")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cost < bcrypt.MinCost || *cost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if *demo {
		return printDemo(*cost, out)
	}

	pw, err := readSecret(in, errOut)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(pw)

	hash, err := hashSecret(pw, *cost)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}

// readSecret prompts twice on a terminal and reads a single line otherwise.
func readSecret(in Input, errOut io.Writer) ([]byte, error) {
	if !isTerminal(in.Fd) {
		return readLine(bufio.NewReader(in.Reader))
	}

	pw, err := getPassword(in.Fd, "Enter password: ", errOut)
	if err != nil {
		return nil, err
	}
	confirm, err := getPassword(in.Fd, "Confirm password: ", errOut)
	if err != nil {
		shared.WipeByteArray(pw)
		return nil, err
	}
	defer shared.WipeByteArray(confirm)

	if !bytes.Equal(pw, confirm) {
		shared.WipeByteArray(pw)
		return nil, ErrMismatch
	}
	return pw, nil
}

func hashSecret(pw []byte, cost int) (string, error) {
	switch {
	case len(pw) == 0:
		return "", ErrEmptyPassword
	case len(pw) > auth.MaxPasswordBytes:
		return "", ErrPasswordTooLong
	}
	return auth.HashPassword(string(pw), cost)
}

func printDemo(cost int, out io.Writer) error {
	for _, a := range repomanager.DemoAccounts() {
		hash, err := auth.HashPassword(a.Password, cost)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "username=%s email=%s role=%s password=%s\n", a.Username, a.Email, a.Role, a.Password)
		fmt.Fprintf(out, "hash=%s\n", hash)
	}
	return nil
}
