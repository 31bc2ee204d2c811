package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/envcrypt/envcrypt/pkg/secret"
)

func generateKeyCommand() {
	fs := flag.NewFlagSet("generate-key", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Println(`USAGE: envcrypt generate-key

Generate a new random secret and print it to stdout. Nothing is written
to disk; it is the caller's responsibility to store the value somewhere
safe (a secret manager, not the repository).`)
	}

	_ = fs.Parse(os.Args[2:])

	display, s, err := secret.GenerateSecret(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-key: %v\n", err)
		os.Exit(1)
	}
	defer s.Release()

	fmt.Println(display)
}
