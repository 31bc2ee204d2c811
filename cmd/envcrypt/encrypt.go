package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/envcrypt/envcrypt/pkg/container"
	"github.com/envcrypt/envcrypt/pkg/secret"
	"github.com/envcrypt/envcrypt/pkg/telemetry"
)

func encryptCommand() {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	in := fs.String("in", "", "Path to the plaintext file to encrypt (required)")
	out := fs.String("out", "", "Path to write the artifact to (required)")
	cipherName := fs.String("cipher", "AES-256-GCM", "Cipher suite: AES-256-CBC, AES-256-GCM, CHACHA20-POLY1305")
	secretEnv := fs.String("secret-env", "ENVCRYPT_SECRET", "Environment variable holding the secret")
	force := fs.Bool("force", false, "Overwrite the output file if it already exists")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn, error, silent")

	fs.Usage = func() {
		fmt.Println(`USAGE: envcrypt encrypt [options]

Seal a plaintext file into a base64-encoded artifact.

OPTIONS:`)
		fs.PrintDefaults()
	}

	_ = fs.Parse(os.Args[2:])

	telemetry.GetLogger().SetLevel(telemetry.ParseLevel(*logLevel))

	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "encrypt: --in and --out are required")
		fs.Usage()
		os.Exit(1)
	}

	if !*force {
		if _, err := os.Stat(*out); err == nil {
			fmt.Fprintf(os.Stderr, "encrypt: %s already exists; pass --force to overwrite\n", *out)
			os.Exit(1)
		}
	}

	plaintext, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encrypt: reading %s: %v\n", *in, err)
		os.Exit(1)
	}

	raw := os.Getenv(*secretEnv)
	if raw == "" {
		fmt.Fprintf(os.Stderr, "encrypt: environment variable %s is not set\n", *secretEnv)
		os.Exit(1)
	}
	s, err := secret.ParseSecret(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encrypt: %v\n", err)
		os.Exit(1)
	}

	artifact, err := container.SealSecret(*cipherName, s, plaintext)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encrypt: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, artifact, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "encrypt: writing %s: %v\n", *out, err)
		os.Exit(1)
	}

	telemetry.Info("sealed artifact", telemetry.Fields{
		"cipher": *cipherName,
		"in":     *in,
		"out":    *out,
		"bytes":  len(artifact),
	})
	fmt.Printf("wrote %s (%d bytes)\n", *out, len(artifact))
}
