package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/envcrypt/envcrypt/pkg/container"
	"github.com/envcrypt/envcrypt/pkg/secret"
	"github.com/envcrypt/envcrypt/pkg/telemetry"
)

func decryptCommand() {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	in := fs.String("in", "", "Path to the artifact to decrypt (required)")
	out := fs.String("out", "", "Path to write the plaintext to (required)")
	cipherName := fs.String("cipher", "AES-256-GCM", "Cipher suite used when the artifact was sealed")
	secretEnv := fs.String("secret-env", "ENVCRYPT_SECRET", "Environment variable holding the secret")
	force := fs.Bool("force", false, "Overwrite the output file if it already exists")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn, error, silent")

	fs.Usage = func() {
		fmt.Println(`USAGE: envcrypt decrypt [options]

Open a base64-encoded artifact back into plaintext.

OPTIONS:`)
		fs.PrintDefaults()
	}

	_ = fs.Parse(os.Args[2:])

	telemetry.GetLogger().SetLevel(telemetry.ParseLevel(*logLevel))

	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "decrypt: --in and --out are required")
		fs.Usage()
		os.Exit(1)
	}

	if !*force {
		if _, err := os.Stat(*out); err == nil {
			fmt.Fprintf(os.Stderr, "decrypt: %s already exists; pass --force to overwrite\n", *out)
			os.Exit(1)
		}
	}

	artifact, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decrypt: reading %s: %v\n", *in, err)
		os.Exit(1)
	}

	raw := os.Getenv(*secretEnv)
	if raw == "" {
		fmt.Fprintf(os.Stderr, "decrypt: environment variable %s is not set\n", *secretEnv)
		os.Exit(1)
	}
	s, err := secret.ParseSecret(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decrypt: %v\n", err)
		os.Exit(1)
	}

	plaintext, err := container.OpenSecret(*cipherName, s, artifact)
	if err != nil {
		// MalformedArtifact and AuthenticationFailed are reported with
		// distinct messages here, at the CLI boundary only; the core
		// itself never lets the distinction affect whether plaintext is
		// emitted.
		fmt.Fprintf(os.Stderr, "decrypt: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, plaintext, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "decrypt: writing %s: %v\n", *out, err)
		os.Exit(1)
	}

	telemetry.Info("opened artifact", telemetry.Fields{
		"cipher": *cipherName,
		"in":     *in,
		"out":    *out,
	})
	fmt.Printf("wrote %s (%d bytes)\n", *out, len(plaintext))
}
