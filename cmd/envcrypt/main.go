// Command envcrypt is a thin CLI demonstration of the container codec: it
// is not part of the core and owns only argument parsing, secret
// collection, and file I/O around pkg/container.
package main

import (
	"fmt"
	"os"

	pkgversion "github.com/envcrypt/envcrypt/pkg/version"
)

// Build-time variables (set via -ldflags)
var (
	version   = ""        // Set via -ldflags "-X main.version=x.y.z"
	buildTime = "unknown" // Set via -ldflags "-X main.buildTime=..."
	gitCommit = "unknown" // Set via -ldflags "-X main.gitCommit=..."
)

func getVersion() string {
	if version != "" {
		return version
	}
	return pkgversion.String()
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "encrypt":
		encryptCommand()
	case "decrypt":
		decryptCommand()
	case "generate-key":
		generateKeyCommand()
	case "version":
		fmt.Printf("envcrypt version %s\n", getVersion())
		if buildTime != "unknown" {
			fmt.Printf("Built: %s\n", buildTime)
		}
		if gitCommit != "unknown" {
			fmt.Printf("Commit: %s\n", gitCommit)
		}
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`envcrypt - authenticated encryption for .env files

USAGE:
    envcrypt <command> [options]

COMMANDS:
    encrypt        Seal plaintext into a base64 artifact
    decrypt        Open an artifact back into plaintext
    generate-key   Generate a new random secret
    version        Print version information
    help           Show this help message

Run 'envcrypt <command> --help' for more information on a command.

EXAMPLES:
    # Generate a key and store it somewhere safe
    envcrypt generate-key

    # Encrypt a file with a cipher suite and secret from the environment
    envcrypt encrypt --in .env --out .env.encrypted --cipher AES-256-GCM

    # Decrypt it back
    envcrypt decrypt --in .env.encrypted --out .env --cipher AES-256-GCM

PROJECT:
    envcrypt - bit-exact authenticated encryption for environment files
    Ciphers: AES-256-CBC+HMAC-SHA256, AES-256-GCM, ChaCha20-Poly1305`)
}
