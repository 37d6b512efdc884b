package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oaskit"
	"github.com/erraggy/oaskit/cmd/oaskit/commands"
)

// commandNames lists the top-level commands, in usage order.
var commandNames = []string{"scheme", "url", "kinds", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oaskit %s\n\n%s\n", oaskit.Version(), oaskit.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "scheme":
		err = commands.HandleScheme(args)
	case "url":
		err = commands.HandleURL(args)
	case "kinds":
		err = commands.HandleKinds(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest command within edit distance 2, or "".
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Printf(`oaskit - OpenAPI security scheme and server URL toolkit

Usage:
  oaskit <command> [flags] [args]

Commands:
  scheme    Decode, validate and canonicalize a security scheme document
  url       Inspect templated server URLs
  kinds     List security scheme types and their fields
  mcp       Serve the tools over the Model Context Protocol (stdio)
  version   Show version information
  help      Show this help message

Examples:
  oaskit scheme bearer.json
  oaskit scheme --collection --format json components.yaml
  oaskit scheme --canonical - < scheme.yaml
  oaskit url 'https://{region}.example.com/v1'
  oaskit kinds --format yaml

Run 'oaskit <command> --help' for more information on a command.
`)
}
