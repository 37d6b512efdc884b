package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oaskit/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oaskit mcp\n\n")
		Writef(output, "Serve the oaskit tools over the Model Context Protocol on stdio.\n\n")
		Writef(output, "Environment:\n")
		Writef(output, "  OASKIT_MAX_INPUT_BYTES   maximum document size (default 1048576)\n")
		Writef(output, "  OASKIT_MAX_TEMPLATES     maximum templates per call (default 100)\n")
		Writef(output, "  OASKIT_LOG_LEVEL         stderr log level (default warn)\n")
		Writef(output, "  OASKIT_CACHE_ENABLED     cache decoded documents (default true)\n")
		Writef(output, "  OASKIT_CACHE_MAX_SIZE    maximum cached documents (default 32)\n")
		Writef(output, "  OASKIT_CACHE_TTL         cache entry lifetime (default 15m)\n")
	}
	return fs
}

// HandleMCP executes the mcp command. It blocks until the client disconnects
// or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return errors.New("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
