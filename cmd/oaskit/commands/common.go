// Package commands provides CLI command handlers for oaskit.
package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/oaskit/internal/docload"
	"github.com/erraggy/oaskit/internal/logging"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// DefaultMaxInputBytes bounds how much input a command reads.
const DefaultMaxInputBytes = 4 << 20

// Command output streams. Tests replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin
)

// CommonFlags are the flags shared by the output-producing commands.
type CommonFlags struct {
	Format  string
	Quiet   bool
	Verbose bool
}

func (c *CommonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.Format, "format", FormatText, "Output format: text, json, yaml")
	fs.BoolVar(&c.Quiet, "quiet", false, "Suppress headers and decoration")
	fs.BoolVar(&c.Quiet, "q", false, "Suppress headers and decoration (shorthand)")
	fs.BoolVar(&c.Verbose, "verbose", false, "Log debug information to stderr")
}

// logger returns a debug logger on stderr when --verbose is set.
func (c *CommonFlags) logger(command string) logging.Logger {
	if !c.Verbose {
		return logging.NopLogger{}
	}
	return logging.NewText(stderr, slog.LevelDebug).With("command", command)
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data in the specified format (json or yaml) to w.
// JSON output is indented and never HTML-escaped, so URLs keep their & < >.
func OutputStructured(w io.Writer, data any, format string) error {
	var out string

	switch format {
	case FormatJSON:
		var sb strings.Builder
		enc := json.NewEncoder(&sb)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("marshaling to %s: %w", format, err)
		}
		out = sb.String()
	case FormatYAML:
		data, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshaling to %s: %w", format, err)
		}
		out = string(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	Writef(w, "%s\n", strings.TrimSuffix(out, "\n"))
	return nil
}

// FormatInputPath returns a display-friendly path for an input argument.
func FormatInputPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// RenderSummaryTable renders rows as aligned columns. In quiet mode the
// header is omitted and cells are tab-separated for scripting.
func RenderSummaryTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if !quiet {
		writeRow(w, headers, widths)
	}
	for _, row := range rows {
		if quiet {
			Writef(w, "%s\n", strings.Join(row, "\t"))
			continue
		}
		writeRow(w, row, widths)
	}
}

func writeRow(w io.Writer, cells []string, widths []int) {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == len(cells)-1 {
			b.WriteString(cell)
			continue
		}
		fmt.Fprintf(&b, "%-*s", widths[i], cell)
	}
	Writef(w, "%s\n", b.String())
}

// readInput reads a file argument, or stdin for "-".
func readInput(path string, maxBytes int64) ([]byte, error) {
	if path == StdinFilePath {
		return docload.Read(stdin, maxBytes)
	}
	f, err := os.Open(path) //nolint:gosec // G304 - CLI reads the file the user names
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return docload.Read(f, maxBytes)
}
