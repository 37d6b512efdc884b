package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/oaskit/internal/report"
)

// URLFlags contains flags for the url command
type URLFlags struct {
	CommonFlags
}

// SetupURLFlags creates and configures a FlagSet for the url command.
func SetupURLFlags() (*flag.FlagSet, *URLFlags) {
	fs := flag.NewFlagSet("url", flag.ContinueOnError)
	flags := &URLFlags{}
	flags.register(fs)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oaskit url [flags] <template>... | -\n\n")
		Writef(output, "Inspect URL templates: report {name} variables and whether the text\n")
		Writef(output, "resolves to a concrete URI.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oaskit url https://api.example.com/v1\n")
		Writef(output, "  oaskit url '{scheme}://{host}.example.com' /relative/path\n")
		Writef(output, "  oaskit url --format json - < servers.txt\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' to read one template per line from stdin\n")
	}

	return fs, flags
}

// HandleURL executes the url command
func HandleURL(args []string) error {
	fs, flags := SetupURLFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	raws := fs.Args()
	if len(raws) == 1 && raws[0] == StdinFilePath {
		lines, err := readLines()
		if err != nil {
			return fmt.Errorf("reading <stdin>: %w", err)
		}
		raws = lines
	}
	if len(raws) == 0 {
		fs.Usage()
		return fmt.Errorf("url command requires at least one template")
	}

	log := flags.logger("url")
	views := make([]report.TemplateView, 0, len(raws))
	for _, raw := range raws {
		v := report.Template(raw)
		log.Debug("inspected template", "raw", raw, "variables", len(v.Variables), "resolved", v.Resolved)
		views = append(views, v)
	}

	if flags.Format != FormatText {
		return OutputStructured(stdout, views, flags.Format)
	}

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			v.Raw,
			strings.Join(v.Variables, ","),
			strconv.FormatBool(v.Resolved),
			v.AbsoluteString,
		})
	}
	RenderSummaryTable(stdout, []string{"TEMPLATE", "VARIABLES", "RESOLVED", "ABSOLUTE"}, rows, flags.Quiet)
	return nil
}

// readLines reads non-blank lines from stdin.
func readLines() ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
