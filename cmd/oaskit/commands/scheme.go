package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/oaskit/internal/docload"
	"github.com/erraggy/oaskit/internal/report"
	"github.com/erraggy/oaskit/security"
)

// SchemeFlags contains flags for the scheme command
type SchemeFlags struct {
	CommonFlags
	InputFormat string
	Collection  bool
	Canonical   bool
	MaxBytes    int64
}

// SetupSchemeFlags creates and configures a FlagSet for the scheme command.
// Returns the FlagSet and a SchemeFlags struct with bound flag variables.
func SetupSchemeFlags() (*flag.FlagSet, *SchemeFlags) {
	fs := flag.NewFlagSet("scheme", flag.ContinueOnError)
	flags := &SchemeFlags{}

	flags.register(fs)
	fs.StringVar(&flags.InputFormat, "input-format", "", "Input format: json or yaml (default: detect)")
	fs.BoolVar(&flags.Collection, "collection", false, "Input is a map of named schemes (components.securitySchemes)")
	fs.BoolVar(&flags.Canonical, "canonical", false, "Print the canonical single-line JSON encoding and nothing else")
	fs.Int64Var(&flags.MaxBytes, "max-bytes", DefaultMaxInputBytes, "Maximum input size in bytes")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oaskit scheme [flags] <file|->\n\n")
		Writef(output, "Decode an OpenAPI security scheme (JSON or YAML) and print it.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oaskit scheme bearer.yaml\n")
		Writef(output, "  oaskit scheme --format json bearer.yaml\n")
		Writef(output, "  oaskit scheme --collection components-security.yaml\n")
		Writef(output, "  echo '{\"type\":\"http\",\"scheme\":\"basic\"}' | oaskit scheme --canonical -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Decoding successful\n")
		Writef(output, "  1    Input could not be read or decoded\n")
	}

	return fs, flags
}

// HandleScheme executes the scheme command
func HandleScheme(args []string) error {
	fs, flags := SetupSchemeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	inputFormat, err := docload.ParseFormat(flags.InputFormat)
	if err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("scheme command requires exactly one file path or '-' for stdin")
	}
	path := fs.Arg(0)
	log := flags.logger("scheme")

	data, err := readInput(path, flags.MaxBytes)
	if err != nil {
		return fmt.Errorf("reading %s: %w", FormatInputPath(path), err)
	}
	if inputFormat == docload.FormatUnknown && path != StdinFilePath {
		inputFormat = docload.DetectFormat(path, data)
	}
	log.Debug("read input", "path", FormatInputPath(path), "bytes", len(data), "format", inputFormat.String())

	if flags.Collection {
		schemes, err := docload.DecodeSchemes(data, inputFormat)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", FormatInputPath(path), err)
		}
		log.Debug("decoded schemes", "count", len(schemes))
		return renderSchemes(stdout, schemes, flags)
	}

	scheme, err := docload.DecodeScheme(data, inputFormat)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", FormatInputPath(path), err)
	}
	log.Debug("decoded scheme", "type", string(scheme.Type()))
	return renderScheme(stdout, scheme, flags)
}

func renderScheme(w io.Writer, scheme security.SecurityScheme, flags *SchemeFlags) error {
	if flags.Canonical {
		data, err := scheme.MarshalJSON()
		if err != nil {
			return err
		}
		Writef(w, "%s\n", data)
		return nil
	}
	if flags.Format != FormatText {
		return OutputStructured(w, scheme, flags.Format)
	}

	view, err := report.Scheme("", scheme)
	if err != nil {
		return err
	}
	writeSchemeText(w, view, flags.Quiet)
	return nil
}

func renderSchemes(w io.Writer, schemes security.Schemes, flags *SchemeFlags) error {
	if flags.Canonical {
		data, err := schemes.MarshalJSON()
		if err != nil {
			return err
		}
		Writef(w, "%s\n", data)
		return nil
	}
	if flags.Format != FormatText {
		return OutputStructured(w, schemes, flags.Format)
	}

	views, err := report.Schemes(schemes)
	if err != nil {
		return err
	}
	if len(views) == 0 {
		if !flags.Quiet {
			Writef(w, "No security schemes found.\n")
		}
		return nil
	}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{v.Name, v.Type, v.Summary})
	}
	RenderSummaryTable(w, []string{"NAME", "TYPE", "SUMMARY"}, rows, flags.Quiet)
	return nil
}

// writeSchemeText prints one "Label: value" line per present field.
func writeSchemeText(w io.Writer, v report.SchemeView, quiet bool) {
	line := func(field, value string) {
		if value == "" {
			return
		}
		if quiet {
			Writef(w, "%s\t%s\n", field, value)
			return
		}
		Writef(w, "%s: %s\n", report.Label(field), value)
	}

	if quiet {
		line("type", v.Type)
	} else {
		line("type", v.Type+" ("+v.Label+")")
	}
	line("description", v.Description)
	line("name", v.KeyName)
	line("in", v.In)
	line("scheme", v.Scheme)
	line("bearerFormat", v.BearerFormat)
	line("openIdConnectUrl", v.OpenIDConnectURL)
	for _, f := range v.Flows {
		line("flow", f.Kind)
		line("authorizationUrl", f.AuthorizationURL)
		line("tokenUrl", f.TokenURL)
		line("refreshUrl", f.RefreshURL)
		line("scopes", joinOrNone(f.Scopes))
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
