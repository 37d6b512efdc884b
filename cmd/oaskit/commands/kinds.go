package commands

import (
	"errors"
	"flag"

	"github.com/erraggy/oaskit/internal/report"
)

// KindsFlags contains flags for the kinds command
type KindsFlags struct {
	CommonFlags
}

// SetupKindsFlags creates and configures a FlagSet for the kinds command.
func SetupKindsFlags() (*flag.FlagSet, *KindsFlags) {
	fs := flag.NewFlagSet("kinds", flag.ContinueOnError)
	flags := &KindsFlags{}
	flags.register(fs)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oaskit kinds [flags]\n\n")
		Writef(output, "List the security scheme types with their required and optional fields.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
	}
	return fs, flags
}

// HandleKinds executes the kinds command
func HandleKinds(args []string) error {
	fs, flags := SetupKindsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	kinds := report.Kinds()
	if flags.Format != FormatText {
		return OutputStructured(stdout, kinds, flags.Format)
	}

	rows := make([][]string, 0, len(kinds))
	for _, k := range kinds {
		rows = append(rows, []string{k.Type, k.Label, report.FieldLabels(k.Required), report.FieldLabels(k.Optional)})
	}
	RenderSummaryTable(stdout, []string{"TYPE", "LABEL", "REQUIRED", "OPTIONAL"}, rows, flags.Quiet)
	return nil
}
