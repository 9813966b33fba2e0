// Command readwln parses a WLN string into a molecule and renders it in the
// requested output format. It is a thin cobra wrapper around
// wln.Parse/wln.WriteWLN/wln.CanonicaliseWLN/chem.SaveSMILES, keeping all
// logic in the library and the command itself limited to flag parsing and
// output dispatch, in the cobra idiom the turtacn-KeyIP-Intelligence CLI
// uses.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cx-luo/wlnchem/chem"
	"github.com/cx-luo/wlnchem/internal/wlnerr"
	"github.com/cx-luo/wlnchem/wln"
)

type readwlnFlags struct {
	debug    bool
	str      string
	old      bool
	outSmi   bool
	outInchi bool
	outKey   bool
	outCan   bool
	outWln   bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &readwlnFlags{}

	cmd := &cobra.Command{
		Use:   "readwln [file]",
		Short: "Parse a Wiswesser Line Notation string into a molecule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags)
		},
		SilenceUsage: true,
	}

	pf := cmd.Flags()
	pf.BoolVarP(&flags.debug, "debug", "d", false, "verbose state-machine traces to stderr")
	pf.StringVarP(&flags.str, "string", "s", "", "read WLN from this argument instead of a file/stdin")
	pf.BoolVar(&flags.old, "old", false, "use the legacy reader (no-op: this module has only one reader implementation)")
	pf.BoolVar(&flags.outSmi, "osmi", false, "emit SMILES")
	pf.BoolVar(&flags.outInchi, "oinchi", false, "emit InChI (not implemented)")
	pf.BoolVar(&flags.outKey, "okey", false, "emit InChIKey (not implemented)")
	pf.BoolVar(&flags.outCan, "ocan", false, "emit canonical WLN")
	pf.BoolVar(&flags.outWln, "owln", false, "emit WLN (default)")

	return cmd
}

func run(cmd *cobra.Command, args []string, flags *readwlnFlags) error {
	input, err := readInput(cmd, args, flags.str)
	if err != nil {
		return fmt.Errorf("readwln: %w", err)
	}

	m, perr := wln.Parse(input, flags.debug)
	if perr != nil {
		printParseError(cmd, input, perr)
		return perr
	}

	out, oerr := renderOutput(m, flags)
	if oerr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), oerr)
		return oerr
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// renderOutput dispatches on the mutually-exclusive -o* flags, defaulting to
// -owln when none are given.
func renderOutput(m *chem.Molecule, flags *readwlnFlags) (string, error) {
	switch {
	case flags.outSmi:
		return chem.SaveSMILES(m), nil
	case flags.outInchi, flags.outKey:
		return "", wlnerr.New(wlnerr.Semantic, -1, "InChI output is not implemented")
	case flags.outCan:
		return wln.CanonicaliseWLN(m, flags.debug)
	default:
		return wln.WriteWLN(m, flags.debug)
	}
}

// readInput resolves the input string: -s wins, otherwise a positional
// file path, otherwise stdin.
func readInput(cmd *cobra.Command, args []string, str string) (string, error) {
	if str != "" {
		return str, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return trimNewline(string(data)), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return trimNewline(string(data)), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

func printParseError(cmd *cobra.Command, input string, err error) {
	fmt.Fprintln(cmd.ErrOrStderr(), err)
	var wlnErr *wlnerr.Error
	if as, ok := err.(*wlnerr.Error); ok {
		wlnErr = as
	}
	if wlnErr != nil && wlnErr.Offset >= 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), wlnerr.Caret(input, wlnErr.Offset))
	}
}
