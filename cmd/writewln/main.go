// Command writewln loads a molecule from one of several input formats and
// emits its canonical Wiswesser Line Notation. The WLN side is entirely
// wln.CanonicaliseWLN; this file only resolves which chem loader produces
// the Molecule.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cx-luo/wlnchem/chem"
	"github.com/cx-luo/wlnchem/internal/wlnerr"
	"github.com/cx-luo/wlnchem/wln"
)

type writewlnFlags struct {
	debug    bool
	str      string
	inSmi    bool
	inInchi  bool
	inCanWln bool
	inMol    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &writewlnFlags{}

	cmd := &cobra.Command{
		Use:   "writewln [file]",
		Short: "Render a molecule, loaded from another format, as canonical WLN",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags)
		},
		SilenceUsage: true,
	}

	pf := cmd.Flags()
	pf.BoolVarP(&flags.debug, "debug", "d", false, "verbose writer traces to stderr")
	pf.StringVarP(&flags.str, "string", "s", "", "read input from this argument instead of a file/stdin")
	pf.BoolVar(&flags.inSmi, "ismi", false, "input is SMILES (default)")
	pf.BoolVar(&flags.inInchi, "iinchi", false, "input is InChI (not implemented)")
	pf.BoolVar(&flags.inCanWln, "ican", false, "rejected with an error: use readwln to parse WLN text")
	pf.BoolVar(&flags.inMol, "imol", false, "input is an MDL Molfile (V2000)")

	return cmd
}

func run(cmd *cobra.Command, args []string, flags *writewlnFlags) error {
	m, err := loadMolecule(cmd, args, flags)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}

	out, werr := wln.CanonicaliseWLN(m, flags.debug)
	if werr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), werr)
		return werr
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// loadMolecule dispatches on the mutually-exclusive -i* flags, defaulting to
// -ismi when none are given.
func loadMolecule(cmd *cobra.Command, args []string, flags *writewlnFlags) (*chem.Molecule, error) {
	switch {
	case flags.inInchi:
		return nil, wlnerr.New(wlnerr.Semantic, -1, "InChI input is not implemented")
	case flags.inMol:
		r, err := openInput(cmd, args, flags.str)
		if err != nil {
			return nil, err
		}
		return chem.NewMolfileLoader(r).LoadMolecule()
	case flags.inCanWln:
		return nil, wlnerr.New(wlnerr.Semantic, -1, "-ican expects an already-built molecule; use readwln to parse WLN text")
	default:
		data, err := readInputString(cmd, args, flags.str)
		if err != nil {
			return nil, err
		}
		return chem.SmilesLoader{}.Parse(data)
	}
}

func openInput(cmd *cobra.Command, args []string, str string) (io.Reader, error) {
	if str != "" {
		return strings.NewReader(str), nil
	}
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return cmd.InOrStdin(), nil
}

func readInputString(cmd *cobra.Command, args []string, str string) (string, error) {
	r, err := openInput(cmd, args, str)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
