package main

import (
	"fmt"
	"os"

	"github.com/discopt/cmr-sub003/cmr"
)

// runTU implements the `tu` subcommand: total unimodularity testing over
// the matrix read from args' positional file (or stdin).
func runTU(args []string) error {
	fs, cf := newCommonFlagSet("tu")
	if err := fs.Parse(args); err != nil {
		return newInputError("%s", err)
	}
	in, err := openInput(fs.Arg(0))
	if err != nil {
		return newInputError("%s", err)
	}
	defer in.Close()
	m, err := readMatrix(in, cf.input)
	if err != nil {
		return newInputError("%s", err)
	}
	if cf.transpose {
		m = m.Transpose()
	}
	e := buildEnv(cf)
	res, err := cmr.TestTotalUnimodularity(m, e)
	if err != nil {
		return err
	}
	printStats(cf, e)
	if res.IsTotallyUnimodular {
		fmt.Println("totally unimodular: yes")
		return nil
	}
	fmt.Println("totally unimodular: no")
	if res.Violator != nil {
		fmt.Fprintf(os.Stderr, "violator rows=%v columns=%v\n", res.Violator.Rows, res.Violator.Columns)
		if err := writeViolator(cf, m, res.Violator.Rows, res.Violator.Columns); err != nil {
			return err
		}
	}
	return nil
}
