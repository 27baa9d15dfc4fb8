package main

import (
	"fmt"
	"os"

	"github.com/discopt/cmr-sub003/cmr"
)

// runRegular implements the `regular` subcommand: regularity testing
// over a binary (0/1) matrix.
func runRegular(args []string) error {
	fs, cf := newCommonFlagSet("regular")
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
	res, err := cmr.TestRegular(m, e)
	if err != nil {
		return err
	}
	printStats(cf, e)
	if res.IsRegular {
		fmt.Println("regular: yes")
		return nil
	}
	fmt.Println("regular: no")
	if res.Violator != nil {
		fmt.Fprintf(os.Stderr, "violator rows=%v columns=%v\n", res.Violator.Rows, res.Violator.Columns)
		if err := writeViolator(cf, m, res.Violator.Rows, res.Violator.Columns); err != nil {
			return err
		}
	}
	return nil
}
