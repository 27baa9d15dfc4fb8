package main

import (
	"fmt"

	"github.com/discopt/cmr-sub003/graphic"
)

// runGraphic implements the `graphic` subcommand: the underlying
// binary-support graphicness decision (graphic.DirectTest), distinct
// from `network`'s ternary signed-matrix decision — a matrix can be
// graphic in support while its particular chosen signs fail to be a
// network matrix, exactly the distinction TestTotalUnimodularity's
// confirming pass exists to catch.
func runGraphic(args []string) error {
	fs, cf := newCommonFlagSet("graphic")
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
	res, err := graphic.DirectTest(m.Support())
	if err == graphic.ErrTooLarge {
		fmt.Println("graphic: no")
		return nil
	}
	if err != nil {
		return err
	}
	if res.IsGraphic {
		fmt.Println("graphic: yes")
	} else {
		fmt.Println("graphic: no")
	}
	return nil
}
