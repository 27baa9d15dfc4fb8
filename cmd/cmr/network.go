package main

import (
	"fmt"

	"github.com/discopt/cmr-sub003/cmr"
)

// runNetwork implements the `network` subcommand: network-matrix testing,
// or conetwork testing when -t is given.
func runNetwork(args []string) error {
	fs, cf := newCommonFlagSet("network")
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
	var res *cmr.NetworkResult
	if cf.transpose {
		res, err = cmr.TestConetwork(m)
	} else {
		res, err = cmr.TestNetwork(m)
	}
	if err != nil {
		return err
	}
	if res.IsNetwork {
		fmt.Println("network: yes")
	} else {
		fmt.Println("network: no")
	}
	return nil
}
