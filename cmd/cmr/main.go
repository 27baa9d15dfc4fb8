// Command cmr is the CLI surface: a handful of subcommands over the cmr
// façade, each accepting a common set of flags standardised across the
// tools. Each subcommand builds its own stdlib flag.FlagSet rather than
// reaching for a third-party flag/cobra library.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

const usage = "usage: cmr <tu|network|graphic|regular> [flags] [file]"

// run dispatches to one subcommand and maps its outcome to an exit-code
// policy (0 success, 1 input error, 2 everything else). Kept
// separate from main so it can be driven by argv slices in tests without
// the process actually exiting.
func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}
	sub, rest := args[0], args[1:]

	var err error
	switch sub {
	case "tu":
		err = runTU(rest)
	case "network":
		err = runNetwork(rest)
	case "graphic":
		err = runGraphic(rest)
	case "regular":
		err = runRegular(rest)
	case "-h", "--help", "help":
		fmt.Fprintln(os.Stderr, usage)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Input error: unknown subcommand %q\n", sub)
		return 1
	}
	if err == nil {
		return 0
	}
	var ie *inputError
	if errors.As(err, &ie) {
		fmt.Fprintf(os.Stderr, "Input error: %s\n", ie.msg)
		return 1
	}
	fmt.Fprintf(os.Stderr, "error: %s\n", err)
	return 2
}

// inputError marks a condition the CLI reports as exit code 1 (spec
// §6.3/§7: "Input error: <message>"), as opposed to every other failure,
// which is a memory/unknown error reported under exit code 2.
type inputError struct{ msg string }

func (e *inputError) Error() string { return e.msg }

func newInputError(format string, args ...any) error {
	return &inputError{msg: fmt.Sprintf(format, args...)}
}
