// Command setcsp is a thin CLI over pkg/setcsp: it solves a Social
// Golfer Problem instance (internal/sgp) and prints the schedule or
// the accumulated metrics, mapping outcomes to the exit codes of spec
// §6.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	root := newRootCmd(log)
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "setcsp",
		Short:         "Finite set-constraint solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd(log))
	root.AddCommand(newMetricsCmd(log))
	return root
}

// exitCodeForError maps a returned error to spec §6's process exit
// codes: 0 solved, 1 unsatisfiable, 2 interrupted, 3 any other
// failure (invariant violation, unknown variable, unsupported option).
func exitCodeForError(err error) int {
	switch code := classify(err); code {
	case codeUnsatisfiable:
		return 1
	case codeInterrupted:
		return 2
	default:
		fmt.Fprintln(os.Stderr, "setcsp:", err)
		return 3
	}
}
