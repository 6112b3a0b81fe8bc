package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/logicossoftware/go-puz"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, Version)
			return
		}
		fmt.Fprintf(out, "puzinspect %s\n", Version)
		fmt.Fprintf(out, "  Commit:      %s\n", Commit)
		fmt.Fprintf(out, "  Built:       %s\n", Date)
		fmt.Fprintf(out, "  Header size: %d bytes\n", puz.HeaderSize)
		fmt.Fprintf(out, "  Go version:  %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show only version number")
}
