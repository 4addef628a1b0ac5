package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/OfficialArms/virtool/internal/app/client"
	"github.com/OfficialArms/virtool/internal/state"
)

var offline bool

var stateCmd = &cobra.Command{
	Use:   "state [slice]",
	Short: "Print the mirrored state",
	Long: `Prints the state tree of the running daemon, or one top-level slice of
it. With --offline the last snapshot written by the daemon is read instead.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: state.SliceNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		var slice string
		if len(args) == 1 {
			slice = args[0]
		}

		if offline {
			return printSnapshot(cmd, slice)
		}

		raw, err := view.State(cmd.Context(), slice)
		if err != nil {
			return err
		}
		return printRaw(raw)
	},
}

func printSnapshot(cmd *cobra.Command, slice string) error {
	root, savedAt, err := client.ReadSnapshot(cmd.Context(), cfg.SnapshotPath)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	fmt.Fprintln(os.Stderr, color.YellowString("snapshot from %s (%s ago)",
		savedAt.Local().Format(time.RFC3339), time.Since(savedAt).Round(time.Second)))

	var v any = root
	if slice != "" {
		v, err = state.Slice(root, slice)
		if err != nil {
			return err
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return printRaw(data)
}

func init() {
	stateCmd.Flags().BoolVar(&offline, "offline", false, "read the last snapshot instead of the daemon")
}
