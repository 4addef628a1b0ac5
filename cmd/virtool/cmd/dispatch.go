package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listTypes bool

var dispatchCmd = &cobra.Command{
	Use:   "dispatch TYPE [PAYLOAD]",
	Short: "Dispatch an action through the daemon",
	Long: `Queues an action on the daemon's store. PAYLOAD is a JSON object.

  virtool dispatch FIND_SAMPLES_REQUESTED '{"term":"foo"}'
  virtool dispatch REMOVE_SAMPLE_REQUESTED '{"sample_id":"abc"}'
  virtool dispatch --list`,
	Args: func(cmd *cobra.Command, args []string) error {
		if listTypes {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.RangeArgs(1, 2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if listTypes {
			types, err := view.ActionTypes(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(types)
			}
			for _, t := range types {
				fmt.Println(t)
			}
			return nil
		}

		var payload json.RawMessage
		if len(args) == 2 {
			payload = json.RawMessage(args[1])
			if !json.Valid(payload) {
				return errors.New("payload is not valid JSON")
			}
		}

		if err := view.Dispatch(cmd.Context(), args[0], payload); err != nil {
			return err
		}

		fmt.Println(color.GreenString("✓"), args[0])
		return nil
	},
}

func init() {
	dispatchCmd.Flags().BoolVar(&listTypes, "list", false, "list the action types the daemon accepts")
}
