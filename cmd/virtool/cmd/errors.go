package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/OfficialArms/virtool/internal/domain/action"
)

var errorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "Show user-facing errors",
	RunE: func(cmd *cobra.Command, _ []string) error {
		raw, err := view.State(cmd.Context(), "errors")
		if err != nil {
			return err
		}
		if jsonOutput {
			return printRaw(raw)
		}

		var errs map[string]*action.Failure
		if err := json.Unmarshal(raw, &errs); err != nil {
			return fmt.Errorf("decode errors: %w", err)
		}

		keys := make([]string, 0, len(errs))
		for k, v := range errs {
			if v != nil {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)

		if len(keys) == 0 {
			fmt.Println("No errors")
			return nil
		}

		for _, k := range keys {
			f := errs[k]
			fmt.Printf("%s %s %s\n", color.RedString("%d", f.Status), color.CyanString(k), f.Message)
		}
		return nil
	},
}

var clearErrorCmd = &cobra.Command{
	Use:   "clear KEY",
	Short: "Clear one error key, e.g. CREATE_SAMPLE_ERROR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := view.ClearError(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println(color.GreenString("✓"), "cleared", args[0])
		return nil
	},
}

func init() {
	errorsCmd.AddCommand(clearErrorCmd)
}
