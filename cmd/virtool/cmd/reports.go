package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/OfficialArms/virtool/internal/domain/report"
)

var reportLimit int

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Show recent unexpected API failures",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reports, err := view.Reports(cmd.Context(), reportLimit)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(reports)
		}
		return printReportsTable(reports)
	},
}

func printReportsTable(reports []report.Report) error {
	if len(reports) == 0 {
		fmt.Println("No reports")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTYPE\tSTATUS\tMESSAGE")
	for _, r := range reports {
		status := fmt.Sprint(r.Status)
		if r.Status >= 500 || r.Status == 0 {
			status = color.RedString(status)
		} else {
			status = color.YellowString(status)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.ReportedAt.Local().Format(time.DateTime), r.Type, status, r.Message)
	}
	return w.Flush()
}

func init() {
	reportsCmd.Flags().IntVar(&reportLimit, "limit", report.DefaultRecentLimit, "number of reports")
}
