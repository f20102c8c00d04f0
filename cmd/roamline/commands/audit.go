package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the mutation audit trail",
	RunE:  runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	back, err := openBackoffice()
	if err != nil {
		return err
	}
	defer back.Close()

	trail := back.Repo.AuditTrail()
	if len(trail) == 0 {
		fmt.Println("No audit entries yet.")
		return nil
	}

	for _, entry := range trail {
		line := fmt.Sprintf("%s  %-7s %-12s #%d", entry.Timestamp.Format("2006-01-02 15:04:05"), entry.Action, entry.Collection, entry.RecordID)
		if entry.Note != "" {
			line += "  (" + entry.Note + ")"
		}
		fmt.Println(line)
	}

	return nil
}
