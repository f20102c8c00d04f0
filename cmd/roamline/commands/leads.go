package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/roamline/roamline/domain"
	"github.com/roamline/roamline/form"
)

var (
	addName       string
	addEmail      string
	addPhone      string
	addValue      float64
	addTravelDate string
	addPriority   string
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Inspect and mutate the leads collection",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all leads, newest first",
	RunE:  runLeadsList,
}

var leadsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a lead from flag values",
	RunE:  runLeadsAdd,
}

func init() {
	leadsAddCmd.Flags().StringVar(&addName, "name", "", "Customer name (required)")
	leadsAddCmd.Flags().StringVar(&addEmail, "email", "", "Customer email")
	leadsAddCmd.Flags().StringVar(&addPhone, "phone", "", "Customer phone")
	leadsAddCmd.Flags().Float64Var(&addValue, "value", 0, "Estimated value")
	leadsAddCmd.Flags().StringVar(&addTravelDate, "travel-date", "", "Requested travel dates")
	leadsAddCmd.Flags().StringVar(&addPriority, "priority", "", "Priority (low, medium, high)")
	leadsAddCmd.MarkFlagRequired("name")

	leadsCmd.AddCommand(leadsListCmd)
	leadsCmd.AddCommand(leadsAddCmd)
	rootCmd.AddCommand(leadsCmd)
}

// statusColor maps a lead status to a terminal color.
func statusColor(status string) *color.Color {
	switch status {
	case domain.LeadStatusFresh:
		return color.New(color.FgCyan)
	case domain.LeadStatusContacted, domain.LeadStatusQualified:
		return color.New(color.FgYellow)
	case domain.LeadStatusConverted:
		return color.New(color.FgGreen)
	case domain.LeadStatusLost:
		return color.New(color.FgRed)
	default:
		return color.New(color.Reset)
	}
}

func runLeadsList(cmd *cobra.Command, args []string) error {
	back, err := openBackoffice()
	if err != nil {
		return err
	}
	defer back.Close()

	env := back.Repo.ListLeads()
	if env == nil || len(env.Data) == 0 {
		fmt.Println("No leads yet.")
		return nil
	}

	for _, lead := range env.Data {
		status := statusColor(lead.Status).Sprint(lead.Status)
		fmt.Printf("%4d  %-24s %-10s %10.0f  %s\n", lead.ID, lead.CustomerName, status, lead.Budget, lead.AssignedAgent)
	}
	fmt.Printf("\n%d lead(s)\n", env.Meta.Total)

	return nil
}

func runLeadsAdd(cmd *cobra.Command, args []string) error {
	back, err := openBackoffice()
	if err != nil {
		return err
	}
	defer back.Close()

	input := form.LeadForm{
		Name:           addName,
		Email:          addEmail,
		Phone:          addPhone,
		EstimatedValue: addValue,
		TravelDate:     addTravelDate,
		Priority:       addPriority,
	}

	env := back.Repo.AddLead(form.ToLeadRecord(input))
	if env == nil || len(env.Data) == 0 {
		return fmt.Errorf("adding lead %q failed", addName)
	}

	color.Green("Created lead #%d (%s)", env.Data[0].ID, env.Data[0].CustomerName)
	return nil
}
