package hourvault

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hourvault/hourvault/internal/store"
)

func buildMeetingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "meetings",
		Short: "List meetings recorded for the connected wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := a.requireAddress()
			if err != nil {
				return err
			}

			meetings, err := a.store.MeetingsFor(address)
			if err != nil {
				return err
			}
			if len(meetings) == 0 {
				fmt.Fprintln(a.out, "No meetings yet")

				return nil
			}
			for _, m := range meetings {
				counterpart, verb := m.Seller, "with"
				if m.Role == store.RoleSeller {
					counterpart, verb = m.Buyer, "for"
				}
				fmt.Fprintf(a.out, "%s  %d hours %s %s  receipt #%s\n",
					m.Timestamp.Local().Format("2006-01-02 15:04"), m.Hours, verb, a.label(counterpart), m.ReceiptID)
				if m.Description != "" {
					fmt.Fprintf(a.out, "     %s\n", m.Description)
				}
			}

			return nil
		},
	}
}
