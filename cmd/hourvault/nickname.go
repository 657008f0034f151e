package hourvault

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hourvault/hourvault/internal/store"
)

func buildNicknameCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nickname",
		Short: "Manage local nicknames for addresses",
	}

	var description string
	set := &cobra.Command{
		Use:   "set <address> <name>",
		Short: "Save a nickname for an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := a.store.UpsertIdentity(args[0], store.IdentityInput{Name: args[1], Description: description})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s is now %s\n", store.ShortAddress(identity.Address), identity.Name)

			return nil
		},
	}
	set.Flags().StringVar(&description, "description", "", "Optional note")

	cmd.AddCommand(set)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <address>",
		Short: "Remove a nickname",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.store.RemoveIdentity(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List nicknames",
		RunE: func(cmd *cobra.Command, args []string) error {
			identities, err := a.store.ListIdentities()
			if err != nil {
				return err
			}
			for _, identity := range identities {
				fmt.Fprintf(a.out, "%-20s %s\n", identity.Name, identity.Address)
			}

			return nil
		},
	})

	return cmd
}
