package hourvault

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hourvault/hourvault/wallet"
)

func buildWalletCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Connect or disconnect the signing wallet",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "connect",
		Short: "Authorize the configured key for this session",
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := a.session.Connect(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s %s\n", color.GreenString("Connected"), a.label(address))

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disconnect",
		Short: "Forget the connected address",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.Disconnect(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Disconnected")

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the wallet session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := a.session.Snapshot()
			fmt.Fprintf(a.out, "State:   %s\n", stateString(snap.State))
			if snap.Connected() {
				fmt.Fprintf(a.out, "Address: %s\n", snap.Address)
				if identity, err := a.store.GetIdentity(snap.Address); err == nil {
					fmt.Fprintf(a.out, "Name:    %s\n", identity.Name)
				}
			}
			if snap.LastError != "" {
				fmt.Fprintf(a.out, "Error:   %s\n", color.RedString(snap.LastError))
			}

			return nil
		},
	})

	return cmd
}

func stateString(s wallet.State) string {
	switch s {
	case wallet.StateConnected:
		return color.GreenString(s.String())
	case wallet.StateAvailableDisconnected:
		return color.YellowString(s.String())
	case wallet.StateUnavailable:
		return color.RedString(s.String())
	default:
		return s.String()
	}
}
