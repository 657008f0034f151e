package hourvault

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func buildVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the RPC server is on the configured network and the contract is answering",
		RunE: func(cmd *cobra.Command, args []string) error {
			network, err := a.rpc.GetNetwork(cmd.Context())
			if err != nil {
				return fmt.Errorf("rpc server %s is not reachable: %w", a.cfg.RPCURL, err)
			}
			if network.Passphrase != a.cfg.NetworkPassphrase {
				return fmt.Errorf("rpc server %s is on network %q, expected %q",
					a.cfg.RPCURL, network.Passphrase, a.cfg.NetworkPassphrase)
			}

			if !a.market.VerifyContract(cmd.Context()) {
				return fmt.Errorf("contract %s is not reachable on %s", a.cfg.ContractID, a.cfg.RPCURL)
			}
			fmt.Fprintf(a.out, "%s contract %s on %s (protocol %d)\n",
				color.GreenString("✓"), a.cfg.ContractID, a.cfg.RPCURL, network.ProtocolVersion)

			return nil
		},
	}
}
