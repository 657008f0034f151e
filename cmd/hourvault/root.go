package hourvault

import (
	"github.com/spf13/cobra"
)

func BuildHourvaultCmd() *cobra.Command {
	a := &app{}

	cmd := cobra.Command{
		Use:           "hourvault",
		Short:         "Buy and sell hours of time on the hourvault marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	cmd.PersistentFlags().StringVar(&a.envPath, "env", ".env", "Path of the .env file with HOURVAULT_* settings")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&a.assumeYes, "yes", "y", false, "Sign transactions without asking for confirmation")

	cmd.AddCommand(buildWalletCmd(a))
	cmd.AddCommand(buildTokenCmd(a))
	cmd.AddCommand(buildReceiptCmd(a))
	cmd.AddCommand(buildMarketCmd(a))
	cmd.AddCommand(buildProfileCmd(a))
	cmd.AddCommand(buildMeetingsCmd(a))
	cmd.AddCommand(buildNicknameCmd(a))
	cmd.AddCommand(buildVerifyCmd(a))

	return &cmd
}
