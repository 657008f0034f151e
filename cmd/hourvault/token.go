package hourvault

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hourvault/hourvault/internal/store"
	"github.com/hourvault/hourvault/internal/utils/safecast"
	"github.com/hourvault/hourvault/sdk/stellar"
)

func buildTokenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint, buy and manage time tokens",
	}

	cmd.AddCommand(buildTokenMintCmd(a))
	cmd.AddCommand(buildTokenPurchaseCmd(a))
	cmd.AddCommand(buildTokenUpdateCmd(a))
	cmd.AddCommand(buildTokenDeleteCmd(a))
	cmd.AddCommand(buildTokenShowCmd(a))
	cmd.AddCommand(buildTokenListCmd(a))

	return cmd
}

func buildTokenMintCmd(a *app) *cobra.Command {
	var (
		rate        string
		hours       int
		description string
	)

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Offer hours of your time at an hourly rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			seller, err := a.requireAddress()
			if err != nil {
				return err
			}
			hourlyRate, err := parsePrice(rate)
			if err != nil {
				return err
			}
			h, err := parseHours(hours)
			if err != nil {
				return err
			}

			tokenID, result, err := a.market.MintTimeToken(cmd.Context(), seller, hourlyRate, h, description)
			if err != nil {
				return err
			}
			printResult(a.out, fmt.Sprintf("Minted token #%d", tokenID), result)

			return nil
		},
	}

	cmd.Flags().StringVar(&rate, "rate", "", "Hourly rate in XLM, e.g. 10.5")
	cmd.Flags().IntVar(&hours, "hours", 0, "Hours available")
	cmd.Flags().StringVar(&description, "description", "", "What the buyer gets")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func buildTokenPurchaseCmd(a *app) *cobra.Command {
	var hours int

	cmd := &cobra.Command{
		Use:   "purchase <token-id>",
		Short: "Buy hours of a token and pay the seller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			buyer, err := a.requireAddress()
			if err != nil {
				return err
			}
			tokenID, err := parseID("token", args[0])
			if err != nil {
				return err
			}
			h, err := parseHours(hours)
			if err != nil {
				return err
			}

			token := a.market.GetToken(ctx, tokenID)
			if token == nil {
				return fmt.Errorf("token #%d not found", tokenID)
			}
			if h > token.HoursAvailable {
				return fmt.Errorf("token #%d has only %d hours available", tokenID, token.HoursAvailable)
			}

			result, err := a.market.PurchaseToken(ctx, buyer, tokenID, h, token.Seller, token.HourlyRate)
			if err != nil {
				return err
			}
			printResult(a.out, fmt.Sprintf("Purchased %d hours of token #%d", h, tokenID), result)

			receiptID, ok := stellar.ReturnedID(result)
			if !ok {
				return nil
			}
			_, _, err = a.store.RecordMeeting(store.MeetingInput{
				ReceiptID:   strconv.FormatUint(receiptID, 10),
				Seller:      token.Seller,
				Buyer:       buyer,
				Hours:       h,
				Description: token.Description,
			})
			if err != nil {
				a.lggr.Warnf("failed to record meeting for receipt %d: %v", receiptID, err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 0, "Hours to buy")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func buildTokenUpdateCmd(a *app) *cobra.Command {
	var hours int

	cmd := &cobra.Command{
		Use:   "update <token-id>",
		Short: "Change the hours available on one of your tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seller, err := a.requireAddress()
			if err != nil {
				return err
			}
			tokenID, err := parseID("token", args[0])
			if err != nil {
				return err
			}
			// zero hours pauses the token without deleting it
			h, err := safecast.IntToUint32(hours)
			if err != nil {
				return fmt.Errorf("invalid hours: %w", err)
			}

			result, err := a.market.UpdateAvailability(cmd.Context(), seller, tokenID, h)
			if err != nil {
				return err
			}
			printResult(a.out, fmt.Sprintf("Token #%d now has %d hours available", tokenID, h), result)

			return nil
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 0, "New hours available")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func buildTokenDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <token-id>",
		Short: "Remove one of your tokens from the marketplace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seller, err := a.requireAddress()
			if err != nil {
				return err
			}
			tokenID, err := parseID("token", args[0])
			if err != nil {
				return err
			}

			result, err := a.market.DeleteToken(cmd.Context(), seller, tokenID)
			if err != nil {
				return err
			}
			printResult(a.out, fmt.Sprintf("Deleted token #%d", tokenID), result)

			return nil
		},
	}
}

func buildTokenShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <token-id>",
		Short: "Show a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := parseID("token", args[0])
			if err != nil {
				return err
			}
			token := a.market.GetToken(cmd.Context(), tokenID)
			if token == nil {
				return fmt.Errorf("token #%d not found", tokenID)
			}
			printToken(a.out, a, token)

			return nil
		},
	}
}

func buildTokenListCmd(a *app) *cobra.Command {
	var (
		seller string
		mine   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tokens, optionally only those of one seller",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if mine {
				addr, err := a.requireAddress()
				if err != nil {
					return err
				}
				seller = addr
			}

			var ids []uint64
			if seller != "" {
				ids = a.market.GetSellerTokens(ctx, seller)
			} else {
				count := a.market.GetTokenCount(ctx)
				for id := uint64(1); id <= count; id++ {
					ids = append(ids, id)
				}
			}

			shown := 0
			for _, id := range ids {
				if token := a.market.GetToken(ctx, id); token != nil {
					printToken(a.out, a, token)
					shown++
				}
			}
			if shown == 0 {
				fmt.Fprintln(a.out, "No tokens found")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&seller, "seller", "", "Only tokens of this seller address")
	cmd.Flags().BoolVar(&mine, "mine", false, "Only tokens of the connected wallet")
	cmd.MarkFlagsMutuallyExclusive("seller", "mine")

	return cmd
}
