package hourvault

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hourvault/hourvault/types"
)

func buildReceiptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Inspect, redeem and resell purchased hours",
	}

	cmd.AddCommand(buildReceiptListCmd(a))
	cmd.AddCommand(buildReceiptShowCmd(a))
	cmd.AddCommand(buildReceiptRedeemCmd(a))
	cmd.AddCommand(buildReceiptListOnSecondaryCmd(a))

	return cmd
}

func buildReceiptListCmd(a *app) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List receipts held by an address, the connected wallet by default",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if owner == "" {
				addr, err := a.requireAddress()
				if err != nil {
					return err
				}
				owner = addr
			}

			ids := a.market.GetOwnerReceipts(ctx, owner)
			if len(ids) == 0 {
				fmt.Fprintln(a.out, "No receipts found")

				return nil
			}
			for _, id := range ids {
				if receipt := a.market.GetReceipt(ctx, id); receipt != nil {
					printReceipt(a.out, a, receipt, a.store.IsRedeemed(owner, id))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner address")

	return cmd
}

func buildReceiptShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <receipt-id>",
		Short: "Show a receipt and its secondary listing, if any",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			receiptID, err := parseID("receipt", args[0])
			if err != nil {
				return err
			}
			receipt := a.market.GetReceipt(ctx, receiptID)
			if receipt == nil {
				return fmt.Errorf("receipt #%d not found", receiptID)
			}
			printReceipt(a.out, a, receipt, a.store.IsRedeemed(receipt.Owner, receiptID))
			if receipt.Owner != "" {
				fmt.Fprintf(a.out, "     owner %s\n", a.label(receipt.Owner))
			}
			if listing := a.market.GetListing(ctx, receiptID); listing != nil && listing.IsActive {
				fmt.Fprintf(a.out, "     listed for %s by %s\n", xlm(listing.Price), a.label(listing.Seller))
			}

			return nil
		},
	}
}

func buildReceiptRedeemCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "redeem <receipt-id>",
		Short: "Redeem a receipt once the meeting took place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := a.requireAddress()
			if err != nil {
				return err
			}
			receiptID, err := parseID("receipt", args[0])
			if err != nil {
				return err
			}

			result, err := a.market.RedeemReceipt(cmd.Context(), owner, receiptID)
			if err != nil {
				return err
			}
			printResult(a.out, fmt.Sprintf("Redeemed receipt #%d", receiptID), result)

			if err = a.store.MarkRedeemed(owner, receiptID); err != nil {
				a.lggr.Warnf("failed to mark receipt %d as redeemed: %v", receiptID, err)
			}

			return nil
		},
	}
}

func buildReceiptListOnSecondaryCmd(a *app) *cobra.Command {
	var price string

	cmd := &cobra.Command{
		Use:   "list-on-secondary <receipt-id>",
		Short: "Offer a receipt for resale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seller, err := a.requireAddress()
			if err != nil {
				return err
			}
			receiptID, err := parseID("receipt", args[0])
			if err != nil {
				return err
			}
			stroops, err := parsePrice(price)
			if err != nil {
				return err
			}

			result, err := a.market.ListOnSecondary(cmd.Context(), seller, receiptID, stroops)
			if err != nil {
				return err
			}
			printResult(a.out, fmt.Sprintf("Listed receipt #%d for %s", receiptID, xlm(stroops)), result)
			fmt.Fprintf(a.out, "  original seller royalty: %s\n", xlm(types.RoyaltyStroops(stroops)))

			return nil
		},
	}

	cmd.Flags().StringVar(&price, "price", "", "Asking price in XLM")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}
