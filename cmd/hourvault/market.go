package hourvault

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/hourvault/hourvault/internal/backend"
)

var errNoBackend = errors.New("no API URL configured; set HOURVAULT_API_URL")

func buildMarketCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Browse and buy on the secondary market",
	}

	cmd.AddCommand(buildMarketBuyCmd(a))
	cmd.AddCommand(buildMarketListingsCmd(a))
	cmd.AddCommand(buildMarketBrowseCmd(a))

	return cmd
}

func buildMarketBuyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <receipt-id>",
		Short: "Buy a listed receipt and pay its seller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			buyer, err := a.requireAddress()
			if err != nil {
				return err
			}
			receiptID, err := parseID("receipt", args[0])
			if err != nil {
				return err
			}

			listing := a.market.GetListing(ctx, receiptID)
			if listing == nil || !listing.IsActive {
				return fmt.Errorf("receipt #%d is not listed for sale", receiptID)
			}
			if listing.Seller == buyer {
				return errors.New("you cannot buy your own listing")
			}

			result, err := a.market.BuyFromSecondary(ctx, buyer, receiptID, listing.Seller, listing.Price)
			if err != nil {
				return err
			}
			printResult(a.out, fmt.Sprintf("Bought receipt #%d for %s", receiptID, xlm(listing.Price)), result)

			return nil
		},
	}
}

func buildMarketListingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "listings",
		Short: "List active secondary-market listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			shown := 0
			for id := uint64(1); id <= a.market.GetReceiptCount(ctx); id++ {
				listing := a.market.GetListing(ctx, id)
				if listing == nil || !listing.IsActive {
					continue
				}
				hours := ""
				if receipt := a.market.GetReceipt(ctx, id); receipt != nil {
					hours = fmt.Sprintf("  %d hours", receipt.Hours)
				}
				fmt.Fprintf(a.out, "receipt #%d  %s%s  seller %s\n", id, xlm(listing.Price), hours, a.label(listing.Seller))
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(a.out, "No active listings")
			}

			return nil
		},
	}
}

func buildMarketBrowseCmd(a *app) *cobra.Command {
	var filter backend.TokenFilter

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Search the marketplace index",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.backend == nil {
				return errNoBackend
			}

			tokens := a.backend.ListTokens(cmd.Context(), filter)
			if len(tokens) == 0 {
				fmt.Fprintln(a.out, "No tokens found")

				return nil
			}
			for _, t := range tokens {
				title := t.Title
				if title == "" {
					title = t.Description
				}
				fmt.Fprintf(a.out, "#%d  %s  %s/hour  %d hours  seller %s\n",
					t.TokenID, title, xlm(big.NewInt(t.HourlyRate)), t.HoursAvailable, a.label(t.SellerAddress))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Search, "search", "", "Free-text search")
	cmd.Flags().StringVar(&filter.Category, "category", "", "Category")
	cmd.Flags().StringVar(&filter.Sort, "sort", "", "Sort order, e.g. price_asc")
	cmd.Flags().Float64Var(&filter.MinPrice, "min-price", 0, "Minimum hourly rate in XLM")
	cmd.Flags().Float64Var(&filter.MaxPrice, "max-price", 0, "Maximum hourly rate in XLM")

	return cmd
}
