package hourvault

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cast"

	"github.com/hourvault/hourvault/internal/store"
	"github.com/hourvault/hourvault/internal/utils/safecast"
	"github.com/hourvault/hourvault/types"
)

func parseID(kind, raw string) (uint64, error) {
	if strings.HasPrefix(strings.TrimSpace(raw), "-") {
		return 0, fmt.Errorf("invalid %s id %q", kind, raw)
	}
	id, err := cast.ToUint64E(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q: %w", kind, raw, err)
	}

	return id, nil
}

func parseHours(hours int) (uint32, error) {
	if hours <= 0 {
		return 0, fmt.Errorf("hours must be positive, got %d", hours)
	}

	return safecast.IntToUint32(hours)
}

// parsePrice converts a display amount such as "10.5" to stroops.
func parsePrice(raw string) (*big.Int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("a price is required")
	}

	return types.ToStroopsNonNegative(raw)
}

func xlm(v *big.Int) string {
	return types.FormatStroops(v) + " XLM"
}

// label shows a nickname next to the shortened address when one is saved.
func (a *app) label(address string) string {
	short := store.ShortAddress(address)
	if name := a.store.DisplayName(address); name != short {
		return fmt.Sprintf("%s (%s)", name, short)
	}

	return short
}

func printResult(w io.Writer, what string, result types.TransactionResult) {
	fmt.Fprintf(w, "%s %s\n", color.GreenString("✓ %s", what), result.Hash)
}

func printToken(w io.Writer, a *app, t *types.TimeToken) {
	fmt.Fprintf(w, "#%d  %s/hour  %d hours  seller %s\n",
		t.ID, xlm(t.HourlyRate), t.HoursAvailable, a.label(t.Seller))
	if t.Description != "" {
		fmt.Fprintf(w, "     %s\n", t.Description)
	}
}

func printReceipt(w io.Writer, a *app, r *types.Receipt, redeemed bool) {
	status := color.GreenString("active")
	if redeemed {
		status = color.YellowString("redeemed")
	}
	fmt.Fprintf(w, "#%d  %d hours from %s  paid %s  [%s]\n",
		r.ID, r.Hours, a.label(r.Seller), xlm(r.PurchasePrice), status)
	if r.Description != "" {
		fmt.Fprintf(w, "     %s\n", r.Description)
	}
}
