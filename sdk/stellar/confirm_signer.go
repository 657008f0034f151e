package stellar

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/stellar/go-stellar-sdk/txnbuild"

	"github.com/hourvault/hourvault/sdk"
)

// ErrUserDeclined is returned when the user refuses to sign at the prompt.
var ErrUserDeclined = errors.New("user declined the signature request")

// ConfirmFunc asks the user to approve a signature request described by summary.
type ConfirmFunc func(summary string) (bool, error)

var _ sdk.Signer = &ConfirmingSigner{}

// ConfirmingSigner asks for approval before every signature, the way a wallet extension shows
// its approval popup.
type ConfirmingSigner struct {
	sdk.Signer
	confirm ConfirmFunc
}

// NewConfirmingSigner wraps signer. A nil confirm uses an interactive terminal prompt.
func NewConfirmingSigner(signer sdk.Signer, confirm ConfirmFunc) *ConfirmingSigner {
	if confirm == nil {
		confirm = PromptConfirm
	}

	return &ConfirmingSigner{Signer: signer, confirm: confirm}
}

func (s *ConfirmingSigner) SignTransaction(ctx context.Context, envelopeXDR string, opts sdk.SignOptions) (string, error) {
	ok, err := s.confirm(SummarizeEnvelope(envelopeXDR))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrUserDeclined
	}

	return s.Signer.SignTransaction(ctx, envelopeXDR, opts)
}

// PromptConfirm prints summary and asks a yes/no question on the terminal. Ctrl-C counts as
// a refusal.
func PromptConfirm(summary string) (bool, error) {
	fmt.Println(summary)

	prompt := promptui.Prompt{
		Label:     "Sign this transaction",
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// SummarizeEnvelope describes the operations of a base64 envelope in one line each.
func SummarizeEnvelope(envelopeXDR string) string {
	generic, err := txnbuild.TransactionFromXDR(envelopeXDR)
	if err != nil {
		return "unreadable transaction envelope"
	}
	tx, ok := generic.Transaction()
	if !ok {
		return "fee bump transaction"
	}

	lines := []string{fmt.Sprintf("Transaction from %s (max fee %d stroops):", tx.SourceAccount().AccountID, tx.MaxFee())}
	for _, op := range tx.Operations() {
		switch o := op.(type) {
		case *txnbuild.InvokeHostFunction:
			if args, ok := o.HostFunction.GetInvokeContract(); ok {
				contract, _ := addressString(args.ContractAddress)
				lines = append(lines, fmt.Sprintf("  call %s on %s (%d args)", args.FunctionName, contract, len(args.Args)))

				continue
			}
			lines = append(lines, "  host function invocation")
		case *txnbuild.Payment:
			lines = append(lines, fmt.Sprintf("  pay %s XLM to %s", o.Amount, o.Destination))
		default:
			lines = append(lines, fmt.Sprintf("  %T", op))
		}
	}

	return strings.Join(lines, "\n")
}
