package hourvault

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hourvault/hourvault/internal/backend"
	"github.com/hourvault/hourvault/internal/config"
	"github.com/hourvault/hourvault/internal/store"
	"github.com/hourvault/hourvault/sdk"
	"github.com/hourvault/hourvault/sdk/stellar"
	"github.com/hourvault/hourvault/wallet"
)

// app holds the dependencies shared by every subcommand. It is populated by the root command's
// PersistentPreRunE.
type app struct {
	envPath   string
	verbose   bool
	assumeYes bool

	cfg     config.Config
	lggr    *zap.SugaredLogger
	out     io.Writer
	store   *store.Store
	rpc     *stellar.Client
	session *wallet.Session
	market  *stellar.Marketplace
	// backend is nil when no API URL is configured.
	backend *backend.Client
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.out = cmd.OutOrStdout()

	if a.lggr, err = newLogger(a.verbose); err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	ctx := sdk.WithLogger(cmd.Context(), a.lggr)
	cmd.SetContext(ctx)

	if err = os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if a.store, err = store.Open(cfg.DBPath); err != nil {
		return err
	}

	signer, err := a.newSigner()
	if err != nil {
		return err
	}

	client := stellar.NewClient(cfg.RPCURL)
	a.rpc = client
	opts := cfg.ExecutorOptions()
	opts.OnStage = a.printStage
	a.market = stellar.NewMarketplace(
		cfg.ContractID,
		cfg.NativeTokenID,
		stellar.NewExecutor(client, signer, opts),
		stellar.NewInspector(client),
	)

	a.session = wallet.NewSession(signer, a.store.Session(), wallet.WithLogger(a.lggr))
	a.session.CheckAvailability(ctx)

	if cfg.APIURL != "" {
		a.backend = backend.NewClient(cfg.APIURL)
	}

	return nil
}

func (a *app) close() error {
	if a.lggr != nil {
		_ = a.lggr.Sync()
	}
	if a.store == nil {
		return nil
	}

	return a.store.Close()
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	if verbose {
		lggr, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}

		return lggr.Sugar(), nil
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	zcfg.Encoding = "console"
	lggr, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	return lggr.Sugar(), nil
}

// newSigner returns the local keypair signer, or a signer that reports itself unavailable when
// no secret key is configured.
func (a *app) newSigner() (sdk.Signer, error) {
	if a.cfg.SecretKey == "" {
		return noSigner{}, nil
	}

	kp, err := stellar.NewKeypairSigner(a.cfg.SecretKey, a.cfg.NetworkPassphrase)
	if err != nil {
		return nil, err
	}

	var confirm stellar.ConfirmFunc
	if a.assumeYes {
		confirm = func(summary string) (bool, error) {
			fmt.Fprintln(a.out, summary)

			return true, nil
		}
	}

	return stellar.NewConfirmingSigner(kp, confirm), nil
}

func (a *app) printStage(stage stellar.Stage) {
	fmt.Fprintln(a.out, color.CyanString("… %s", stage))
}

// requireAddress returns the connected wallet address.
func (a *app) requireAddress() (string, error) {
	return a.session.RequireAddress()
}

var errNoSecretKey = errors.New("no secret key configured")

type noSigner struct{}

func (noSigner) IsAvailable(context.Context) (bool, error) { return false, nil }

func (noSigner) GetAddress(context.Context) (string, error) { return "", errNoSecretKey }

func (noSigner) SignTransaction(context.Context, string, sdk.SignOptions) (string, error) {
	return "", errNoSecretKey
}
