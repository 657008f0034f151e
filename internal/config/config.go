// Package config loads the CLI configuration from a .env file and HOURVAULT_* environment
// variables. Environment variables take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/stellar/go-stellar-sdk/strkey"

	"github.com/hourvault/hourvault/sdk/stellar"
	"github.com/hourvault/hourvault/types"
)

const (
	EnvRPCURL            = "HOURVAULT_RPC_URL"
	EnvNetworkPassphrase = "HOURVAULT_NETWORK_PASSPHRASE"
	EnvContractID        = "HOURVAULT_CONTRACT_ID"
	EnvNativeTokenID     = "HOURVAULT_NATIVE_TOKEN_ID"
	EnvAPIURL            = "HOURVAULT_API_URL"
	EnvSecretKey         = "HOURVAULT_SECRET_KEY"
	EnvDBPath            = "HOURVAULT_DB_PATH"
	EnvBaseFee           = "HOURVAULT_BASE_FEE"
	EnvTxTimeout         = "HOURVAULT_TX_TIMEOUT"
	EnvPollInterval      = "HOURVAULT_POLL_INTERVAL"
	EnvMaxPollAttempts   = "HOURVAULT_MAX_POLL_ATTEMPTS"
)

// Testnet deployment.
const (
	DefaultRPCURL            = "https://soroban-testnet.stellar.org"
	DefaultNetworkPassphrase = "Test SDF Network ; September 2015"
	DefaultContractID        = "CASAHQ6RD2FBISDFVONK52OQJ62GZPVFPENSWJENS735GBELKBKOZE4L"
	DefaultNativeTokenID     = "CDLZFC3SYJYDZT7K67VZ75HPJVIEUVNIXF47ZG2FB2RMQQVU2HHGCYSC"
	DefaultAPIURL            = "http://localhost:3001/api"
)

type Config struct {
	RPCURL            string `validate:"required,url"`
	NetworkPassphrase string `validate:"required"`
	ContractID        string `validate:"required,contract"`
	NativeTokenID     string `validate:"required,contract"`
	// APIURL may be empty, which disables profile and listing enrichment.
	APIURL    string `validate:"omitempty,url"`
	SecretKey string
	DBPath    string `validate:"required"`

	BaseFee         int64 `validate:"gte=100"`
	TxTimeout       types.Duration
	PollInterval    types.Duration
	MaxPollAttempts int `validate:"gte=1"`
}

// Default returns the testnet configuration with the database under the user's home directory.
func Default() Config {
	return Config{
		RPCURL:            DefaultRPCURL,
		NetworkPassphrase: DefaultNetworkPassphrase,
		ContractID:        DefaultContractID,
		NativeTokenID:     DefaultNativeTokenID,
		APIURL:            DefaultAPIURL,
		DBPath:            defaultDBPath(),
		BaseFee:           100,
		TxTimeout:         types.NewDuration(stellar.DefaultTxTimeout),
		PollInterval:      types.NewDuration(stellar.DefaultPollInterval),
		MaxPollAttempts:   stellar.DefaultMaxPollAttempts,
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hourvault.db"
	}

	return filepath.Join(home, ".hourvault", "hourvault.db")
}

// Load reads the .env file at path, if it exists, and overlays the process environment.
func Load(path string) (Config, error) {
	values := map[string]string{}
	if path != "" {
		fileValues, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, "HOURVAULT_") {
			values[k] = v
		}
	}

	return FromMap(values)
}

// FromMap builds a validated Config from HOURVAULT_* keys. Missing or empty keys keep their
// defaults.
func FromMap(values map[string]string) (Config, error) {
	cfg := Default()

	strs := map[string]*string{
		EnvRPCURL:            &cfg.RPCURL,
		EnvNetworkPassphrase: &cfg.NetworkPassphrase,
		EnvContractID:        &cfg.ContractID,
		EnvNativeTokenID:     &cfg.NativeTokenID,
		EnvAPIURL:            &cfg.APIURL,
		EnvSecretKey:         &cfg.SecretKey,
		EnvDBPath:            &cfg.DBPath,
	}
	for key, dst := range strs {
		if v := strings.TrimSpace(values[key]); v != "" {
			*dst = v
		}
	}

	if v := strings.TrimSpace(values[EnvBaseFee]); v != "" {
		fee, err := cast.ToInt64E(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvBaseFee, err)
		}
		cfg.BaseFee = fee
	}
	if v := strings.TrimSpace(values[EnvMaxPollAttempts]); v != "" {
		n, err := cast.ToIntE(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvMaxPollAttempts, err)
		}
		cfg.MaxPollAttempts = n
	}

	durations := map[string]*types.Duration{
		EnvTxTimeout:    &cfg.TxTimeout,
		EnvPollInterval: &cfg.PollInterval,
	}
	for key, dst := range durations {
		v := strings.TrimSpace(values[key])
		if v == "" {
			continue
		}
		d, err := types.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("contract", func(fl validator.FieldLevel) bool {
		return strkey.IsValidContractAddress(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.TxTimeout.Duration <= 0 {
		return fmt.Errorf("invalid configuration: %s must be positive", EnvTxTimeout)
	}
	if c.PollInterval.Duration <= 0 {
		return fmt.Errorf("invalid configuration: %s must be positive", EnvPollInterval)
	}

	return nil
}

// ExecutorOptions maps the transaction settings onto stellar.ExecutorOptions.
func (c Config) ExecutorOptions() stellar.ExecutorOptions {
	return stellar.ExecutorOptions{
		NetworkPassphrase: c.NetworkPassphrase,
		BaseFee:           c.BaseFee,
		TxTimeout:         c.TxTimeout.Duration,
		PollInterval:      c.PollInterval.Duration,
		MaxPollAttempts:   c.MaxPollAttempts,
	}
}
