// Command bazaar is a terminal client for the Bazaar storefront backend.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bazaar-shop/bazaar/client"
	"github.com/bazaar-shop/bazaar/client/auth"
	"github.com/bazaar-shop/bazaar/client/internal/logger"
)

var errNotLoggedIn = errors.New("not logged in; run `bazaar login` first")

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// app carries flag values and the session opened for a single command.
type app struct {
	apiURL     string
	configPath string
	logFormat  string
	debug      bool

	cfg         *client.Config
	log         zerolog.Logger
	client      *client.Client
	store       *auth.Store
	closeTokens func() error
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "bazaar",
		Short:         "Browse the Bazaar catalogue, manage your cart and place orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logger.New("bazaar", a.logFormat, cmd.ErrOrStderr(), a.debug)
			if err != nil {
				return err
			}
			a.log = l
			log.Logger = l
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "Backend base URL (overrides BAZAAR_API_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable debug logging and HTTP dumps")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", logger.FormatConsole, "Log format: console or json")

	rootCmd.AddCommand(
		newRegisterCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newStatusCmd(a),
		newWhoamiCmd(a),
		newProductsCmd(a),
		newCategoriesCmd(a),
		newRateCmd(a),
		newCartCmd(a),
		newAddressesCmd(a),
		newOrdersCmd(a),
		newPayCmd(a),
	)
	return rootCmd
}

// open loads configuration and builds the client and auth store.
func (a *app) open() error {
	cfg, err := client.ReadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.apiURL != "" {
		cfg.BaseURL = a.apiURL
	}
	if a.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	c, err := client.NewFromConfig(cfg, client.WithLogger(a.log))
	if err != nil {
		return err
	}
	tokens, closeTokens, err := cfg.OpenTokenStore()
	if err != nil {
		_ = c.Close()
		return err
	}
	a.client = c
	a.closeTokens = closeTokens
	a.store = auth.NewStore(c, tokens, a.log)
	return nil
}

func (a *app) close() {
	if a.closeTokens != nil {
		if err := a.closeTokens(); err != nil {
			a.log.Warn().Err(err).Msg("closing token store")
		}
	}
	if a.client != nil {
		_ = a.client.Close()
	}
}

// run wraps fn with session setup, a request deadline and teardown.
func (a *app) run(fn func(ctx context.Context, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.open(); err != nil {
			return err
		}
		defer a.close()

		ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.HTTPTimeout)
		defer cancel()
		return fn(ctx, cmd, args)
	}
}

// token returns the persisted access token or errNotLoggedIn.
func (a *app) token(ctx context.Context) (string, error) {
	tok, err := a.store.Token(ctx)
	if err != nil {
		return "", err
	}
	if tok == "" {
		return "", errNotLoggedIn
	}
	return tok, nil
}

// printJSON writes v to w as indented JSON. Raw documents are re-indented
// without decoding.
func printJSON(w io.Writer, v any) error {
	var b []byte
	if doc, ok := v.(client.Document); ok {
		var buf bytes.Buffer
		if err := json.Indent(&buf, doc, "", "  "); err != nil {
			return fmt.Errorf("backend returned invalid JSON: %w", err)
		}
		b = buf.Bytes()
	} else {
		var err error
		if b, err = json.MarshalIndent(v, "", "  "); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, string(b))
	return err
}
