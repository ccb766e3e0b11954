package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"healthshop-client/internal/api"
	"healthshop-client/internal/config"
	"healthshop-client/internal/credentials"
	authstore "healthshop-client/internal/store/auth"
	cartstore "healthshop-client/internal/store/cart"
	wishliststore "healthshop-client/internal/store/wishlist"
)

// app wires the client stack once per invocation: config, durable
// credentials, the API client and the stores layered on top of it.
type app struct {
	cfg      config.Client
	logger   *log.Logger
	creds    *credentials.Store
	client   *api.Client
	auth     *authstore.Store
	cart     *cartstore.Store
	wishlist *wishliststore.Store
}

func newApp() *app {
	cfg := config.ClientFromEnv()
	logger := log.New(os.Stderr, "[shopctl] ", log.LstdFlags|log.LUTC)
	creds := credentials.NewStore(cfg.HomeDir)
	client := api.New(cfg, creds, logger)
	return &app{
		cfg:      cfg,
		logger:   logger,
		creds:    creds,
		client:   client,
		auth:     authstore.New(client, creds),
		cart:     cartstore.New(client),
		wishlist: wishliststore.New(client),
	}
}

// newAuthedApp is newApp for commands that refuse to run without a session.
func newAuthedApp() (*app, error) {
	a := newApp()
	if err := a.auth.RequireSession(); err != nil {
		return nil, fmt.Errorf("%w (run shopctl login first)", err)
	}
	return a, nil
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shopctl",
		Short:         "Command-line client for the health shop API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		loginCmd(),
		registerCmd(),
		logoutCmd(),
		whoamiCmd(),
		productsCmd(),
		categoriesCmd(),
		searchCmd(),
		cartCmd(),
		checkoutCmd(),
		wishlistCmd(),
		ordersCmd(),
		reviewCmd(),
		recommendationsCmd(),
		profileCmd(),
		aiCmd(),
		adminCmd(),
	)
	return cmd
}

// friendlyError rewrites transport failures into the messages users should
// see. Application errors (APIError, cobra usage errors) pass through.
func friendlyError(err error) error {
	switch {
	case err == nil:
		return nil
	case api.IsTimeout(err):
		return errors.New("Request timed out. Make sure the backend server is running.")
	case api.IsUnreachable(err):
		return errors.New("Cannot connect to server. Check HEALTHSHOP_API_URL and that the backend is running.")
	}
	return err
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func moneyf(v float64) string {
	return money(decimal.NewFromFloat(v))
}

func priceOf(listPrice float64, discount *float64) string {
	if discount != nil {
		return fmt.Sprintf("%s (was %s)", moneyf(*discount), moneyf(listPrice))
	}
	return moneyf(listPrice)
}
