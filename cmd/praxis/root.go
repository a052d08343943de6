package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/matt-wil/primalArtTherapy/internal/config"
	"github.com/matt-wil/primalArtTherapy/internal/store"
)

// st is the store opened for the duration of one command invocation.
var st *store.Store

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	var dbPath string

	root := &cobra.Command{
		Use:          "praxis",
		Short:        "Record keeper for the Primal Art Therapy practice",
		Long:         "praxis manages the practice database: clients, receipts, products, vendors, session protocols and published articles.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			st, err = store.Open(dbPath)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if st == nil {
				return nil
			}
			return st.Close()
		},
	}
	root.PersistentFlags().StringVar(&dbPath, "db", cfg.DatabasePath, "path to the practice database file")

	root.AddCommand(
		newClientCmd(),
		newReceiptCmd(),
		newPurchaseCmd(),
		newProductCmd(),
		newVendorCmd(),
		newProtocolCmd(),
		newArticleCmd(),
		newFAQCmd(),
	)
	return root
}

// parseID reads a positional argument as a record id.
func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(id), nil
}

// parseDate reads a YYYY-MM-DD flag value.
func parseDate(value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return d, nil
}
