package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matt-wil/primalArtTherapy/internal/store"
)

func newPurchaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purchase",
		Short: "Manage purchase receipts",
	}
	cmd.AddCommand(purchaseAddCmd(), purchaseListCmd(), purchaseDeleteCmd())
	return cmd
}

func purchaseAddCmd() *cobra.Command {
	var (
		date, method, desc, category, notes, image string
		amount, tax                                float64
	)
	cmd := &cobra.Command{
		Use:   "add <vendor-id>",
		Short: "Record a purchase receipt from a vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vendorID, err := parseID(args[0])
			if err != nil {
				return err
			}
			day, err := parseDate(date)
			if err != nil {
				return err
			}
			in := store.PurchaseReceiptInput{
				VendorID:      vendorID,
				Date:          day,
				TotalAmount:   amount,
				TaxAmount:     tax,
				PaymentMethod: method,
				Description:   desc,
				Category:      category,
				Notes:         notes,
			}
			if image != "" {
				blob, err := os.ReadFile(image)
				if err != nil {
					return fmt.Errorf("read receipt image: %w", err)
				}
				in.ReceiptImage = blob
			}
			id, err := st.CreatePurchaseReceipt(in)
			if err != nil {
				return err
			}
			fmt.Printf("purchase receipt %d created\n", id)
			return nil
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "total amount")
	cmd.Flags().Float64Var(&tax, "tax", 0, "tax amount")
	cmd.Flags().StringVar(&date, "date", "", "receipt date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&method, "method", "", "payment method")
	cmd.Flags().StringVar(&desc, "desc", "", "description")
	cmd.Flags().StringVar(&category, "category", "", "category")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&image, "image", "", "path to a scanned receipt image")
	return cmd
}

func purchaseListCmd() *cobra.Command {
	var vendorID uint
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List purchase receipts",
		RunE: func(cmd *cobra.Command, args []string) error {
			receipts, err := st.ListPurchaseReceipts(vendorID)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tVENDOR\tDATE\tTOTAL\tTAX\tMETHOD\tDESCRIPTION")
			for _, r := range receipts {
				fmt.Fprintf(w, "%d\t%d\t%s\t%.2f\t%.2f\t%s\t%s\n",
					r.ID, r.VendorID, r.Date.Format("2006-01-02"), r.TotalAmount, r.TaxAmount, r.PaymentMethod, r.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().UintVar(&vendorID, "vendor", 0, "only receipts for this vendor id")
	return cmd
}

func purchaseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a purchase receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := st.DeletePurchaseReceipt(id); err != nil {
				return err
			}
			fmt.Printf("purchase receipt %d deleted\n", id)
			return nil
		},
	}
}
