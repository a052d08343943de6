package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matt-wil/primalArtTherapy/internal/store"
)

func newReceiptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Manage sales receipts",
	}
	cmd.AddCommand(receiptAddCmd(), receiptListCmd(), receiptShowCmd(), receiptDeleteCmd())
	return cmd
}

func receiptAddCmd() *cobra.Command {
	var (
		number, date, method, desc, category, notes, image string
		amount, tax                                        float64
	)
	cmd := &cobra.Command{
		Use:   "add <client-id>",
		Short: "Record a sales receipt for a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := parseID(args[0])
			if err != nil {
				return err
			}
			day, err := parseDate(date)
			if err != nil {
				return err
			}
			if desc == "" && number != "" {
				// Quick entry: same description shape the old receipt form wrote.
				id, err := st.AddSalesReceipt(clientID, number, amount, day)
				if err != nil {
					return err
				}
				fmt.Printf("receipt %d created\n", id)
				return nil
			}
			in := store.SalesReceiptInput{
				CustomerID:    clientID,
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
			id, err := st.CreateSalesReceipt(in)
			if err != nil {
				return err
			}
			fmt.Printf("receipt %d created\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&number, "number", "", "receipt number (quick entry)")
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

func receiptListCmd() *cobra.Command {
	var clientID uint
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sales receipts",
		RunE: func(cmd *cobra.Command, args []string) error {
			receipts, err := st.ListSalesReceipts(clientID)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCLIENT\tDATE\tTOTAL\tTAX\tMETHOD\tDESCRIPTION")
			for _, r := range receipts {
				fmt.Fprintf(w, "%d\t%d\t%s\t%.2f\t%.2f\t%s\t%s\n",
					r.ID, r.CustomerID, r.Date.Format("2006-01-02"), r.TotalAmount, r.TaxAmount, r.PaymentMethod, r.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().UintVar(&clientID, "client", 0, "only receipts for this client id")
	return cmd
}

func receiptShowCmd() *cobra.Command {
	var imageOut string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one sales receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			r, err := st.GetSalesReceipt(id)
			if err != nil {
				return err
			}
			fmt.Printf("receipt %d: client=%d date=%s total=%.2f tax=%.2f method=%q category=%q\n",
				r.ID, r.CustomerID, r.Date.Format("2006-01-02"), r.TotalAmount, r.TaxAmount, r.PaymentMethod, r.Category)
			if r.Description != "" {
				fmt.Println("  description:", r.Description)
			}
			if r.Notes != "" {
				fmt.Println("  notes:", r.Notes)
			}
			if imageOut != "" {
				if len(r.ReceiptImage) == 0 {
					return fmt.Errorf("receipt %d has no image", r.ID)
				}
				if err := os.WriteFile(imageOut, r.ReceiptImage, 0o644); err != nil {
					return fmt.Errorf("write receipt image: %w", err)
				}
				fmt.Println("  image written to", imageOut)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&imageOut, "image-out", "", "write the stored receipt image to this file")
	return cmd
}

func receiptDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a sales receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := st.DeleteSalesReceipt(id); err != nil {
				return err
			}
			fmt.Printf("receipt %d deleted\n", id)
			return nil
		},
	}
}
