package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matt-wil/primalArtTherapy/internal/store"
)

// Product and vendor management.

func newProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products and services",
	}

	var in store.ProductInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a product or service",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := st.CreateProduct(in)
			if err != nil {
				return err
			}
			fmt.Printf("product %d created\n", id)
			return nil
		},
	}
	add.Flags().StringVar(&in.Service, "service", "", "service or product name")
	add.Flags().StringVar(&in.Details, "details", "", "description")
	add.Flags().Float64Var(&in.Price, "price", 0, "unit price")

	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := st.ListProducts()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSERVICE\tPRICE\tDETAILS")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\n", p.ID, p.Service, p.Price, p.Details)
			}
			return w.Flush()
		},
	}

	var upd store.ProductInput
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the fields of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := st.UpdateProduct(id, upd); err != nil {
				return err
			}
			fmt.Printf("product %d updated\n", id)
			return nil
		},
	}
	update.Flags().StringVar(&upd.Service, "service", "", "service or product name")
	update.Flags().StringVar(&upd.Details, "details", "", "description")
	update.Flags().Float64Var(&upd.Price, "price", 0, "unit price")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := st.DeleteProduct(id); err != nil {
				return err
			}
			fmt.Printf("product %d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(add, list, update, del)
	return cmd
}

func newVendorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendor",
		Short: "Manage vendors",
	}

	flags := func(c *cobra.Command, in *store.VendorInput) {
		c.Flags().StringVar(&in.Name, "name", "", "vendor name")
		c.Flags().StringVar(&in.Address, "address", "", "postal address")
		c.Flags().StringVar(&in.ContactPerson, "contact", "", "contact person")
		c.Flags().StringVar(&in.ContactNumber, "phone", "", "contact number")
		c.Flags().StringVar(&in.Email, "email", "", "email address")
		c.Flags().StringVar(&in.Notes, "notes", "", "free-form notes")
	}

	var in store.VendorInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a vendor",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := st.CreateVendor(in)
			if err != nil {
				return err
			}
			fmt.Printf("vendor %d created\n", id)
			return nil
		},
	}
	flags(add, &in)

	list := &cobra.Command{
		Use:   "list",
		Short: "List vendors",
		RunE: func(cmd *cobra.Command, args []string) error {
			vendors, err := st.ListVendors()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCONTACT\tPHONE\tEMAIL")
			for _, v := range vendors {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", v.ID, v.Name, v.ContactPerson, v.ContactNumber, v.Email)
			}
			return w.Flush()
		},
	}

	var upd store.VendorInput
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the fields of a vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := st.UpdateVendor(id, upd); err != nil {
				return err
			}
			fmt.Printf("vendor %d updated\n", id)
			return nil
		},
	}
	flags(update, &upd)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := st.DeleteVendor(id); err != nil {
				return err
			}
			fmt.Printf("vendor %d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(add, list, update, del)
	return cmd
}
