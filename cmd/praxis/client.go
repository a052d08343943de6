package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matt-wil/primalArtTherapy/internal/models"
	"github.com/matt-wil/primalArtTherapy/internal/store"
)

func newClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}
	cmd.AddCommand(clientAddCmd(), clientListCmd(), clientSearchCmd(), clientUpdateCmd(), clientDeleteCmd())
	return cmd
}

func clientFlags(cmd *cobra.Command, in *store.ClientInput, notes *string) {
	cmd.Flags().StringVar(&in.FirstName, "first", "", "first name")
	cmd.Flags().StringVar(&in.LastName, "last", "", "last name")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().StringVar(&in.Address, "address", "", "postal address")
	cmd.Flags().StringVar(notes, "notes", "", "free-form notes")
}

func clientAddCmd() *cobra.Command {
	var in store.ClientInput
	var notes string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new client",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("notes") {
				in.Notes = &notes
			}
			id, err := st.CreateClient(in)
			if err != nil {
				return err
			}
			fmt.Printf("client %d created\n", id)
			return nil
		},
	}
	clientFlags(cmd, &in, &notes)
	return cmd
}

func clientListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := st.ListClients()
			if err != nil {
				return err
			}
			printClients(clients)
			return nil
		},
	}
}

func clientSearchCmd() *cobra.Command {
	var name, email, phone string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search clients by name, email or phone substring",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := st.FindClients(name, email, phone)
			if err != nil {
				return err
			}
			printClients(clients)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "substring of first or last name")
	cmd.Flags().StringVar(&email, "email", "", "substring of email")
	cmd.Flags().StringVar(&phone, "phone", "", "substring of phone number")
	return cmd
}

func clientUpdateCmd() *cobra.Command {
	var in store.ClientInput
	var notes string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the fields of an existing client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("notes") {
				in.Notes = &notes
			}
			if err := st.UpdateClient(id, in); err != nil {
				return err
			}
			fmt.Printf("client %d updated\n", id)
			return nil
		},
	}
	clientFlags(cmd, &in, &notes)
	return cmd
}

func clientDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := st.DeleteClient(id); err != nil {
				return err
			}
			fmt.Printf("client %d deleted\n", id)
			return nil
		},
	}
}

func printClients(clients []models.Client) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIRST\tLAST\tEMAIL\tPHONE\tADDRESS\tNOTES")
	for _, c := range clients {
		notes := ""
		if c.Notes != nil {
			notes = *c.Notes
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.Address, notes)
	}
	w.Flush()
}
