package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matt-wil/primalArtTherapy/internal/store"
)

// Session protocols, articles and FAQ entries.

func newProtocolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "protocol",
		Short: "Manage session protocols",
	}

	var text, date string
	add := &cobra.Command{
		Use:   "add <client-id>",
		Short: "Add a session protocol for a client",
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
			id, err := st.CreateProtocol(store.ProtocolInput{ClientID: clientID, ProtocolText: text, Date: day})
			if err != nil {
				return err
			}
			fmt.Printf("protocol %d created\n", id)
			return nil
		},
	}
	add.Flags().StringVar(&text, "text", "", "protocol text")
	add.Flags().StringVar(&date, "date", "", "session date (YYYY-MM-DD)")

	var clientID uint
	list := &cobra.Command{
		Use:   "list",
		Short: "List session protocols",
		RunE: func(cmd *cobra.Command, args []string) error {
			protocols, err := st.ListProtocols(clientID)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCLIENT\tDATE\tTEXT")
			for _, p := range protocols {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", p.ID, p.ClientID, p.Date.Format("2006-01-02"), p.ProtocolText)
			}
			return w.Flush()
		},
	}
	list.Flags().UintVar(&clientID, "client", 0, "only protocols for this client id")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session protocol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := st.DeleteProtocol(id); err != nil {
				return err
			}
			fmt.Printf("protocol %d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(add, list, del)
	return cmd
}

func newArticleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "article",
		Short: "Manage articles",
	}

	var in store.ArticleInput
	var published string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an article",
		RunE: func(cmd *cobra.Command, args []string) error {
			if published != "" {
				day, err := parseDate(published)
				if err != nil {
					return err
				}
				in.Published = day
			}
			id, err := st.CreateArticle(in)
			if err != nil {
				return err
			}
			fmt.Printf("article %d created\n", id)
			return nil
		},
	}
	add.Flags().StringVar(&in.Title, "title", "", "article title")
	add.Flags().StringVar(&in.Body, "body", "", "article body")
	add.Flags().StringVar(&in.Author, "author", "", "author name")
	add.Flags().StringVar(&published, "published", "", "publication date (YYYY-MM-DD)")
	add.Flags().StringVar(&in.Link, "link", "", "external link")

	list := &cobra.Command{
		Use:   "list",
		Short: "List articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			articles, err := st.ListArticles()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tPUBLISHED\tLINK")
			for _, a := range articles {
				published := ""
				if !a.Published.IsZero() {
					published = a.Published.Format("2006-01-02")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", a.ID, a.Title, a.Author, published, a.Link)
			}
			return w.Flush()
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := st.DeleteArticle(id); err != nil {
				return err
			}
			fmt.Printf("article %d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(add, list, del)
	return cmd
}

func newFAQCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faq",
		Short: "Manage FAQ entries",
	}

	var question, answers string
	add := &cobra.Command{
		Use:   "add <article-id>",
		Short: "Add an FAQ entry answered by an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			articleID, err := parseID(args[0])
			if err != nil {
				return err
			}
			id, err := st.CreateFAQ(store.FAQInput{ArticleID: articleID, Question: question, Answers: answers})
			if err != nil {
				return err
			}
			fmt.Printf("faq %d created\n", id)
			return nil
		},
	}
	add.Flags().StringVar(&question, "question", "", "the question")
	add.Flags().StringVar(&answers, "answers", "", "the answer text")

	var articleID uint
	list := &cobra.Command{
		Use:   "list",
		Short: "List FAQ entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			faqs, err := st.ListFAQs(articleID)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tARTICLE\tQUESTION")
			for _, f := range faqs {
				fmt.Fprintf(w, "%d\t%d\t%s\n", f.ID, f.ArticleID, f.Question)
			}
			return w.Flush()
		},
	}
	list.Flags().UintVar(&articleID, "article", 0, "only entries for this article id")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an FAQ entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := st.DeleteFAQ(id); err != nil {
				return err
			}
			fmt.Printf("faq %d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(add, list, del)
	return cmd
}
