// Command readability extracts the main article content from an HTML
// file and writes it to standard output.
package main

import (
	"fmt"
	"os"

	"github.com/arcdodge/readability"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "readability [path]",
		Short: "Extract the main article content from an HTML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			htmlBytes, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			doc, err := readability.New(htmlBytes, baseURL, readability.DefaultOptions())
			if err != nil {
				return err
			}

			article, err := doc.Parse()
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, article.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "base URL used to resolve relative links and images")
	return cmd
}
