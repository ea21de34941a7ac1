package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyperifyio/deckmine/internal/community"
	"github.com/hyperifyio/deckmine/internal/deck"
	"github.com/hyperifyio/deckmine/internal/pptx"
	"github.com/hyperifyio/deckmine/internal/render"
)

var (
	extractJSON     bool
	extractMarkdown bool
	extractSlides   string
	communityJSON   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract slide content from a PPTX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(args[0], extractSlides)
		if err != nil {
			return err
		}
		if extractMarkdown {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), render.Markdown(doc))
			return err
		}
		return printJSON(cmd.OutOrStdout(), doc)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print PPTX document metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(args[0], "")
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), doc.Metadata)
	},
}

var parseCommunityCmd = &cobra.Command{
	Use:   "parse-community <file>",
	Short: "Mine a PPTX reference guide for community data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(args[0], "")
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), community.Mine(doc))
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Output JSON (default)")
	extractCmd.Flags().BoolVar(&extractMarkdown, "markdown", false, "Output Markdown")
	extractCmd.MarkFlagsMutuallyExclusive("json", "markdown")
	extractCmd.Flags().StringVar(&extractSlides, "slides", "", "Slide range, e.g. 1-5,10")

	parseCommunityCmd.Flags().BoolVar(&communityJSON, "json", false, "Output JSON (default)")

	rootCmd.AddCommand(extractCmd, infoCmd, parseCommunityCmd)
}

// openDocument checks the path exists, resolves the optional slide range,
// and extracts the presentation.
func openDocument(path, slides string) (*deck.Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	var selected map[int]bool
	if slides != "" {
		s, err := deck.ParseRange(slides)
		if err != nil {
			return nil, err
		}
		selected = s
	}
	return pptx.Extract(path, selected)
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
