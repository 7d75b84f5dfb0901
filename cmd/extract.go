package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"scrapekit/internal/jsonio"
	"scrapekit/internal/scrape"
)

var (
	extractXPath    string
	extractSelector string
	extractRoot     string
	extractXML      bool
	extractClean    bool
	extractOutput   string
	extractLabel    string
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract text or links from a pre-fetched page",
	Long: `Extract data from a saved HTML or XML document using an XPath query or
a CSS selector. With --root, matched values are treated as relative
links and joined onto the root URL. Extraction is best-effort: a query
that matches nothing (or fails to evaluate) produces no output rather
than an error.`,
	Args: cobra.ExactArgs(1),
	Run:  runExtractCommand,
}

func runExtractCommand(cmd *cobra.Command, args []string) {
	input := args[0]

	results, err := extractFrom(input)
	if err != nil {
		fmt.Printf("Error extracting from %s: %v\n", input, err)
		os.Exit(1)
	}

	if len(results) == 0 {
		fmt.Println("No matches found")
		return
	}

	if extractOutput != "" {
		if err := jsonio.Save(extractOutput, results, extractLabel); err != nil {
			fmt.Printf("Error saving %s: %v\n", extractOutput, err)
			os.Exit(1)
		}
		return
	}
	for _, r := range results {
		fmt.Println(r)
	}
	if verbose {
		fmt.Printf("\n%d matches\n", len(results))
	}
}

func extractFrom(path string) ([]string, error) {
	if extractClean {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if text := scrape.CleanHTML(string(b)); text != "" {
			return []string{text}, nil
		}
		return nil, nil
	}

	if extractSelector != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		doc, err := goquery.NewDocumentFromReader(f)
		if err != nil {
			return nil, err
		}
		return scrape.SelectText(doc, extractSelector), nil
	}

	if extractXML {
		doc, err := scrape.ParseXMLFile(path)
		if err != nil {
			return nil, err
		}
		return scrape.ExtractTextXML(doc, extractXPath)
	}

	doc, err := scrape.ParseFile(path)
	if err != nil {
		return nil, err
	}

	if extractRoot != "" {
		set, err := scrape.ExtractURLs(doc, extractXPath, extractRoot)
		if err != nil || set == nil {
			return nil, err
		}
		urls := make([]string, 0, len(set))
		for u := range set {
			urls = append(urls, u)
		}
		sort.Strings(urls)
		return urls, nil
	}

	return scrape.ExtractText(doc, extractXPath)
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractXPath, "xpath", "x", "",
		"XPath query to evaluate against the document")
	extractCmd.Flags().StringVar(&extractSelector, "selector", "",
		"CSS selector to evaluate instead of an XPath query")
	extractCmd.Flags().StringVar(&extractRoot, "root", "",
		"Root URL to join matched relative links onto")
	extractCmd.Flags().BoolVar(&extractXML, "xml", false,
		"Treat the input as XML (sitemaps, feeds)")
	extractCmd.Flags().BoolVar(&extractClean, "clean", false,
		"Strip boilerplate markup and print the page text")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "",
		"Write results to a JSON file instead of stdout")
	extractCmd.Flags().StringVar(&extractLabel, "label", "results",
		"Wrapping key for JSON output")
}
