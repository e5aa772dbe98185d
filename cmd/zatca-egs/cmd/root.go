package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose bool

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "zatca-egs",
	Short: "Map Manager bookkeeping invoices to ZATCA invoice documents",
	Long: `zatca-egs converts relay payloads from the Manager bookkeeping
application into ZATCA-compliant UBL invoice documents: per-line tax
computation, VAT category subtotals and legal monetary totals, ready for a
downstream signer.

Examples:
  # Map a relay payload file to an invoice document
  zatca-egs map payload.json

  # Map and write the document to a file
  zatca-egs map payload.json -o invoice.json

  # Run the relay HTTP endpoint
  zatca-egs serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cobra.OnInitialize(func() {
		log.SetLevel(logrus.WarnLevel)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	})
}
