package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/zatca-egs/internal/mapper"
	"github.com/rezonia/zatca-egs/internal/model"
)

var outputFile string

var mapCmd = &cobra.Command{
	Use:   "map [payload.json]",
	Short: "Map a relay payload to an invoice document",
	Long: `Map a relay payload file to a ZATCA invoice document.

The payload is the JSON body the Manager relay extension posts: the invoice
record, certificate and party metadata, counters and the raw invoice JSON
for custom-field lookup. The mapped document is written as indented JSON.

Examples:
  zatca-egs map payload.json
  zatca-egs map payload.json -o invoice.json`,
	Args: cobra.ExactArgs(1),
	RunE: runMap,
}

func init() {
	rootCmd.AddCommand(mapCmd)

	mapCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
}

func runMap(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	var data model.RelayData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}

	log.WithField("reference", data.ManagerInvoice.Reference).Debug("mapping relay payload")

	m, err := mapper.New(&data)
	if err != nil {
		return err
	}

	doc, err := m.Invoice()
	if err != nil {
		return err
	}

	writer := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
