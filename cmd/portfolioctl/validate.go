package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a portfolio dataset",
	Long:  "Checks a dataset against the JSON schema and the field rules, and reports duplicate project ids.",
	RunE:  runValidate,
}

var validateFile string

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to a dataset JSON file (defaults to the embedded dataset)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	d, err := loadDataset(cmd.Context(), validateFile)
	if err != nil {
		return err
	}

	for _, id := range d.DuplicateProjectIDs() {
		_, _ = fmt.Fprintf(out, "warning: project id %q is used by more than one company, the first one wins\n", id)
	}

	_, _ = fmt.Fprintf(out, "Dataset is valid (version %s)\n", d.Version())
	_, _ = fmt.Fprintf(out, "  companies: %d, experience: %d, education: %d, skill categories: %d, certifications: %d\n",
		len(d.Professional.Companies), len(d.Professional.Experience), len(d.Education),
		len(d.Skillset.Categories), len(d.Certifications))
	return nil
}
