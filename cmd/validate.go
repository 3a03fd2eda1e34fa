package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andytrench/next-express/config"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a project config file against the schema",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "next-express.yaml", "config file to validate")
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(validateFile)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	findings, err := config.ValidateYAML(data)
	if err != nil {
		return err
	}
	if len(findings) > 0 {
		for _, f := range findings {
			fmt.Println("✗ " + f)
		}
		return fmt.Errorf("%s: %d schema violations", validateFile, len(findings))
	}

	// Schema validation catches shape errors; Parse catches semantic ones
	// like a target directory that does not exist.
	if _, err := config.Parse(data); err != nil {
		return err
	}

	fmt.Printf("%s is valid\n", validateFile)
	return nil
}
