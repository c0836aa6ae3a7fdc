package main

import (
	"encoding/json"
	"fmt"
	"os"

	"phytocert/internal/types"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var brandingCmd = &cobra.Command{
	Use:   "branding",
	Short: "Inspect or replace the portal branding singleton",
}

// brandingShowCmd prints the effective branding record. When nothing is
// stored this is the built-in default; showing it does not persist it.
var brandingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective branding record as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, branding, err := openRepos()
		if err != nil {
			return err
		}
		defer s.Close()

		b := branding.Get()
		out, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode branding: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

// brandingImportCmd replaces the branding record from a JSON file.
// Legacy fixed-slot records are accepted and migrated to the partner
// list shape.
var brandingImportCmd = &cobra.Command{
	Use:   "import [file.json]",
	Short: "Replace the branding record from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		var b types.GlobalBranding
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("failed to parse branding: %w", err)
		}

		s, _, branding, err := openRepos()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := branding.Save(b); err != nil {
			return err
		}
		logger.Info("Branding replaced", zap.Int("partners", len(b.Partners)))
		fmt.Println("Branding saved.")
		return nil
	},
}

func init() {
	brandingCmd.AddCommand(brandingShowCmd)
	brandingCmd.AddCommand(brandingImportCmd)
}
