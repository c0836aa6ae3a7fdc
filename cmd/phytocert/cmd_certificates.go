package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"phytocert/internal/types"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newCmd creates a certificate from the canonical defaults and saves it.
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new certificate from the default template",
	Long: `Creates a certificate pre-filled with the default template (sample
shipment data, NIL sentinels, the full bilingual label set) and saves it
to the registry. Prints the generated certificate id.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, certs, _, err := openRepos()
		if err != nil {
			return err
		}
		defer s.Close()

		cert := types.NewCertificate()
		if err := certs.Save(cert); err != nil {
			// Write failure is non-fatal by contract: the draft is intact,
			// the caller may retry.
			logger.Warn("Certificate did not persist", zap.Error(err))
			return err
		}
		logger.Info("Certificate created", zap.String("id", cert.ID), zap.String("certNo", cert.CertNo))
		fmt.Println(cert.ID)
		return nil
	},
}

// listCmd tabulates stored certificates.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored certificates",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, certs, _, err := openRepos()
		if err != nil {
			return err
		}
		defer s.Close()

		all := certs.GetAll()
		if len(all) == 0 {
			fmt.Println("No certificates stored.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCERT NO\tVERIFY CODE\tTO\tCREATED")
		for _, c := range all {
			created := time.UnixMilli(c.CreatedAt).Format("2006-01-02 15:04")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.CertNo, c.VerificationCode, c.ToOrg, created)
		}
		return w.Flush()
	},
}

// showCmd prints one certificate as JSON.
var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a certificate as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, certs, _, err := openRepos()
		if err != nil {
			return err
		}
		defer s.Close()

		cert := certs.GetByID(args[0])
		if cert == nil {
			return fmt.Errorf("no certificate with id %s", args[0])
		}
		out, err := json.MarshalIndent(cert, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode certificate: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

// saveCmd upserts a certificate from a JSON file. This is the editor's
// explicit save step: the draft lives in the file, nothing is persisted
// until this command runs.
var saveCmd = &cobra.Command{
	Use:   "save [file.json]",
	Short: "Upsert a certificate from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		var cert types.CertificateData
		if err := json.Unmarshal(data, &cert); err != nil {
			return fmt.Errorf("failed to parse certificate: %w", err)
		}
		if cert.ID == "" {
			cert.ID = types.NewID()
		}
		cert.Labels = types.ReconcileLabels(cert.Labels)

		s, certs, _, err := openRepos()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := certs.Save(cert); err != nil {
			return err
		}
		logger.Info("Certificate saved", zap.String("id", cert.ID))
		fmt.Println(cert.ID)
		return nil
	},
}

// exportCmd writes one certificate to a JSON file.
var exportCmd = &cobra.Command{
	Use:   "export [id] [file.json]",
	Short: "Export a certificate to a JSON file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, certs, _, err := openRepos()
		if err != nil {
			return err
		}
		defer s.Close()

		cert := certs.GetByID(args[0])
		if cert == nil {
			return fmt.Errorf("no certificate with id %s", args[0])
		}
		out, err := json.MarshalIndent(cert, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode certificate: %w", err)
		}
		if err := os.WriteFile(args[1], out, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[1], err)
		}
		fmt.Printf("Exported %s to %s\n", cert.ID, args[1])
		return nil
	},
}

// statsCmd reports record counts.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show record store statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.Stats()
		if err != nil {
			return err
		}
		fmt.Printf("Certificates: %d\n", stats["certificates"])
		fmt.Printf("Branding:     %d\n", stats["branding"])
		return nil
	},
}
