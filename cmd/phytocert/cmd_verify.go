package main

import (
	"fmt"

	"phytocert/internal/qr"
	"phytocert/internal/registry"
	"phytocert/internal/verify"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verifyCertNo  string
	verifyCode    string
	verifyCaptcha string
)

// verifyCmd runs the public lookup flow. The two failure modes keep
// their distinct messages: not-found and CAPTCHA-mismatch are different
// outcomes to the person at the portal.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a certificate by number, verification code and CAPTCHA",
	Long: `Runs the public lookup flow against the stored registry. Matching is
exact and case-sensitive on both the certificate number and the
verification code. The CAPTCHA answer is checked only after a record
has matched, so a wrong answer reports "record found, CAPTCHA
mismatch", never "not found".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, certs, _, err := openRepos()
		if err != nil {
			return err
		}
		defer s.Close()

		matcher := verify.NewMatcher(certs)
		result := matcher.Lookup(verifyCertNo, verifyCode, verifyCaptcha)
		switch result.Status {
		case verify.StatusFound:
			c := result.Certificate
			logger.Info("Certificate verified", zap.String("id", c.ID))
			fmt.Println("Certificate verified.")
			fmt.Printf("  Certificate No:  %s\n", c.CertNo)
			fmt.Printf("  From:            %s\n", c.FromOrg)
			fmt.Printf("  To:              %s\n", c.ToOrg)
			fmt.Printf("  Date of Issue:   %s\n", c.DateOfIssue)
			fmt.Printf("  Officer:         %s\n", c.OfficerName)
			fmt.Printf("  QR payload:      %s\n", qr.EncodePayload(*c))
			return nil
		case verify.StatusCaptchaMismatch:
			fmt.Println(verify.MessageCaptchaMismatchAr)
			return result.Err()
		default:
			fmt.Println(verify.MessageNotFoundAr)
			return result.Err()
		}
	},
}

// qrCmd prints the QR payload for a stored certificate.
var qrCmd = &cobra.Command{
	Use:   "qr [id]",
	Short: "Print the QR payload string for a certificate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		cert := registry.NewCertificateRepository(s).GetByID(args[0])
		if cert == nil {
			return fmt.Errorf("no certificate with id %s", args[0])
		}
		fmt.Println(qr.EncodePayload(*cert))
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyCertNo, "cert-no", "", "certificate number (exact, case-sensitive)")
	verifyCmd.Flags().StringVar(&verifyCode, "code", "", "verification code (exact, case-sensitive)")
	verifyCmd.Flags().StringVar(&verifyCaptcha, "captcha", "", "CAPTCHA answer")
	_ = verifyCmd.MarkFlagRequired("cert-no")
	_ = verifyCmd.MarkFlagRequired("code")
}
