package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/cardledger/internal/crypto/domain"
	cryptoService "github.com/allisson/cardledger/internal/crypto/service"
)

// RunCreateCipherKey generates a 32-byte card number key and prints it as environment
// variables. With --kms-provider and --kms-key-uri the key is encrypted by the KMS
// before it is printed; both flags must be given together.
//
// For local development use kmsProvider="localsecrets" with kmsKeyURI="base64key://...".
func RunCreateCipherKey(
	ctx context.Context,
	kms cryptoService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	algorithm string,
	kmsProvider string,
	kmsKeyURI string,
) error {
	alg, err := cryptoDomain.ParseAlgorithm(algorithm)
	if err != nil {
		return fmt.Errorf("invalid algorithm %q: %w", algorithm, err)
	}

	if (kmsProvider == "") != (kmsKeyURI == "") {
		return fmt.Errorf("--kms-provider and --kms-key-uri must be used together")
	}

	key, err := cryptoService.GenerateCipherKey(ctx, kms, kmsKeyURI)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(writer, "# Card cipher configuration")
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintf(writer, "CARD_CIPHER_ALGORITHM=\"%s\"\n", alg)
	_, _ = fmt.Fprintf(writer, "CARD_CIPHER_KEY=\"%s\"\n", key)
	if kmsKeyURI != "" {
		_, _ = fmt.Fprintf(writer, "KMS_PROVIDER=\"%s\"\n", kmsProvider)
		_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	}

	logger.Info("card cipher key generated",
		slog.String("algorithm", string(alg)),
		slog.Bool("kms", kmsKeyURI != ""),
	)
	return nil
}
