package worker

// comprovante_worker.go
// Processes purchase receipt jobs from QueueComprovante: renders the purchase
// PDF and, when the supplier has an email on file, enqueues a notification
// with the PDF attached. Retries the render with exponential backoff; after
// the last attempt the job goes to the DLQ.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"licitasis/internal/infra"
	"licitasis/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxComprovanteAttempts = 3

// ComprovanteJobPayload is the job envelope sent to QueueComprovante.
type ComprovanteJobPayload struct {
	CompraID        string  `json:"compra_id"`
	FornecedorEmail *string `json:"fornecedor_email,omitempty"`
}

type ComprovanteWorker struct {
	compraRepo     repository.CompraRepository
	dispatcher     *Dispatcher
	rdb            *redis.Client
	pdfStoragePath string
}

func NewComprovanteWorker(compraRepo repository.CompraRepository, dispatcher *Dispatcher, rdb *redis.Client, pdfStoragePath string) *ComprovanteWorker {
	return &ComprovanteWorker{
		compraRepo:     compraRepo,
		dispatcher:     dispatcher,
		rdb:            rdb,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process handles a single comprovante job:
//  1. Fetch the Compra (with items) from DB
//  2. Render the purchase PDF with exponential backoff
//  3. Optionally enqueue an email job with the PDF attached
func (w *ComprovanteWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ComprovanteJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("comprovante_worker: invalid payload")
		return
	}

	compraID, err := uuid.Parse(payload.CompraID)
	if err != nil {
		log.Error().Str("compra_id", payload.CompraID).Msg("comprovante_worker: invalid compra_id")
		return
	}

	compra, err := w.compraRepo.FindByID(ctx, compraID)
	if err != nil {
		log.Error().Err(err).Str("compra_id", payload.CompraID).Msg("comprovante_worker: compra not found")
		return
	}

	var pdfPath string
	renderErr := withRetry(ctx, maxComprovanteAttempts, func(attempt int) error {
		path, err := infra.GenerateCompraPDF(compra, w.pdfStoragePath)
		if err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("compra_id", payload.CompraID).
				Msg("comprovante_worker: PDF attempt failed, retrying")
			return err
		}
		pdfPath = path
		return nil
	})
	if renderErr != nil {
		log.Error().Err(renderErr).Str("compra_id", payload.CompraID).Msg("comprovante_worker: PDF failed after all retries")
		SendToDLQ(ctx, w.rdb, QueueComprovante, "comprovante", raw,
			fmt.Sprintf("PDF generation failed after %d attempts: %v", maxComprovanteAttempts, renderErr),
			maxComprovanteAttempts)
		return
	}
	log.Info().Str("pdf", pdfPath).Str("compra_id", payload.CompraID).Msg("comprovante_worker: PDF generated")

	if payload.FornecedorEmail != nil && *payload.FornecedorEmail != "" {
		emailJob := EmailJobPayload{
			ToEmail: *payload.FornecedorEmail,
			Subject: fmt.Sprintf("Comprovante de compra — NF %s", compra.NumeroNF),
			Body:    fmt.Sprintf("Segue em anexo o comprovante da compra NF %s.\nValor total: R$ %s", compra.NumeroNF, compra.ValorTotal.StringFixed(2)),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", *payload.FornecedorEmail).Msg("comprovante_worker: failed to enqueue email")
		}
	}
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
