package worker

// alerta_cron.go
// Background goroutine that sweeps pending payables: anything past its due
// date is flipped to "vencida" and, once per payable, an alert email is
// enqueued for the finance inbox. The actual SMTP call happens in the email
// worker, behind the circuit breaker.

import (
	"context"
	"fmt"
	"time"

	"licitasis/internal/repository"

	"github.com/rs/zerolog/log"
)

const (
	alertaTickInterval = 1 * time.Hour
	alertaBatchSize    = 50
)

// AlertaCronConfig holds the sweep dependencies.
type AlertaCronConfig struct {
	ContaRepo  repository.ContaPagarRepository
	Dispatcher *Dispatcher
	// AlertaEmail is the finance inbox that receives overdue notices.
	AlertaEmail string
}

// StartAlertaCron launches the hourly overdue sweep. Respects ctx for
// graceful shutdown.
func StartAlertaCron(ctx context.Context, cfg AlertaCronConfig) {
	go func() {
		ticker := time.NewTicker(alertaTickInterval)
		defer ticker.Stop()

		log.Info().Msg("alerta_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("alerta_cron: shutting down")
				return
			case <-ticker.C:
				processVencidas(ctx, cfg)
			}
		}
	}()
}

func processVencidas(ctx context.Context, cfg AlertaCronConfig) {
	contas, err := cfg.ContaRepo.ListVencidas(ctx, time.Now(), alertaBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("alerta_cron: failed to query overdue payables")
		return
	}
	if len(contas) == 0 {
		return
	}

	log.Info().Int("count", len(contas)).Msg("alerta_cron: processing overdue payables")

	for i := range contas {
		conta := &contas[i]
		conta.Status = "vencida"

		if !conta.AlertaEnviado && cfg.AlertaEmail != "" && cfg.Dispatcher != nil {
			emailJob := EmailJobPayload{
				ToEmail: cfg.AlertaEmail,
				Subject: fmt.Sprintf("Conta a pagar vencida — NF %s", conta.NumeroNF),
				Body: fmt.Sprintf(
					"A conta do fornecedor %s (NF %s) venceu em %s.\nValor: R$ %s",
					conta.FornecedorNome,
					conta.NumeroNF,
					conta.DataVencimento.Format("02/01/2006"),
					conta.Valor.StringFixed(2),
				),
			}
			if err := cfg.Dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
				log.Warn().Err(err).Str("conta_id", conta.ID.String()).Msg("alerta_cron: failed to enqueue alert email")
			} else {
				conta.AlertaEnviado = true
			}
		}

		if err := cfg.ContaRepo.Update(ctx, conta); err != nil {
			log.Error().Err(err).Str("conta_id", conta.ID.String()).Msg("alerta_cron: failed to update payable")
		}
	}
}
