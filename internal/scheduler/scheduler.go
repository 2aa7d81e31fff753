// Package scheduler ejecuta los jobs periódicos: hoy solo la reconciliación
// de la caché de consultas con el backend.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/mietpark-admin/pkg/logger"
)

// Refresher recarga las listas cacheadas (usecase.LookupService).
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler gestiona los jobs cron.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	timeout   time.Duration
	log       *logger.Logger
}

// New crea el scheduler con precisión de segundos y registra el job de refresco
// con la expresión spec (ej. "0 */5 * * * *"). timeout acota cada ejecución.
func New(spec string, refresher Refresher, timeout time.Duration, log *logger.Logger) (*Scheduler, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.Local),
			cron.WithSeconds(),
		),
		refresher: refresher,
		timeout:   timeout,
		log:       log.Named("scheduler"),
	}
	if _, err := s.cron.AddFunc(spec, s.RefreshCache); err != nil {
		return nil, fmt.Errorf("scheduler: registrar refresco de caché %q: %w", spec, err)
	}
	return s, nil
}

// RefreshCache job de reconciliación. Un fallo solo se registra; la próxima
// ejecución lo reintenta.
func (s *Scheduler) RefreshCache() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.refresher.Refresh(ctx); err != nil {
		s.log.Warn().Err(err).Msg("refresco de caché fallido")
		return
	}
	s.log.Debug().Dur("duration", time.Since(start)).Msg("caché reconciliada")
}

// Start arranca el cron.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Int("jobs", len(s.cron.Entries())).Msg("scheduler iniciado")
}

// Stop detiene el cron y espera a que terminen los jobs en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler detenido")
}
