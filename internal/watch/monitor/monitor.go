// Package monitor periodically evaluates the trigger engine, logs what it
// finds and records fired triggers.
package monitor

import (
	"context"
	"time"

	"gttwatch/internal/watch/engine"
	"gttwatch/pkg/storage/postgres"

	"go.uber.org/zap"
)

// EventRecorder persists fired triggers. Backed by Postgres in production.
type EventRecorder interface {
	InsertTriggerEvent(ctx context.Context, event *postgres.TriggerEvent) error
}

type Monitor struct {
	Engine   *engine.Engine
	Recorder EventRecorder // optional; nil disables persistence
	Logger   *zap.Logger
	Interval time.Duration

	// The engine itself re-reports a held condition on every evaluation.
	// reported tracks what this monitor already recorded, so a symbol is
	// persisted once per excursion and re-arms when the price moves back.
	reported map[string]bool
}

// Run polls the engine until the context is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Poll(ctx)
		}
	}
}

// Poll runs one evaluation pass: potential triggers are logged, fired
// triggers are logged and recorded.
func (m *Monitor) Poll(ctx context.Context) {
	if m.reported == nil {
		m.reported = make(map[string]bool)
	}

	potentials := m.Engine.FindPotentialTriggers()
	for _, p := range potentials {
		m.Logger.Debug("approaching trigger",
			zap.String("symbol", p.Symbol),
			zap.Float64("price", p.Price))
	}

	triggered := m.Engine.CheckTriggers()

	// Record metadata alongside each event.
	records := make(map[string]engine.SymbolRecord)
	if len(triggered) > 0 {
		for _, snap := range m.Engine.EligibleSymbols() {
			records[snap.Symbol] = snap.Record
		}
	}

	current := make(map[string]bool, len(triggered))
	for _, tr := range triggered {
		current[tr.Symbol] = true
		if m.reported[tr.Symbol] {
			continue
		}
		m.reported[tr.Symbol] = true

		rec := records[tr.Symbol]
		m.Logger.Warn("trigger fired",
			zap.String("symbol", tr.Symbol),
			zap.String("direction", rec.Direction),
			zap.Float64("price", tr.Price),
			zap.Float64("gtt_price", rec.GTTPrice))

		if m.Recorder == nil {
			continue
		}
		event := &postgres.TriggerEvent{
			Symbol:    tr.Symbol,
			Direction: rec.Direction,
			Price:     tr.Price,
			GTTPrice:  rec.GTTPrice,
			FiredAt:   time.Now(),
		}
		if err := m.Recorder.InsertTriggerEvent(ctx, event); err != nil {
			m.Logger.Warn("failed to record trigger event",
				zap.String("symbol", tr.Symbol), zap.Error(err))
			// Try again next poll.
			delete(m.reported, tr.Symbol)
		}
	}

	// Re-arm symbols that left the triggered set.
	for symbol := range m.reported {
		if !current[symbol] {
			delete(m.reported, symbol)
		}
	}
}
