//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pgEdge/pgedge-listgen/internal/logging"
)

// Beginner opens transactions.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PhaseError reports the pipeline phase whose transaction was rolled back.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("phase %s failed: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// RunPhase runs fn inside one transaction. The transaction is committed
// when fn returns nil and rolled back otherwise, so a phase is either fully
// applied or not at all. A panic in fn rolls back before propagating.
func RunPhase(ctx context.Context, b Beginner, phase string, fn func(ctx context.Context, tx pgx.Tx) error) error {
	log := logging.Phase(phase)
	start := time.Now()
	log.Info().Msg("Phase started")

	tx, err := b.Begin(ctx)
	if err != nil {
		return &PhaseError{Phase: phase, Err: fmt.Errorf("failed to begin transaction: %w", err)}
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Error().Err(rbErr).Msg("Rollback failed")
		}
	}()

	if err := fn(ctx, tx); err != nil {
		log.Error().Err(err).Msg("Phase rolled back")
		return &PhaseError{Phase: phase, Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return &PhaseError{Phase: phase, Err: fmt.Errorf("failed to commit: %w", err)}
	}
	committed = true

	log.Info().
		Dur("elapsed", time.Since(start)).
		Msg("Phase committed")
	return nil
}
