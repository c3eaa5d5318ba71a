//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package listing

import (
	"context"
	"fmt"

	"github.com/pgEdge/pgedge-listgen/internal/datagen"
	"github.com/pgEdge/pgedge-listgen/internal/db"
	"github.com/pgEdge/pgedge-listgen/internal/sampler"
	"github.com/pgEdge/pgedge-listgen/internal/schema"
)

// Stats counts the rows written by GenerateProperties.
type Stats struct {
	Properties   int64
	FeatureLinks int64
	Images       int64
}

// GenerateProperties generates count properties and writes them with their
// feature links and images. Child rows are held back until the property
// chunk they reference has been written.
func GenerateProperties(ctx context.Context, q db.Querier, s *datagen.Session, snap *sampler.Snapshot,
	count int, cfg datagen.BatchInsertConfig, codeAttempts int) (Stats, error) {
	progress := datagen.NewProgressReporter(schema.Properties, int64(count), cfg.ProgressInterval)

	props := db.NewBatchWriter(q, schema.Properties, PropertyColumns, cfg.BatchSize).WithProgress(progress)
	links := db.NewBatchWriter(q, schema.FeatureMappings, FeatureLinkColumns, cfg.BatchSize).Deferred()
	images := db.NewBatchWriter(q, schema.Images, ImageColumns, cfg.BatchSize).Deferred()

	stats := func() Stats {
		return Stats{Properties: props.Rows(), FeatureLinks: links.Rows(), Images: images.Rows()}
	}
	flushChildren := func() error {
		if err := links.Flush(ctx); err != nil {
			return err
		}
		return images.Flush(ctx)
	}

	gen := NewGenerator(s, snap, codeAttempts)
	for i := 0; i < count; i++ {
		rec, err := gen.Generate(i)
		if err != nil {
			return stats(), fmt.Errorf("failed to generate property %d: %w", i, err)
		}
		for _, l := range rec.Features {
			if err := links.Add(ctx, l.Values()...); err != nil {
				return stats(), err
			}
		}
		for _, img := range rec.Images {
			if err := images.Add(ctx, img.Values()...); err != nil {
				return stats(), err
			}
		}
		if err := props.Add(ctx, rec.Property.Values()...); err != nil {
			return stats(), fmt.Errorf("failed to insert properties: %w", err)
		}
		if props.Pending() == 0 {
			if err := flushChildren(); err != nil {
				return stats(), err
			}
		}
	}

	if err := props.Flush(ctx); err != nil {
		return stats(), fmt.Errorf("failed to insert properties: %w", err)
	}
	if err := flushChildren(); err != nil {
		return stats(), err
	}

	progress.Done()
	return stats(), nil
}
