package physics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/elle-trudgett/luna/collision"
	"github.com/elle-trudgett/luna/vmath"
	"github.com/elle-trudgett/luna/world"
)

// Job is one independent movement query
type Job struct {
	Moving       collision.Polygon
	Displacement vmath.Vec2
	Obstacles    []world.Obstacle
}

// ResolveBatch resolves jobs concurrently with at most workers goroutines (unlimited when workers <= 0)
// Results are index-aligned with jobs; kernel errors stay in each StepResult.Err
// Only context cancellation aborts the batch
func (m *Mover) ResolveBatch(ctx context.Context, jobs []Job, workers int) ([]StepResult, error) {
	results := make([]StepResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			job := jobs[i]
			results[i] = m.Resolve(job.Moving, job.Displacement, job.Obstacles)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
