package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"randlab/internal/config"
)

// RunBatch executes independent specs concurrently. Every component in the
// pipeline is a pure function of its spec, so the runs share nothing and
// need no locking; results come back in spec order.
func (s *PipelineService) RunBatch(ctx context.Context, specs []*config.RunSpec) ([]*RunResult, error) {
	results := make([]*RunResult, len(specs))

	g, ctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		g.Go(func() error {
			result, err := s.Run(ctx, spec)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
