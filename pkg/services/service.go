package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dskvich/kintone-icon-generator/pkg/logger"
	"github.com/hashicorp/go-multierror"
)

type Service interface {
	Name() string
	Run(ctx context.Context) error
}

type Group []Service

// Start runs every service and blocks until all of them have returned.
// The first service to return stops the others.
func (g Group) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, len(g))
	var wg sync.WaitGroup
	for _, svc := range g {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer cancel()

			slog.Info("starting service", "name", svc.Name())
			if err := svc.Run(ctx); err != nil {
				slog.Error("service stopped with error", "name", svc.Name(), logger.Err(err))
				errCh <- fmt.Errorf("%s: %w", svc.Name(), err)
				return
			}
			slog.Info("service stopped", "name", svc.Name())
		}()
	}
	wg.Wait()
	close(errCh)

	var merr *multierror.Error
	for err := range errCh {
		merr = multierror.Append(merr, err)
	}
	return merr.ErrorOrNil()
}
