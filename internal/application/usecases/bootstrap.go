package usecases

import (
	"context"

	"github.com/ishehara/autosched-admin/internal/domain/examiner"
	"github.com/ishehara/autosched-admin/internal/domain/presentation"
	"github.com/ishehara/autosched-admin/internal/domain/venue"
	"golang.org/x/sync/errgroup"
)

// Directory is the read side of the backend API that the dashboard needs.
type Directory interface {
	ListPresentations(ctx context.Context) ([]presentation.Presentation, error)
	ListExaminers(ctx context.Context) ([]examiner.Examiner, error)
	ListVenues(ctx context.Context) ([]venue.Venue, error)
}

type Dashboard struct {
	Presentations []presentation.Presentation
	Examiners     []examiner.Examiner
	Venues        []venue.Venue
}

// Bootstrap loads the three dashboard collections. The fetches run
// concurrently and are awaited jointly: if any one fails, the whole bootstrap
// fails and no partial result is returned.
type Bootstrap struct {
	API Directory
}

func (u Bootstrap) Execute(ctx context.Context) (Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.Presentations, err = u.API.ListPresentations(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Examiners, err = u.API.ListExaminers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Venues, err = u.API.ListVenues(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}
