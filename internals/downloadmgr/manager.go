package downloadmgr

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DownloadManager includes a queue of items that are fetched concurrently
type DownloadManager struct {
	fetcher *Fetcher
	queue   []*Item
	// Concurrency limits the number of parallel downloads. Values below 1 mean 1
	Concurrency int
	// OnProgress is called after every finished item
	OnProgress func(done int, total int)
}

// New creates a new DownloadManager using fetcher
func New(fetcher *Fetcher) *DownloadManager {
	return &DownloadManager{fetcher: fetcher, Concurrency: 16}
}

// Add adds a new item to the queue
func (d *DownloadManager) Add(i *Item) {
	d.queue = append(d.queue, i)
}

// Len returns the number of queued items
func (d *DownloadManager) Len() int {
	return len(d.queue)
}

// Start fetches the queue and empties it. The first error cancels
// all remaining downloads and is returned
func (d *DownloadManager) Start(ctx context.Context) error {
	queue := d.queue
	d.queue = nil
	if len(queue) == 0 {
		return nil
	}

	limit := d.Concurrency
	if limit < 1 {
		limit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var mu sync.Mutex
	done := 0

	for _, item := range queue {
		item := item
		g.Go(func() error {
			// some other download failed already
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := d.fetcher.Fetch(ctx, item); err != nil {
				return err
			}
			if d.OnProgress != nil {
				mu.Lock()
				done++
				d.OnProgress(done, len(queue))
				mu.Unlock()
			}
			return nil
		})
	}

	return g.Wait()
}
