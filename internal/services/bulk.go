package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"marketing-backend/internal/models"
)

const maxBatchSize = 50

var (
	ErrEmptyBatch    = errors.New("Requests array is required and must not be empty")
	ErrBatchTooLarge = errors.New("Maximum 50 requests per batch allowed")
)

// BulkService drives the content orchestrator over a batch of requests.
// Items run concurrently in fixed-size windows; the pause between windows
// paces calls to the upstream AI APIs.
type BulkService struct {
	content     *ContentService
	windowSize  int
	windowPause time.Duration
}

func NewBulkService(content *ContentService) *BulkService {
	return &BulkService{
		content:     content,
		windowSize:  5,
		windowPause: time.Second,
	}
}

// GenerateBatch processes 1..50 requests. Per-item failures are recorded in
// the report without aborting siblings; results come back sorted by the
// original request index.
func (s *BulkService) GenerateBatch(ctx context.Context, requests []models.ContentRequest, batchID string) (*models.BatchResult, error) {
	if len(requests) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(requests) > maxBatchSize {
		return nil, ErrBatchTooLarge
	}
	if batchID == "" {
		batchID = fmt.Sprintf("%d", time.Now().UnixMilli())
	}

	log.Printf("[INFO] Bulk content generation started: batch=%s count=%d", batchID, len(requests))

	results := make([]models.BatchItemResult, len(requests))
	var mu sync.Mutex
	successful, failed := 0, 0

	for start := 0; start < len(requests); start += s.windowSize {
		end := start + s.windowSize
		if end > len(requests) {
			end = len(requests)
		}

		g, gCtx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			i := i
			g.Go(func() error {
				generated, err := s.content.Generate(gCtx, requests[i])

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					log.Printf("[ERROR] Bulk request %d failed: %v", i, err)
					results[i] = models.BatchItemResult{Index: i, Success: false, Error: err.Error()}
					failed++
					return nil
				}
				results[i] = models.BatchItemResult{Index: i, Success: true, Data: generated}
				successful++
				return nil
			})
		}
		// Item errors are recorded per-result; Wait only surfaces a
		// canceled context.
		if err := g.Wait(); err != nil {
			return nil, err
		}

		if end < len(requests) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.windowPause):
			}
		}
	}

	sort.Slice(results, func(a, b int) bool { return results[a].Index < results[b].Index })

	log.Printf("[INFO] Bulk content generation completed: batch=%s successful=%d failed=%d", batchID, successful, failed)

	return &models.BatchResult{
		BatchID:       batchID,
		TotalRequests: len(requests),
		Successful:    successful,
		Failed:        failed,
		Results:       results,
	}, nil
}
