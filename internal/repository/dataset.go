package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"marketing-backend/internal/models"
)

// DatasetTTL is the retention window for uploaded CSV datasets. Both
// backends evict entries after this long.
const DatasetTTL = time.Hour

var ErrDatasetNotFound = errors.New("dataset not found or expired")

// DatasetRepo stores parsed CSV datasets for later document generation.
type DatasetRepo interface {
	Save(ctx context.Context, ds *models.Dataset) error
	Get(ctx context.Context, id uuid.UUID) (*models.Dataset, error)
}

// MemoryDatasetRepo keeps datasets in a map swept on a fixed interval.
type MemoryDatasetRepo struct {
	mu       sync.RWMutex
	items    map[uuid.UUID]*models.Dataset
	stopChan chan struct{}
}

func NewMemoryDatasetRepo() *MemoryDatasetRepo {
	r := &MemoryDatasetRepo{
		items:    make(map[uuid.UUID]*models.Dataset),
		stopChan: make(chan struct{}),
	}
	go r.sweep()
	return r
}

func (r *MemoryDatasetRepo) sweep() {
	ticker := time.NewTicker(DatasetTTL)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-DatasetTTL)
			r.mu.Lock()
			for id, ds := range r.items {
				if ds.CreatedAt.Before(cutoff) {
					delete(r.items, id)
				}
			}
			r.mu.Unlock()
		}
	}
}

func (r *MemoryDatasetRepo) Stop() {
	close(r.stopChan)
}

func (r *MemoryDatasetRepo) Save(ctx context.Context, ds *models.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[ds.ID] = ds
	return nil
}

func (r *MemoryDatasetRepo) Get(ctx context.Context, id uuid.UUID) (*models.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ds, ok := r.items[id]
	if !ok || time.Since(ds.CreatedAt) > DatasetTTL {
		return nil, ErrDatasetNotFound
	}
	return ds, nil
}

// RedisDatasetRepo stores datasets as JSON values with a key TTL, for
// deployments where requests can land on different processes.
type RedisDatasetRepo struct {
	client *redis.Client
}

func NewRedisDatasetRepo(redisURL string) (*RedisDatasetRepo, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &RedisDatasetRepo{client: client}, nil
}

func (r *RedisDatasetRepo) Close() error {
	return r.client.Close()
}

func datasetKey(id uuid.UUID) string {
	return "csv_dataset:" + id.String()
}

func (r *RedisDatasetRepo) Save(ctx context.Context, ds *models.Dataset) error {
	data, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}
	return r.client.Set(ctx, datasetKey(ds.ID), data, DatasetTTL).Err()
}

func (r *RedisDatasetRepo) Get(ctx context.Context, id uuid.UUID) (*models.Dataset, error) {
	data, err := r.client.Get(ctx, datasetKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDatasetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var ds models.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	return &ds, nil
}
