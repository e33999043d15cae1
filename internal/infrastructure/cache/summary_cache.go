// Package cache implementa el caché Redis del resumen del tablero. El
// resumen recorre todos los productos en cada consulta; cachearlo unos
// segundos absorbe el refresco constante de los clientes sin tocar la DB.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/application/reporting"
	"github.com/jhoicas/stockboard-api/pkg/config"
)

const (
	summaryKey        = "dashboard:summary"
	defaultSummaryTTL = time.Minute
)

var _ reporting.SummaryCache = (*redisSummaryCache)(nil)
var _ reporting.SummaryCache = (*noopSummaryCache)(nil)

type redisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopSummaryCache struct{}

// NewSummaryCache construye el caché según configuración: Redis si está
// habilitado (y responde al ping), noop en caso contrario.
func NewSummaryCache(cfg config.CacheConfig) (reporting.SummaryCache, error) {
	if !cfg.Enabled {
		return &noopSummaryCache{}, nil
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultSummaryTTL
	}
	return &redisSummaryCache{client: client, ttl: ttl}, nil
}

// NewNoopSummaryCache devuelve un caché que nunca acierta.
func NewNoopSummaryCache() reporting.SummaryCache { return &noopSummaryCache{} }

func (c *redisSummaryCache) Get(ctx context.Context) (*dto.DashboardSummaryDTO, bool, error) {
	payload, err := c.client.Get(ctx, summaryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var summary dto.DashboardSummaryDTO
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, false, fmt.Errorf("decode summary cache: %w", err)
	}
	return &summary, true, nil
}

func (c *redisSummaryCache) Set(ctx context.Context, summary *dto.DashboardSummaryDTO) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary cache: %w", err)
	}
	if err := c.client.Set(ctx, summaryKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (n *noopSummaryCache) Get(ctx context.Context) (*dto.DashboardSummaryDTO, bool, error) {
	return nil, false, nil
}

func (n *noopSummaryCache) Set(ctx context.Context, summary *dto.DashboardSummaryDTO) error {
	return nil
}

func buildOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis url inválida: %w", err)
		}
		return opt, nil
	}
	return &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}, nil
}
