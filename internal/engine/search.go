package engine

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/prodsearch/internal/domain"
)

// QueryHit is a single raw hit from the engine.
type QueryHit struct {
	Key   string
	Score float64
}

// QueryResult is the raw outcome of a passthrough query.
type QueryResult struct {
	Total int
	Hits  []QueryHit
}

// Query forwards a query to the engine via FT.SEARCH and returns raw
// key/score pairs. Transport failures wrap domain.ErrEngineUnavailable.
func (c *Client) Query(ctx context.Context, index, query string, topK int) (QueryResult, error) {
	if index == "" {
		return QueryResult{}, fmt.Errorf("%w: index is required", domain.ErrValidation)
	}
	if query == "" {
		return QueryResult{}, fmt.Errorf("%w: query is required", domain.ErrValidation)
	}
	if topK <= 0 {
		topK = 10
	}

	cmd := c.client.B().Arbitrary("FT.SEARCH").
		Args(index, query, "NOCONTENT", "WITHSCORES", "LIMIT", "0", strconv.Itoa(topK)).
		Build()
	raw, err := c.client.Do(ctx, cmd).ToArray()
	if err != nil {
		return QueryResult{}, fmt.Errorf("%w: %v", domain.ErrEngineUnavailable, err)
	}

	return parseQueryResult(raw)
}

// parseQueryResult parses the RESP2 NOCONTENT WITHSCORES layout:
// [total, key1, score1, key2, score2, ...].
func parseQueryResult(raw []rueidis.RedisMessage) (QueryResult, error) {
	if len(raw) == 0 {
		return QueryResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return QueryResult{}, fmt.Errorf("parse total: %w", err)
	}

	hits := make([]QueryHit, 0, (len(raw)-1)/2)
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}
		scoreStr, err := raw[i+1].ToString()
		if err != nil {
			continue
		}
		score, _ := strconv.ParseFloat(scoreStr, 64)
		hits = append(hits, QueryHit{Key: key, Score: score})
	}

	return QueryResult{Total: int(total), Hits: hits}, nil
}
