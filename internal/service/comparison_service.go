package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pointswise/internal/dto"
	"pointswise/internal/engine"
	"pointswise/internal/models"
	"pointswise/internal/repository"
)

// ComparisonService fronts the decision engine for the transport layer:
// request validation, cache-aside on the serialized result, and structured
// logging. The engine stays pure; everything stateful happens here.
type ComparisonService struct {
	params engine.Params
	cache  repository.ResultCache
	ttl    time.Duration
	logger *zap.Logger
}

func NewComparisonService(params engine.Params, cache repository.ResultCache, ttl time.Duration, logger *zap.Logger) *ComparisonService {
	return &ComparisonService{
		params: params,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Compare runs one full comparison. Request-level validation failures come
// back as field errors with a nil result; the caller re-invokes after the
// traveler corrects input. Cache failures are logged and ignored.
func (s *ComparisonService) Compare(ctx context.Context, req dto.CompareRequest) (*dto.CompareResponse, []models.FieldError, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}

	requestID := uuid.New()
	key, err := s.cacheKey(req)
	if err != nil {
		return nil, nil, fmt.Errorf("canonicalize request: %w", err)
	}

	if cached, ok := s.cache.Get(ctx, key); ok {
		var result models.ComparisonResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			s.logger.Debug("Comparison served from cache",
				zap.String("request_id", requestID.String()),
				zap.String("key", key))
			return &dto.CompareResponse{RequestID: requestID.String(), Cached: true, Result: result}, nil, nil
		}
		// A corrupt entry falls through to recomputation.
		s.logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	}

	result := engine.Evaluate(s.params, req.ToEngineInput())

	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded), s.ttl); err != nil {
			s.logger.Warn("Failed to cache comparison result", zap.Error(err))
		}
	}

	s.logger.Info("Comparison computed",
		zap.String("request_id", requestID.String()),
		zap.String("booking_type", req.BookingType),
		zap.String("recommendation", string(result.Recommendation.Path)),
		zap.String("confidence", string(result.Confidence)),
		zap.Int("award_errors", len(result.AwardErrors)),
	)

	return &dto.CompareResponse{RequestID: requestID.String(), Result: result}, nil, nil
}

// cacheKey hashes the canonical JSON of the request. Identical inputs always
// produce identical results, so the hash fully identifies the computation.
func (s *ComparisonService) cacheKey(req dto.CompareRequest) (string, error) {
	canonical, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("compare:%x", xxhash.Sum64(canonical)), nil
}
