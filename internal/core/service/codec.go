package service

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/yndnr/postmask-go/internal/core/domain"
	"github.com/yndnr/postmask-go/internal/telemetry/logger"
	"github.com/yndnr/postmask-go/internal/telemetry/metric"
	"github.com/yndnr/postmask-go/pkg/checksum"
	"github.com/yndnr/postmask-go/pkg/postcodec"
)

// DefaultMaxInputBytes bounds one scanned post. Social network posts are
// far smaller; exports of whole threads fit comfortably.
const DefaultMaxInputBytes = 1 << 20

// CodecServiceConfig holds configuration for CodecService.
type CodecServiceConfig struct {
	// MaxInputBytes rejects larger posts. Zero or less disables the limit.
	MaxInputBytes int
}

// DefaultCodecServiceConfig returns default configuration.
func DefaultCodecServiceConfig() *CodecServiceConfig {
	return &CodecServiceConfig{
		MaxInputBytes: DefaultMaxInputBytes,
	}
}

// CodecService runs codec operations with validation, logging and metrics.
type CodecService struct {
	metrics  *metric.Registry
	maxInput int
	now      func() time.Time
}

// NewCodecService creates a CodecService. A nil registry gets a private one.
func NewCodecService(metrics *metric.Registry, config *CodecServiceConfig) *CodecService {
	if config == nil {
		config = DefaultCodecServiceConfig()
	}
	if metrics == nil {
		metrics = metric.NewRegistry()
	}

	return &CodecService{
		metrics:  metrics,
		maxInput: config.MaxInputBytes,
		now:      time.Now,
	}
}

// Metrics returns the registry the service records into.
func (s *CodecService) Metrics() *metric.Registry {
	return s.metrics
}

// EncodeChecksum frames token with its check digit.
func (s *CodecService) EncodeChecksum(ctx context.Context, token string) (string, error) {
	if err := validateToken(token); err != nil {
		return "", err
	}
	s.metrics.ObserveEncode(metric.KindChecksum)
	logger.L(ctx).Debug("checksum encoded", "length", len(token))
	return checksum.Encode(token), nil
}

// DecodeChecksum verifies a framed token. A mismatch is not an error, and
// neither is a character outside the token alphabet: both fail.
func (s *CodecService) DecodeChecksum(ctx context.Context, framed string) (string, bool) {
	token, ok := checksum.Decode(framed)
	if ok && !checksum.Valid(framed) {
		token, ok = "", false
	}
	s.metrics.ObserveDecode(metric.KindChecksum, ok)
	logger.L(ctx).Debug("checksum decoded", "length", len(framed), "ok", ok)
	return token, ok
}

// EncodeKey wraps a public key for posting.
func (s *CodecService) EncodeKey(ctx context.Context, key string) (string, error) {
	if err := validateToken(key); err != nil {
		return "", err
	}
	s.metrics.ObserveEncode(metric.KindKey)
	logger.L(ctx).Debug("public key encoded", "length", len(key))
	return postcodec.EncodePublicKey(key), nil
}

// DecodeKey returns the first valid public key in text.
func (s *CodecService) DecodeKey(ctx context.Context, text string) (string, bool, error) {
	if err := s.checkSize(text); err != nil {
		return "", false, err
	}
	keys := postcodec.DecodePublicKey(text)
	s.metrics.ObserveDecode(metric.KindKey, len(keys) > 0)
	if len(keys) == 0 {
		return "", false, nil
	}
	return keys[0], true, nil
}

// EncodePayload turns a payload into a postable link.
func (s *CodecService) EncodePayload(ctx context.Context, payload string) (string, error) {
	if payload == "" {
		return "", domain.ErrEmptyInput
	}
	s.metrics.ObserveEncode(metric.KindPayload)
	logger.L(ctx).Debug("payload encoded", "payload", payload)
	return postcodec.EncodePayload(payload), nil
}

// DecodePayload recovers the payload from the first payload link in text.
func (s *CodecService) DecodePayload(ctx context.Context, text string) (string, bool, error) {
	if err := s.checkSize(text); err != nil {
		return "", false, err
	}
	payload, ok := postcodec.DecodePayload(text)
	s.metrics.ObserveDecode(metric.KindPayload, ok)
	return payload, ok, nil
}

// Scan runs both decoders over one post and returns a report.
func (s *CodecService) Scan(ctx context.Context, source, text string) (*domain.Report, error) {
	if err := s.checkSize(text); err != nil {
		return nil, err
	}

	id, err := domain.GenerateScanID()
	if err != nil {
		return nil, err
	}
	ctx = logger.WithScanID(ctx, id)

	start := s.now()
	result := postcodec.Scan(text)
	s.metrics.ObserveScan(len(text), s.now().Sub(start))
	s.metrics.ObserveDecode(metric.KindKey, result.PublicKey != "")
	s.metrics.ObserveDecode(metric.KindPayload, result.Payload != "")

	report := &domain.Report{
		ID:        id,
		Source:    source,
		Size:      len(text),
		PublicKey: result.PublicKey,
		Payload:   result.Payload,
		ScannedAt: start,
	}

	logger.L(ctx).Info("post scanned",
		"source", source,
		"size", report.Size,
		"found", report.Found(),
		"payload", report.Payload,
	)
	return report, nil
}

func (s *CodecService) checkSize(text string) error {
	if s.maxInput > 0 && len(text) > s.maxInput {
		return domain.ErrInputTooLarge.WithDetails(
			humanize.Bytes(uint64(len(text))) + " exceeds " + humanize.Bytes(uint64(s.maxInput)))
	}
	return nil
}

func validateToken(token string) error {
	if token == "" {
		return domain.ErrEmptyInput
	}
	if !checksum.Valid(token) {
		return domain.ErrInvalidToken
	}
	return nil
}
