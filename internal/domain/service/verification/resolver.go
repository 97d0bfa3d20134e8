package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/value"
	"carrier_desk/pkg/contextx"
	"carrier_desk/pkg/errcodes"
	"carrier_desk/pkg/logx"
)

const (
	DefaultCarrierTTL   = 24 * time.Hour
	DefaultSnapshotTTL  = time.Hour
	DefaultMaxStaleness = 7 * 24 * time.Hour
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// Resolver answers carrier eligibility questions cache first, then from the
// registry, then from the last stored record.
type Resolver struct {
	cache    Cache
	registry Registry
	carriers CarrierRepository
	recorder lookupRecorder

	carrierTTL   time.Duration
	snapshotTTL  time.Duration
	maxStaleness time.Duration

	now   func() time.Time
	newID func() uuid.UUID
}

func NewResolver(cache Cache, registry Registry, carriers CarrierRepository) *Resolver {
	return &Resolver{
		cache:        cache,
		registry:     registry,
		carriers:     carriers,
		recorder:     nopRecorder{},
		carrierTTL:   DefaultCarrierTTL,
		snapshotTTL:  DefaultSnapshotTTL,
		maxStaleness: DefaultMaxStaleness,
		now:          time.Now,
		newID:        uuid.New,
	}
}

func (r *Resolver) WithCarrierTTL(ttl time.Duration) *Resolver {
	r.carrierTTL = ttl
	return r
}

func (r *Resolver) WithSnapshotTTL(ttl time.Duration) *Resolver {
	r.snapshotTTL = ttl
	return r
}

func (r *Resolver) WithMaxStaleness(d time.Duration) *Resolver {
	r.maxStaleness = d
	return r
}

func (r *Resolver) WithRecorder(recorder lookupRecorder) *Resolver {
	r.recorder = recorder
	return r
}

func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

func (r *Resolver) WithIDGenerator(newID func() uuid.UUID) *Resolver {
	r.newID = newID
	return r
}

// Verify resolves eligibility for a raw MC number. Only a registry
// authentication failure is returned as an error; every other outcome,
// including bad input and unknown carriers, is a result.
func (r *Resolver) Verify(ctx context.Context, raw string) (entity.VerificationResult, error) {
	mc, err := value.ParseMCNumber(raw)
	if err != nil {
		r.recorder.RecordVerification(value.SourceValidationError)

		return entity.VerificationResult{
			MCNumber:              value.NormalizeMCNumber(raw),
			Eligible:              false,
			VerificationSource:    value.SourceValidationError,
			VerificationTimestamp: r.now(),
			Reason:                reasonFromError(err),
		}, nil
	}

	ctx = withMCNumber(ctx, mc)

	if result, ok := r.cachedResult(ctx, mc); ok {
		r.recorder.RecordVerification(value.SourceCache)
		return result, nil
	}

	snapshot, err := r.registry.GetCarrier(ctx, mc)
	if err == nil {
		result := r.registryResult(mc, snapshot)

		r.store(ctx, CarrierKey(mc), result, r.carrierTTL)
		r.persist(ctx, snapshot)
		r.recorder.RecordVerification(value.SourceRegistry)

		return result, nil
	}

	if domain.HasCode(err, errcodes.RegistryAuthFailed) {
		return entity.VerificationResult{}, err
	}

	logRegistryFailure(ctx, err)

	result := r.fallbackResult(ctx, mc, err)
	r.recorder.RecordVerification(result.VerificationSource)

	return result, nil
}

// Snapshot is Verify for the full registry payload.
func (r *Resolver) Snapshot(ctx context.Context, raw string) (entity.Snapshot, error) {
	mc, err := value.ParseMCNumber(raw)
	if err != nil {
		return entity.Snapshot{
			MCNumber:    value.NormalizeMCNumber(raw),
			Source:      value.SourceValidationError,
			RetrievedAt: r.now(),
			Reason:      reasonFromError(err),
		}, nil
	}

	ctx = withMCNumber(ctx, mc)

	if snapshot, ok := r.cachedSnapshot(ctx, mc); ok {
		return snapshot, nil
	}

	payload, err := r.registry.GetCarrier(ctx, mc)
	if err == nil {
		snapshot := entity.Snapshot{
			MCNumber:    mc.String(),
			Payload:     &payload,
			Source:      value.SourceRegistry,
			RetrievedAt: r.now(),
		}

		r.store(ctx, SnapshotKey(mc), snapshot, r.snapshotTTL)
		r.store(ctx, SafetyKey(mc), payload.Safety, r.snapshotTTL)
		r.store(ctx, InsuranceKey(mc), payload.Insurance, r.snapshotTTL)
		r.persist(ctx, payload)

		return snapshot, nil
	}

	if domain.HasCode(err, errcodes.RegistryAuthFailed) {
		return entity.Snapshot{}, err
	}

	logRegistryFailure(ctx, err)

	return r.fallbackSnapshot(ctx, mc, err), nil
}

// Invalidate drops every cached entry for the carrier. Deletion continues
// past individual failures; they are returned joined.
func (r *Resolver) Invalidate(ctx context.Context, raw string) error {
	mc, err := value.ParseMCNumber(raw)
	if err != nil {
		return err
	}

	var errs []error

	for _, key := range Keys(mc) {
		if err := r.cache.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}

// KeyStatus describes one cached entry of a carrier.
type KeyStatus struct {
	Key          string        `json:"key"`
	Exists       bool          `json:"exists"`
	RemainingTTL time.Duration `json:"remaining_ttl_ns,omitempty"`
}

// CacheStatus reports which of the carrier's cache entries are present.
func (r *Resolver) CacheStatus(ctx context.Context, raw string) ([]KeyStatus, error) {
	mc, err := value.ParseMCNumber(raw)
	if err != nil {
		return nil, err
	}

	statuses := make([]KeyStatus, 0, len(Keys(mc)))

	for _, key := range Keys(mc) {
		exists, err := r.cache.Exists(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("exists %s: %w", key, err)
		}

		status := KeyStatus{Key: key, Exists: exists}

		if exists {
			ttl, ok, err := r.cache.RemainingTTL(ctx, key)
			if err != nil {
				return nil, fmt.Errorf("ttl %s: %w", key, err)
			}

			// An entry may expire between the two calls.
			status.Exists = ok
			status.RemainingTTL = ttl
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}

// Deactivate soft-deletes the stored carrier and drops its cache entries.
func (r *Resolver) Deactivate(ctx context.Context, raw string) error {
	mc, err := value.ParseMCNumber(raw)
	if err != nil {
		return err
	}

	ctx = withMCNumber(ctx, mc)

	if err := r.carriers.Deactivate(ctx, mc); err != nil {
		return fmt.Errorf("deactivate carrier: %w", err)
	}

	if err := r.Invalidate(ctx, mc.String()); err != nil {
		logger(ctx).Warn("failed to invalidate cache after deactivation", logx.Error(err))
	}

	return nil
}

func (r *Resolver) cachedResult(ctx context.Context, mc value.MCNumber) (entity.VerificationResult, bool) {
	var result entity.VerificationResult

	if !r.load(ctx, NamespaceCarrier, CarrierKey(mc), &result) {
		return entity.VerificationResult{}, false
	}

	result.VerificationSource = value.SourceCache
	result.Cached = true

	return result, true
}

func (r *Resolver) cachedSnapshot(ctx context.Context, mc value.MCNumber) (entity.Snapshot, bool) {
	var snapshot entity.Snapshot

	if !r.load(ctx, NamespaceSnapshot, SnapshotKey(mc), &snapshot) {
		return entity.Snapshot{}, false
	}

	snapshot.Source = value.SourceCache
	snapshot.Cached = true

	return snapshot, true
}

// load reads and decodes a cache entry. Cache failures and undecodable
// entries count as misses.
func (r *Resolver) load(ctx context.Context, namespace, key string, dst any) bool {
	raw, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		logger(ctx).Warn("cache lookup failed", slog.String(logx.FieldCacheKey, key), logx.Error(err))
		r.recorder.RecordCacheLookup(namespace, false)

		return false
	}

	if !ok {
		r.recorder.RecordCacheLookup(namespace, false)
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		logger(ctx).Warn("discarding undecodable cache entry", slog.String(logx.FieldCacheKey, key), logx.Error(err))
		r.recorder.RecordCacheLookup(namespace, false)

		return false
	}

	r.recorder.RecordCacheLookup(namespace, true)

	return true
}

func (r *Resolver) store(ctx context.Context, key string, v any, ttl time.Duration) {
	raw, err := json.Marshal(v)
	if err != nil {
		logger(ctx).Error("failed to encode cache entry", slog.String(logx.FieldCacheKey, key), logx.Error(err))
		return
	}

	if err := r.cache.Set(ctx, key, raw, ttl); err != nil {
		logger(ctx).Warn("cache write failed", slog.String(logx.FieldCacheKey, key), logx.Error(err))
	}
}

func (r *Resolver) registryResult(mc value.MCNumber, s entity.CarrierSnapshot) entity.VerificationResult {
	carrier := s.Carrier()

	return entity.VerificationResult{
		MCNumber:              mc.String(),
		Eligible:              carrier.IsEligible(),
		CarrierInfo:           &s.Info,
		InsuranceInfo:         &s.Insurance,
		SafetyScore:           &s.Safety,
		VerificationSource:    value.SourceRegistry,
		VerificationTimestamp: r.now(),
		Reason:                carrier.IneligibilityReason(),
		Details:               carrier.EligibilityDetails(),
	}
}

// persist writes a fresh registry payload through to the carrier store.
// Failures are logged: the caller already has its answer.
func (r *Resolver) persist(ctx context.Context, s entity.CarrierSnapshot) {
	now := r.now()

	existing, err := r.carriers.GetByMCNumber(ctx, s.Info.MCNumber)

	switch {
	case err == nil:
		existing.ApplySnapshot(s)
		existing.VerificationSource = value.SourceRegistry
		existing.VerifiedAt = now

		if err := r.carriers.Update(ctx, existing); err != nil {
			logger(ctx).Error("failed to update carrier record", logx.Error(err))
		}
	case domain.HasCode(err, errcodes.CarrierNotFound):
		carrier := s.Carrier()
		carrier.ID = r.newID()
		carrier.VerificationSource = value.SourceRegistry
		carrier.VerifiedAt = now

		if err := r.carriers.Create(ctx, &carrier); err != nil {
			logger(ctx).Error("failed to create carrier record", logx.Error(err))
		}
	default:
		logger(ctx).Error("failed to load carrier record for write-back", logx.Error(err))
	}
}

// stored returns the last stored record, or nil with the reason it is missing.
func (r *Resolver) stored(ctx context.Context, mc value.MCNumber, registryErr error) (*entity.Carrier, string) {
	carrier, err := r.carriers.GetByMCNumber(ctx, mc)
	if err == nil {
		return carrier, ""
	}

	if !domain.HasCode(err, errcodes.CarrierNotFound) {
		logger(ctx).Error("fallback lookup failed", logx.Error(err))
	}

	if domain.HasCode(registryErr, errcodes.CarrierNotFound) {
		return nil, "Carrier not found in FMCSA registry or local records"
	}

	return nil, "FMCSA registry unavailable and no local record exists"
}

func (r *Resolver) fallbackResult(ctx context.Context, mc value.MCNumber, registryErr error) entity.VerificationResult {
	now := r.now()

	carrier, reason := r.stored(ctx, mc, registryErr)
	if carrier == nil {
		return entity.VerificationResult{
			MCNumber:              mc.String(),
			Eligible:              false,
			VerificationSource:    value.SourceNotFound,
			VerificationTimestamp: now,
			Reason:                reason,
		}
	}

	s := carrier.Snapshot()

	return entity.VerificationResult{
		MCNumber:              mc.String(),
		Eligible:              carrier.IsEligible(),
		CarrierInfo:           &s.Info,
		InsuranceInfo:         &s.Insurance,
		SafetyScore:           &s.Safety,
		VerificationSource:    value.SourceDatabaseFallback,
		VerificationTimestamp: now,
		Warning:               r.fallbackWarning(now.Sub(carrier.UpdatedAt), registryErr),
		Reason:                carrier.IneligibilityReason(),
		Details:               carrier.EligibilityDetails(),
	}
}

func (r *Resolver) fallbackSnapshot(ctx context.Context, mc value.MCNumber, registryErr error) entity.Snapshot {
	now := r.now()

	carrier, reason := r.stored(ctx, mc, registryErr)
	if carrier == nil {
		return entity.Snapshot{
			MCNumber:    mc.String(),
			Source:      value.SourceNotFound,
			RetrievedAt: now,
			Reason:      reason,
		}
	}

	payload := carrier.Snapshot()

	return entity.Snapshot{
		MCNumber:    mc.String(),
		Payload:     &payload,
		Source:      value.SourceDatabaseFallback,
		RetrievedAt: now,
		Warning:     r.fallbackWarning(now.Sub(carrier.UpdatedAt), registryErr),
	}
}

func (r *Resolver) fallbackWarning(age time.Duration, registryErr error) string {
	cause := "FMCSA registry unavailable"
	if domain.HasCode(registryErr, errcodes.CarrierNotFound) {
		cause = "Carrier not found in FMCSA registry"
	}

	warning := fmt.Sprintf("%s; using stored carrier data last updated %s ago", cause, formatAge(age))

	if age > r.maxStaleness {
		warning += fmt.Sprintf(" (older than %s, verify manually)", formatAge(r.maxStaleness))
	}

	return warning
}

func formatAge(d time.Duration) string {
	switch {
	case d >= 24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	case d >= time.Hour:
		return plural(int(d/time.Hour), "hour")
	case d >= time.Minute:
		return plural(int(d/time.Minute), "minute")
	default:
		return "less than a minute"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}

	return fmt.Sprintf("%d %ss", n, unit)
}

func reasonFromError(err error) string {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	return err.Error()
}

func logRegistryFailure(ctx context.Context, err error) {
	code, _ := domain.GetCode(err)

	switch code {
	case errcodes.CarrierNotFound:
		logger(ctx).Info("carrier not found in registry, checking local records")
	case errcodes.RegistryRateLimited, errcodes.RegistryTimeout, errcodes.RegistryUnavailable, errcodes.RegistryBadResponse:
		logger(ctx).Warn("registry unavailable, falling back to local records", logx.Error(err))
	default:
		logger(ctx).Error("unexpected registry failure, falling back to local records", logx.Error(err))
	}
}

func withMCNumber(ctx context.Context, mc value.MCNumber) context.Context {
	return contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldMCNumber, mc.String())))
}
