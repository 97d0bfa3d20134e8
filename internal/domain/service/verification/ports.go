package verification

import (
	"context"
	"time"

	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/value"
)

//go:generate moq -rm -out cache_mock.gen.go . Cache:CacheMock
//go:generate moq -rm -out registry_mock.gen.go . Registry:RegistryMock
//go:generate moq -rm -out carrier_repository_mock.gen.go . CarrierRepository:CarrierRepositoryMock

// Cache stores opaque values under string keys. A missing key is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// RemainingTTL reports false for a missing key and a zero duration for a
	// key without expiry.
	RemainingTTL(ctx context.Context, key string) (time.Duration, bool, error)
}

// Registry is the authoritative carrier source. Failures carry one of the
// Registry* or CarrierNotFound codes.
type Registry interface {
	GetCarrier(ctx context.Context, mc value.MCNumber) (entity.CarrierSnapshot, error)
}

type CarrierRepository interface {
	GetByMCNumber(ctx context.Context, mc value.MCNumber) (*entity.Carrier, error)
	Create(ctx context.Context, carrier *entity.Carrier) error
	Update(ctx context.Context, carrier *entity.Carrier) error
	Deactivate(ctx context.Context, mc value.MCNumber) error
}

type lookupRecorder interface {
	RecordCacheLookup(namespace string, hit bool)
	RecordVerification(source value.VerificationSource)
}

type nopRecorder struct{}

func (nopRecorder) RecordCacheLookup(string, bool) {}

func (nopRecorder) RecordVerification(value.VerificationSource) {}
