package verification

import "carrier_desk/internal/domain/value"

const (
	NamespaceCarrier   = "carrier"
	NamespaceSnapshot  = "snapshot"
	NamespaceSafety    = "safety"
	NamespaceInsurance = "insurance"

	keyPrefix = "fmcsa:"
)

func CarrierKey(mc value.MCNumber) string {
	return key(NamespaceCarrier, mc)
}

func SnapshotKey(mc value.MCNumber) string {
	return key(NamespaceSnapshot, mc)
}

func SafetyKey(mc value.MCNumber) string {
	return key(NamespaceSafety, mc)
}

func InsuranceKey(mc value.MCNumber) string {
	return key(NamespaceInsurance, mc)
}

// Keys lists every cache key held for a carrier.
func Keys(mc value.MCNumber) []string {
	return []string{CarrierKey(mc), SnapshotKey(mc), SafetyKey(mc), InsuranceKey(mc)}
}

func key(namespace string, mc value.MCNumber) string {
	return keyPrefix + namespace + ":" + mc.String()
}
