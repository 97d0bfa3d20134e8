package entity

import (
	"time"

	"carrier_desk/internal/domain/value"
)

type CarrierInfo struct {
	MCNumber        value.MCNumber        `json:"mc_number"`
	DOTNumber       string                `json:"dot_number,omitempty"`
	LegalName       string                `json:"legal_name"`
	DBAName         string                `json:"dba_name,omitempty"`
	OperatingStatus value.OperatingStatus `json:"operating_status"`
	Status          value.CarrierStatus   `json:"status"`
	EntityType      string                `json:"entity_type,omitempty"`
	Address         string                `json:"physical_address,omitempty"`
	Phone           string                `json:"telephone,omitempty"`
	TotalDrivers    int                   `json:"total_drivers"`
	TotalPowerUnits int                   `json:"total_power_units"`
}

type InsuranceInfo struct {
	BIPDOnFile      int64 `json:"bipd_on_file"`
	BIPDRequired    int64 `json:"bipd_required"`
	CargoOnFile     int64 `json:"cargo_on_file"`
	BondOnFile      int64 `json:"bond_on_file"`
	InsuranceOnFile bool  `json:"insurance_on_file"`
}

type SafetyScore struct {
	Rating         value.SafetyRating `json:"rating"`
	RatingDate     *time.Time         `json:"rating_date,omitempty"`
	DriverOOSRate  float64            `json:"driver_oos_rate"`
	VehicleOOSRate float64            `json:"vehicle_oos_rate"`
	CrashTotal     int                `json:"crash_total"`
	FatalCrash     int                `json:"fatal_crash"`
	InjuryCrash    int                `json:"injury_crash"`
}

// CarrierSnapshot is the full registry payload for one MC number.
type CarrierSnapshot struct {
	Info      CarrierInfo   `json:"carrier_info"`
	Safety    SafetyScore   `json:"safety_scores"`
	Insurance InsuranceInfo `json:"insurance"`
}

// Carrier builds an unsaved record from the payload.
func (s CarrierSnapshot) Carrier() Carrier {
	var c Carrier
	c.ApplySnapshot(s)
	return c
}

// VerificationResult is the eligibility answer for one MC number.
type VerificationResult struct {
	MCNumber              string                   `json:"mc_number"`
	Eligible              bool                     `json:"eligible"`
	CarrierInfo           *CarrierInfo             `json:"carrier_info,omitempty"`
	InsuranceInfo         *InsuranceInfo           `json:"insurance_info,omitempty"`
	SafetyScore           *SafetyScore             `json:"safety_score,omitempty"`
	VerificationSource    value.VerificationSource `json:"verification_source"`
	Cached                bool                     `json:"cached"`
	VerificationTimestamp time.Time                `json:"verification_timestamp"`
	Warning               string                   `json:"warning,omitempty"`
	Reason                string                   `json:"reason,omitempty"`
	Details               map[string]any           `json:"details,omitempty"`
}

// Snapshot is the full-payload variant of a verification result.
type Snapshot struct {
	MCNumber    string                   `json:"mc_number"`
	Payload     *CarrierSnapshot         `json:"snapshot,omitempty"`
	Source      value.VerificationSource `json:"verification_source"`
	Cached      bool                     `json:"cached"`
	RetrievedAt time.Time                `json:"retrieved_at"`
	Warning     string                   `json:"warning,omitempty"`
	Reason      string                   `json:"reason,omitempty"`
}
