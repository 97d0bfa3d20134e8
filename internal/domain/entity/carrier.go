package entity

import (
	"time"

	"github.com/google/uuid"

	"carrier_desk/internal/domain/value"
)

// Carrier is the last known state of a carrier as stored by the broker.
type Carrier struct {
	ID              uuid.UUID
	MCNumber        value.MCNumber
	DOTNumber       string
	LegalName       string
	DBAName         string
	OperatingStatus value.OperatingStatus
	Status          value.CarrierStatus
	EntityType      string
	Address         string
	Phone           string
	TotalDrivers    int
	TotalPowerUnits int

	// Insurance amounts on file, in whole dollars.
	BIPDOnFile      int64
	BIPDRequired    int64
	CargoOnFile     int64
	BondOnFile      int64
	InsuranceOnFile bool

	SafetyRating     value.SafetyRating
	SafetyRatingDate *time.Time
	DriverOOSRate    float64
	VehicleOOSRate   float64
	CrashTotal       int
	FatalCrash       int
	InjuryCrash      int

	VerificationSource value.VerificationSource
	VerifiedAt         time.Time

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsEligible reports whether the carrier may haul a load.
func (c Carrier) IsEligible() bool {
	return c.OperatingStatus == value.OperatingAuthorizedForHire &&
		c.Status == value.CarrierActive &&
		c.InsuranceOnFile
}

// IneligibilityReason explains the first failing eligibility condition, or
// returns an empty string for an eligible carrier.
func (c Carrier) IneligibilityReason() string {
	switch c.OperatingStatus {
	case value.OperatingAuthorizedForHire:
	case value.OperatingNotAuthorized:
		return "Carrier is not authorized for hire"
	case value.OperatingOutOfService:
		return "Carrier is out of service"
	case value.OperatingUnknown:
		return "Carrier operating authority is unknown"
	default:
		return "Carrier operating authority is unknown"
	}

	switch c.Status {
	case value.CarrierActive:
	case value.CarrierInactive:
		return "Carrier record is inactive"
	default:
		return "Carrier record is inactive"
	}

	if !c.InsuranceOnFile {
		return "No insurance on file"
	}

	return ""
}

// EligibilityDetails is the per-condition breakdown attached to verification results.
func (c Carrier) EligibilityDetails() map[string]any {
	return map[string]any{
		"operating_status":  c.OperatingStatus,
		"status":            c.Status,
		"insurance_on_file": c.InsuranceOnFile,
	}
}

// ApplySnapshot overwrites registry-owned fields with a fresh registry payload.
// Identity, version and timestamps are left to the store.
func (c *Carrier) ApplySnapshot(s CarrierSnapshot) {
	c.MCNumber = s.Info.MCNumber
	c.DOTNumber = s.Info.DOTNumber
	c.LegalName = s.Info.LegalName
	c.DBAName = s.Info.DBAName
	c.OperatingStatus = s.Info.OperatingStatus
	c.Status = s.Info.Status
	c.EntityType = s.Info.EntityType
	c.Address = s.Info.Address
	c.Phone = s.Info.Phone
	c.TotalDrivers = s.Info.TotalDrivers
	c.TotalPowerUnits = s.Info.TotalPowerUnits

	c.BIPDOnFile = s.Insurance.BIPDOnFile
	c.BIPDRequired = s.Insurance.BIPDRequired
	c.CargoOnFile = s.Insurance.CargoOnFile
	c.BondOnFile = s.Insurance.BondOnFile
	c.InsuranceOnFile = s.Insurance.InsuranceOnFile

	c.SafetyRating = s.Safety.Rating
	c.SafetyRatingDate = s.Safety.RatingDate
	c.DriverOOSRate = s.Safety.DriverOOSRate
	c.VehicleOOSRate = s.Safety.VehicleOOSRate
	c.CrashTotal = s.Safety.CrashTotal
	c.FatalCrash = s.Safety.FatalCrash
	c.InjuryCrash = s.Safety.InjuryCrash
}

// Snapshot projects the stored record back into the registry payload shape.
func (c Carrier) Snapshot() CarrierSnapshot {
	return CarrierSnapshot{
		Info: CarrierInfo{
			MCNumber:        c.MCNumber,
			DOTNumber:       c.DOTNumber,
			LegalName:       c.LegalName,
			DBAName:         c.DBAName,
			OperatingStatus: c.OperatingStatus,
			Status:          c.Status,
			EntityType:      c.EntityType,
			Address:         c.Address,
			Phone:           c.Phone,
			TotalDrivers:    c.TotalDrivers,
			TotalPowerUnits: c.TotalPowerUnits,
		},
		Insurance: InsuranceInfo{
			BIPDOnFile:      c.BIPDOnFile,
			BIPDRequired:    c.BIPDRequired,
			CargoOnFile:     c.CargoOnFile,
			BondOnFile:      c.BondOnFile,
			InsuranceOnFile: c.InsuranceOnFile,
		},
		Safety: SafetyScore{
			Rating:         c.SafetyRating,
			RatingDate:     c.SafetyRatingDate,
			DriverOOSRate:  c.DriverOOSRate,
			VehicleOOSRate: c.VehicleOOSRate,
			CrashTotal:     c.CrashTotal,
			FatalCrash:     c.FatalCrash,
			InjuryCrash:    c.InjuryCrash,
		},
	}
}
