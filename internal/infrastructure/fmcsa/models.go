package fmcsa

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/value"
)

// insuranceUnit converts QCMobile insurance amounts, reported in thousands of dollars.
const insuranceUnit = 1000

type carrierResponse struct {
	Content       []carrierContent `json:"content"`
	RetrievalDate string           `json:"retrievalDate"`
}

type carrierContent struct {
	Carrier *carrierDTO `json:"carrier"`
}

type carrierOperation struct {
	Code        string `json:"carrierOperationCode"`
	Description string `json:"carrierOperationDesc"`
}

type carrierDTO struct {
	DOTNumber        flexInt           `json:"dotNumber"`
	LegalName        string            `json:"legalName"`
	DBAName          *string           `json:"dbaName"`
	AllowedToOperate string            `json:"allowedToOperate"`
	StatusCode       string            `json:"statusCode"`
	OOSDate          *string           `json:"oosDate"`
	CarrierOperation *carrierOperation `json:"carrierOperation"`

	PhyStreet  string `json:"phyStreet"`
	PhyCity    string `json:"phyCity"`
	PhyState   string `json:"phyState"`
	PhyZipcode string `json:"phyZipcode"`
	Telephone  string `json:"telephone"`

	TotalDrivers    flexInt `json:"totalDrivers"`
	TotalPowerUnits flexInt `json:"totalPowerUnits"`

	BIPDInsuranceOnFile   flexInt `json:"bipdInsuranceOnFile"`
	BIPDInsuranceRequired flexInt `json:"bipdInsuranceRequired"`
	CargoInsuranceOnFile  flexInt `json:"cargoInsuranceOnFile"`
	BondInsuranceOnFile   flexInt `json:"bondInsuranceOnFile"`

	SafetyRating     *string   `json:"safetyRating"`
	SafetyRatingDate *string   `json:"safetyRatingDate"`
	DriverOOSRate    flexFloat `json:"driverOosRate"`
	VehicleOOSRate   flexFloat `json:"vehicleOosRate"`
	CrashTotal       flexInt   `json:"crashTotal"`
	FatalCrash       flexInt   `json:"fatalCrash"`
	InjuryCrash      flexInt   `json:"injCrash"`
}

// flexInt accepts a JSON number, a numeric string or null.
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := unquote(data)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err //nolint:wrapcheck
	}

	*f = flexInt(n)

	return nil
}

// flexFloat accepts a JSON number, a numeric string or null.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := unquote(data)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err //nolint:wrapcheck
	}

	*f = flexFloat(n)

	return nil
}

func unquote(data []byte) string {
	return strings.TrimSpace(string(bytes.Trim(data, `"`)))
}

func (c carrierDTO) snapshot(mc value.MCNumber) entity.CarrierSnapshot {
	insurance := entity.InsuranceInfo{
		BIPDOnFile:   int64(c.BIPDInsuranceOnFile) * insuranceUnit,
		BIPDRequired: int64(c.BIPDInsuranceRequired) * insuranceUnit,
		CargoOnFile:  int64(c.CargoInsuranceOnFile) * insuranceUnit,
		BondOnFile:   int64(c.BondInsuranceOnFile) * insuranceUnit,
	}
	insurance.InsuranceOnFile = insurance.BIPDOnFile > 0 && insurance.BIPDOnFile >= insurance.BIPDRequired

	var entityType string
	if c.CarrierOperation != nil {
		entityType = c.CarrierOperation.Description
	}

	return entity.CarrierSnapshot{
		Info: entity.CarrierInfo{
			MCNumber:        mc,
			DOTNumber:       dotNumber(c.DOTNumber),
			LegalName:       strings.TrimSpace(c.LegalName),
			DBAName:         strings.TrimSpace(lo.FromPtr(c.DBAName)),
			OperatingStatus: c.operatingStatus(),
			Status:          c.status(),
			EntityType:      entityType,
			Address:         c.address(),
			Phone:           c.Telephone,
			TotalDrivers:    int(c.TotalDrivers),
			TotalPowerUnits: int(c.TotalPowerUnits),
		},
		Safety: entity.SafetyScore{
			Rating:         safetyRating(lo.FromPtr(c.SafetyRating)),
			RatingDate:     parseDate(lo.FromPtr(c.SafetyRatingDate)),
			DriverOOSRate:  float64(c.DriverOOSRate),
			VehicleOOSRate: float64(c.VehicleOOSRate),
			CrashTotal:     int(c.CrashTotal),
			FatalCrash:     int(c.FatalCrash),
			InjuryCrash:    int(c.InjuryCrash),
		},
		Insurance: insurance,
	}
}

func (c carrierDTO) operatingStatus() value.OperatingStatus {
	switch strings.ToUpper(c.AllowedToOperate) {
	case "Y":
		return value.OperatingAuthorizedForHire
	case "N":
		if lo.FromPtr(c.OOSDate) != "" {
			return value.OperatingOutOfService
		}
		return value.OperatingNotAuthorized
	default:
		return value.OperatingUnknown
	}
}

func (c carrierDTO) status() value.CarrierStatus {
	if strings.EqualFold(c.StatusCode, "A") {
		return value.CarrierActive
	}

	return value.CarrierInactive
}

func (c carrierDTO) address() string {
	parts := make([]string, 0, 3)

	for _, p := range []string{c.PhyStreet, c.PhyCity, strings.TrimSpace(c.PhyState + " " + c.PhyZipcode)} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}

func safetyRating(code string) value.SafetyRating {
	switch strings.ToUpper(code) {
	case "S":
		return value.SafetySatisfactory
	case "C":
		return value.SafetyConditional
	case "U":
		return value.SafetyUnsatisfactory
	default:
		return value.SafetyNotRated
	}
}

func dotNumber(n flexInt) string {
	if n == 0 {
		return ""
	}

	return strconv.FormatInt(int64(n), 10)
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339, "2006-01-02T15:04:05.000-0700"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	return nil
}
