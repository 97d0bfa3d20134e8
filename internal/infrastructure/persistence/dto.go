package persistence

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/value"
	"carrier_desk/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// carrierSchema maps a row of the carriers table.
type carrierSchema struct {
	ID                 uuid.UUID    `db:"id"`
	MCNumber           string       `db:"mc_number"`
	DOTNumber          string       `db:"dot_number"`
	LegalName          string       `db:"legal_name"`
	DBAName            string       `db:"dba_name"`
	OperatingStatus    string       `db:"operating_status"`
	Status             string       `db:"status"`
	EntityType         string       `db:"entity_type"`
	Address            string       `db:"address"`
	Phone              string       `db:"phone"`
	TotalDrivers       int          `db:"total_drivers"`
	TotalPowerUnits    int          `db:"total_power_units"`
	BIPDOnFile         int64        `db:"bipd_on_file"`
	BIPDRequired       int64        `db:"bipd_required"`
	CargoOnFile        int64        `db:"cargo_on_file"`
	BondOnFile         int64        `db:"bond_on_file"`
	InsuranceOnFile    bool         `db:"insurance_on_file"`
	SafetyRating       string       `db:"safety_rating"`
	SafetyRatingDate   sql.NullTime `db:"safety_rating_date"`
	DriverOOSRate      float64      `db:"driver_oos_rate"`
	VehicleOOSRate     float64      `db:"vehicle_oos_rate"`
	CrashTotal         int          `db:"crash_total"`
	FatalCrash         int          `db:"fatal_crash"`
	InjuryCrash        int          `db:"injury_crash"`
	VerificationSource string       `db:"verification_source"`
	VerifiedAt         time.Time    `db:"verified_at"`
	Version            int          `db:"version"`
	CreatedAt          time.Time    `db:"created_at"`
	UpdatedAt          time.Time    `db:"updated_at"`
}

func fromCarrier(c *entity.Carrier) carrierSchema {
	s := carrierSchema{
		ID:                 c.ID,
		MCNumber:           c.MCNumber.String(),
		DOTNumber:          c.DOTNumber,
		LegalName:          c.LegalName,
		DBAName:            c.DBAName,
		OperatingStatus:    string(c.OperatingStatus),
		Status:             string(c.Status),
		EntityType:         c.EntityType,
		Address:            c.Address,
		Phone:              c.Phone,
		TotalDrivers:       c.TotalDrivers,
		TotalPowerUnits:    c.TotalPowerUnits,
		BIPDOnFile:         c.BIPDOnFile,
		BIPDRequired:       c.BIPDRequired,
		CargoOnFile:        c.CargoOnFile,
		BondOnFile:         c.BondOnFile,
		InsuranceOnFile:    c.InsuranceOnFile,
		SafetyRating:       string(c.SafetyRating),
		DriverOOSRate:      c.DriverOOSRate,
		VehicleOOSRate:     c.VehicleOOSRate,
		CrashTotal:         c.CrashTotal,
		FatalCrash:         c.FatalCrash,
		InjuryCrash:        c.InjuryCrash,
		VerificationSource: string(c.VerificationSource),
		VerifiedAt:         c.VerifiedAt,
		Version:            c.Version,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}

	if c.SafetyRatingDate != nil {
		s.SafetyRatingDate = sql.NullTime{Time: *c.SafetyRatingDate, Valid: true}
	}

	return s
}

func (s *carrierSchema) toDomain() (*entity.Carrier, error) {
	mc, err := value.ParseMCNumber(s.MCNumber)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "stored carrier has invalid mc number")
	}

	operating, err := value.ParseOperatingStatus(s.OperatingStatus)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "stored carrier has invalid operating status")
	}

	status, err := value.ParseCarrierStatus(s.Status)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "stored carrier has invalid status")
	}

	rating, err := value.ParseSafetyRating(s.SafetyRating)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "stored carrier has invalid safety rating")
	}

	c := &entity.Carrier{
		ID:                 s.ID,
		MCNumber:           mc,
		DOTNumber:          s.DOTNumber,
		LegalName:          s.LegalName,
		DBAName:            s.DBAName,
		OperatingStatus:    operating,
		Status:             status,
		EntityType:         s.EntityType,
		Address:            s.Address,
		Phone:              s.Phone,
		TotalDrivers:       s.TotalDrivers,
		TotalPowerUnits:    s.TotalPowerUnits,
		BIPDOnFile:         s.BIPDOnFile,
		BIPDRequired:       s.BIPDRequired,
		CargoOnFile:        s.CargoOnFile,
		BondOnFile:         s.BondOnFile,
		InsuranceOnFile:    s.InsuranceOnFile,
		SafetyRating:       rating,
		DriverOOSRate:      s.DriverOOSRate,
		VehicleOOSRate:     s.VehicleOOSRate,
		CrashTotal:         s.CrashTotal,
		FatalCrash:         s.FatalCrash,
		InjuryCrash:        s.InjuryCrash,
		VerificationSource: value.VerificationSource(s.VerificationSource),
		VerifiedAt:         s.VerifiedAt,
		Version:            s.Version,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}

	if s.SafetyRatingDate.Valid {
		t := s.SafetyRatingDate.Time
		c.SafetyRatingDate = &t
	}

	return c, nil
}

// negotiationSchema maps a row of the negotiations table.
type negotiationSchema struct {
	ID                   uuid.UUID    `db:"id"`
	LoadID               string       `db:"load_id"`
	MCNumber             string       `db:"mc_number"`
	RoundNumber          int          `db:"round_number"`
	MaxRounds            int          `db:"max_rounds"`
	ReferenceRate        value.Rate   `db:"reference_rate"`
	CarrierOffer         value.Rate   `db:"carrier_offer"`
	MinimumAcceptable    *value.Rate  `db:"minimum_acceptable"`
	MaximumAcceptable    *value.Rate  `db:"maximum_acceptable"`
	Decision             string       `db:"decision"`
	CounterOffer         *value.Rate  `db:"counter_offer"`
	DecisionFactors      []byte       `db:"decision_factors"`
	FinalStatus          string       `db:"final_status"`
	AgreedRate           *value.Rate  `db:"agreed_rate"`
	Reason               string       `db:"reason"`
	IsActive             bool         `db:"is_active"`
	SessionStart         time.Time    `db:"session_start"`
	SessionEnd           sql.NullTime `db:"session_end"`
	TotalDurationSeconds int          `db:"total_duration_seconds"`
	Version              int          `db:"version"`
	CreatedAt            time.Time    `db:"created_at"`
	UpdatedAt            time.Time    `db:"updated_at"`
}

func fromNegotiation(s *entity.NegotiationSession) (negotiationSchema, error) {
	schema := negotiationSchema{
		ID:                   s.ID,
		LoadID:               s.LoadID,
		MCNumber:             s.MCNumber.String(),
		RoundNumber:          s.RoundNumber,
		MaxRounds:            s.MaxRounds,
		ReferenceRate:        s.ReferenceRate,
		CarrierOffer:         s.CarrierOffer,
		MinimumAcceptable:    s.MinimumAcceptable,
		MaximumAcceptable:    s.MaximumAcceptable,
		Decision:             string(s.Decision),
		CounterOffer:         s.CounterOffer,
		FinalStatus:          string(s.FinalStatus),
		AgreedRate:           s.AgreedRate,
		Reason:               s.Reason,
		IsActive:             s.IsActive,
		SessionStart:         s.SessionStart,
		TotalDurationSeconds: s.TotalDurationSeconds,
		Version:              s.Version,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}

	if s.DecisionFactors != nil {
		factors, err := json.Marshal(s.DecisionFactors)
		if err != nil {
			return negotiationSchema{}, domain.WrapError(err, errcodes.InternalServerError, "failed to encode decision factors")
		}
		schema.DecisionFactors = factors
	}

	if s.SessionEnd != nil {
		schema.SessionEnd = sql.NullTime{Time: *s.SessionEnd, Valid: true}
	}

	return schema, nil
}

func (s *negotiationSchema) toDomain() (*entity.NegotiationSession, error) {
	mc, err := value.ParseMCNumber(s.MCNumber)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "stored negotiation has invalid mc number")
	}

	var decision value.DecisionStatus
	if s.Decision != "" {
		if decision, err = value.ParseDecisionStatus(s.Decision); err != nil {
			return nil, domain.WrapError(err, errcodes.InternalServerError, "stored negotiation has invalid decision")
		}
	}

	final, err := value.ParseFinalStatus(s.FinalStatus)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "stored negotiation has invalid final status")
	}

	session := &entity.NegotiationSession{
		ID:                   s.ID,
		LoadID:               s.LoadID,
		MCNumber:             mc,
		RoundNumber:          s.RoundNumber,
		MaxRounds:            s.MaxRounds,
		ReferenceRate:        s.ReferenceRate,
		CarrierOffer:         s.CarrierOffer,
		MinimumAcceptable:    s.MinimumAcceptable,
		MaximumAcceptable:    s.MaximumAcceptable,
		Decision:             decision,
		CounterOffer:         s.CounterOffer,
		FinalStatus:          final,
		AgreedRate:           s.AgreedRate,
		Reason:               s.Reason,
		IsActive:             s.IsActive,
		SessionStart:         s.SessionStart,
		TotalDurationSeconds: s.TotalDurationSeconds,
		Version:              s.Version,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}

	if len(s.DecisionFactors) > 0 {
		var factors entity.DecisionFactors
		if err := json.Unmarshal(s.DecisionFactors, &factors); err != nil {
			return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to decode decision factors")
		}
		session.DecisionFactors = &factors
	}

	if s.SessionEnd.Valid {
		end := s.SessionEnd.Time
		session.SessionEnd = &end
	}

	return session, nil
}
