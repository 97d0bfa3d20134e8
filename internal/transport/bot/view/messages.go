package view

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/value"
)

const (
	StartMessage = "🚚 <b>Carrier desk</b>\n\n" +
		"/verify <code>MC</code> check a carrier\n" +
		"/negotiation <code>ID</code> show a negotiation"

	VerifyUsage          = "❌ Usage: /verify <code>MC</code>"
	NegotiationUsage     = "❌ Usage: /negotiation <code>ID</code>"
	NegotiationInvalidID = "❌ Negotiation id must be a UUID"
	NegotiationNotFound  = "⚠️ Negotiation not found"
	InternalError        = "❌ Something went wrong, check the logs"
)

// ErrorText shows the message of a domain error and hides everything else.
func ErrorText(err error) string {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return "❌ " + html.EscapeString(appErr.Message)
	}

	return InternalError
}

func VerificationText(r entity.VerificationResult) string {
	var sb strings.Builder

	if r.Eligible {
		sb.WriteString("✅ <b>Eligible</b>")
	} else {
		sb.WriteString("⛔ <b>Not eligible</b>")
	}

	fmt.Fprintf(&sb, " MC <code>%s</code>\n", html.EscapeString(r.MCNumber))

	if r.CarrierInfo != nil {
		fmt.Fprintf(&sb, "%s\n", html.EscapeString(r.CarrierInfo.LegalName))
		fmt.Fprintf(&sb, "Authority: %s, record: %s\n", r.CarrierInfo.OperatingStatus, r.CarrierInfo.Status)
	}

	if r.InsuranceInfo != nil {
		fmt.Fprintf(&sb, "Insurance on file: %s\n", yesNo(r.InsuranceInfo.InsuranceOnFile))
	}

	if r.Reason != "" {
		fmt.Fprintf(&sb, "Reason: %s\n", html.EscapeString(r.Reason))
	}

	if r.Warning != "" {
		fmt.Fprintf(&sb, "⚠️ %s\n", html.EscapeString(r.Warning))
	}

	fmt.Fprintf(&sb, "<i>source: %s</i>", r.VerificationSource)

	return sb.String()
}

func NegotiationText(s entity.NegotiationSession) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🤝 <b>Load %s</b>, MC <code>%s</code>\n", html.EscapeString(s.LoadID), s.MCNumber)
	fmt.Fprintf(&sb, "Round %d/%d, status: %s\n", s.RoundNumber, s.MaxRounds, status(s))
	fmt.Fprintf(&sb, "Reference $%s, carrier offer $%s\n", s.ReferenceRate, s.CarrierOffer)

	if s.CounterOffer != nil && !s.FinalStatus.IsTerminal() {
		fmt.Fprintf(&sb, "Our counter $%s\n", s.CounterOffer)
	}

	if s.AgreedRate != nil {
		fmt.Fprintf(&sb, "Agreed $%s\n", s.AgreedRate)
	}

	if s.Reason != "" {
		fmt.Fprintf(&sb, "Reason: %s\n", html.EscapeString(s.Reason))
	}

	fmt.Fprintf(&sb, "<code>%s</code>", s.ID)

	return sb.String()
}

func status(s entity.NegotiationSession) string {
	if s.FinalStatus == value.FinalOpen {
		return "open"
	}

	return string(s.FinalStatus)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
