package usecase

import (
	"net/http"
	"strings"

	"partner-portal-service/internal/domain/apperror"
	"partner-portal-service/internal/domain/entity"
)

// HeaderField maps one inbound header onto the header sent to the hotel API
type HeaderField struct {
	Inbound  string
	Outbound string
	Required bool
	// Default is used when the caller did not send the header. Empty means none.
	Default string
}

// HeaderDefaults are the process-wide fallbacks for outbound headers
type HeaderDefaults struct {
	ChannelCode            string
	AppKey                 string
	OriginatingApplication string
	ExternalSystem         string
}

// StandardHeaderFields is the header set shared by every hotel API call
func StandardHeaderFields(d HeaderDefaults) []HeaderField {
	return []HeaderField{
		{Inbound: "authorization", Outbound: "Authorization"},
		{Inbound: "x-channelcode", Outbound: "x-channelCode", Required: true, Default: d.ChannelCode},
		{Inbound: "x-app-key", Outbound: "x-app-key", Default: d.AppKey},
		{Inbound: "accept-language", Outbound: "Accept-Language"},
		{Inbound: "x-request-id", Outbound: "x-request-id"},
		{Inbound: "x-originating-application", Outbound: "x-originating-application", Default: d.OriginatingApplication},
	}
}

// ShopOfferHeaderFields adds x-externalsystem, which only the offer endpoints accept
func ShopOfferHeaderFields(d HeaderDefaults) []HeaderField {
	return append(StandardHeaderFields(d),
		HeaderField{Inbound: "x-externalsystem", Outbound: "x-externalsystem", Default: d.ExternalSystem})
}

// ReservationHeaderFields drops accept-language, which the reservation endpoints do not take
func ReservationHeaderFields(d HeaderDefaults) []HeaderField {
	var fields []HeaderField
	for _, f := range StandardHeaderFields(d) {
		if f.Inbound != "accept-language" {
			fields = append(fields, f)
		}
	}
	return fields
}

// HeaderNormalizer turns inbound request headers into the outbound header set
type HeaderNormalizer struct {
	fields []HeaderField
}

// NewHeaderNormalizer creates a normalizer for the given fields
func NewHeaderNormalizer(fields []HeaderField) *HeaderNormalizer {
	return &HeaderNormalizer{fields: fields}
}

// Normalize applies inbound value, then configured default, then absent.
// A required field with neither fails with MissingRequiredHeader.
func (n *HeaderNormalizer) Normalize(inbound http.Header) (entity.Headers, error) {
	out := make(entity.Headers, len(n.fields))

	for _, f := range n.fields {
		value := strings.TrimSpace(inbound.Get(f.Inbound))
		if value == "" {
			value = f.Default
		}

		if value == "" {
			if f.Required {
				return nil, apperror.MissingHeader(f.Inbound)
			}
			continue
		}

		out[f.Outbound] = value
	}

	return out, nil
}
