package enums

import "fmt"

// AnalyticsEventType is the canonical event_type for analytics rows.
type AnalyticsEventType string

const (
	AnalyticsEventStampCollected  AnalyticsEventType = "stamp_collected"
	AnalyticsEventQRScanned       AnalyticsEventType = "qr_scanned"
	AnalyticsEventRatingSubmitted AnalyticsEventType = "rating_submitted"
)

var validAnalyticsEventTypes = []AnalyticsEventType{
	AnalyticsEventStampCollected,
	AnalyticsEventQRScanned,
	AnalyticsEventRatingSubmitted,
}

// String implements fmt.Stringer.
func (a AnalyticsEventType) String() string {
	return string(a)
}

// IsValid reports whether the value matches the canonical analytics event_type enum.
func (a AnalyticsEventType) IsValid() bool {
	for _, candidate := range validAnalyticsEventTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAnalyticsEventType converts the raw string to AnalyticsEventType.
func ParseAnalyticsEventType(value string) (AnalyticsEventType, error) {
	for _, candidate := range validAnalyticsEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid analytics event type %q", value)
}
