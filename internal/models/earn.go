package models

// EarnProfile is the points-earn multiplier pair for one booking type.
type EarnProfile struct {
	PortalMultiplier float64 `json:"portal_multiplier"`
	DirectMultiplier float64 `json:"direct_multiplier"`
}
