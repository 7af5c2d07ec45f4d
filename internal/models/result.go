package models

import "fmt"

// Path identifies one of the competing payment paths.
type Path string

const (
	PathPortal Path = "portal"
	PathDirect Path = "direct"
	PathAward  Path = "award"
	PathTie    Path = "tie"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// FieldError is a validation failure scoped to a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PathCosts is the per-path financial breakdown.
type PathCosts struct {
	OutOfPocket   float64 `json:"out_of_pocket"`
	PointsEarned  float64 `json:"points_earned"`
	EffectiveCost float64 `json:"effective_cost"`
}

// TieDetail carries the payload of a tie recommendation: the two paths that
// were too close to call and the measured gap between them.
type TieDetail struct {
	Between    [2]Path `json:"between"`
	GapUSD     float64 `json:"gap_usd"`
	GapPercent float64 `json:"gap_percent"`
}

// AwardDecision carries the payload of an award recommendation.
type AwardDecision struct {
	OwnPoints float64 `json:"own_points"`
	Taxes     float64 `json:"taxes"`
	CPP       float64 `json:"cpp"`
}

// Recommendation is the winning path plus the payload that variant guarantees:
// an award win always carries its points-and-taxes terms, a tie always carries
// the pair it could not separate.
type Recommendation struct {
	Path  Path           `json:"path"`
	Award *AwardDecision `json:"award,omitempty"`
	Tie   *TieDetail     `json:"tie,omitempty"`
}

// DoubleDipPlan is the pay-portal-now, erase-with-points-later strategy for
// flights. It annotates a portal recommendation and never replaces it.
type DoubleDipPlan struct {
	PayToday        float64 `json:"pay_today"`
	PointsEarned    float64 `json:"points_earned"`
	PointsValue     float64 `json:"points_value"`
	EraseLater      float64 `json:"erase_later"`
	SavingsVsDirect float64 `json:"savings_vs_direct"`
}

// BuyMilesComparison flags when buying partner miles outright beats
// transferring home points.
type BuyMilesComparison struct {
	PartnerID             string  `json:"partner_id"`
	PartnerName           string  `json:"partner_name"`
	PartnerPoints         float64 `json:"partner_points"`
	OwnPoints             float64 `json:"own_points"`
	BaseBuyCostUSD        float64 `json:"base_buy_cost_usd"`
	BestBonusBuyCostUSD   float64 `json:"best_bonus_buy_cost_usd"`
	TransferValueUSD      float64 `json:"transfer_value_usd"`
	BuyIsCheaperWithBonus bool    `json:"buy_is_cheaper_with_bonus"`
	TransferSavingsUSD    float64 `json:"transfer_savings_usd"`
}

// PortalCheaperAdvice flags a weak redemption where paying cash through the
// portal beats burning points.
type PortalCheaperAdvice struct {
	IsPortalCheaper    bool    `json:"is_portal_cheaper"`
	AwardCPP           float64 `json:"award_cpp"`
	PortalNetCostUSD   float64 `json:"portal_net_cost_usd"`
	AwardTotalValueUSD float64 `json:"award_total_value_usd"`
	SavingsIfPortal    float64 `json:"savings_if_portal"`
}

// ComparisonResult is the engine's full output for one comparison request.
// It is rebuilt from scratch on every input change and never mutated.
type ComparisonResult struct {
	Recommendation    Recommendation       `json:"recommendation"`
	Portal            PathCosts            `json:"portal"`
	Direct            PathCosts            `json:"direct"`
	CreditApplied     float64              `json:"credit_applied"`
	FXConverted       bool                 `json:"fx_converted"`
	Award             *AwardEvaluation     `json:"award,omitempty"`
	AwardErrors       []FieldError         `json:"award_errors,omitempty"`
	DoubleDip         *DoubleDipPlan       `json:"double_dip,omitempty"`
	BuyMiles          []BuyMilesComparison `json:"buy_miles,omitempty"`
	PortalCheaper     *PortalCheaperAdvice `json:"portal_cheaper,omitempty"`
	Confidence        Confidence           `json:"confidence"`
	ConfidenceReasons []string             `json:"confidence_reasons"`
	FlipConditions    []string             `json:"flip_conditions"`
}
