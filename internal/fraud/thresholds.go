package fraud

import (
	"time"

	"github.com/zero-day-ai/fraudlens/internal/types"
)

// Thresholds carries every tunable constant of the detection engine.
// A production deployment tunes these per portfolio; the defaults match the
// reference heuristics. All validation happens at detector construction,
// never inside a query.
type Thresholds struct {
	// LargeAmount is the exclusive lower bound for the large-transaction
	// query.
	LargeAmount float64 `yaml:"large_amount" json:"large_amount" mapstructure:"large_amount"`

	// CriticalAmount is the exclusive bound above which a large transaction
	// is CRITICAL rather than HIGH.
	CriticalAmount float64 `yaml:"critical_amount" json:"critical_amount" mapstructure:"critical_amount"`

	// LaunderingAmount is the exclusive lower bound for the laundering
	// sentinel query.
	LaunderingAmount float64 `yaml:"laundering_amount" json:"laundering_amount" mapstructure:"laundering_amount"`

	// RapidWindow is the trailing interval a transaction must fall into to
	// count as recent.
	RapidWindow time.Duration `yaml:"rapid_window" json:"rapid_window" mapstructure:"rapid_window"`

	// MinRapidTransfers is the minimum recent-transfer count for an account
	// pair to be suspicious.
	MinRapidTransfers int `yaml:"min_rapid_transfers" json:"min_rapid_transfers" mapstructure:"min_rapid_transfers"`

	// RapidTotalAmount is the exclusive bound above which a rapid-transfer
	// pair is HIGH rather than MEDIUM.
	RapidTotalAmount float64 `yaml:"rapid_total_amount" json:"rapid_total_amount" mapstructure:"rapid_total_amount"`

	// MinSharedUsers is the minimum distinct-user count for a device to be
	// suspicious.
	MinSharedUsers int `yaml:"min_shared_users" json:"min_shared_users" mapstructure:"min_shared_users"`

	// HighAvgRisk is the exclusive bound above which a shared device's
	// average user risk is HIGH rather than MEDIUM.
	HighAvgRisk float64 `yaml:"high_avg_risk" json:"high_avg_risk" mapstructure:"high_avg_risk"`

	// TakeoverReportScore is the inclusive composite score at which a user
	// appears in takeover output.
	TakeoverReportScore int `yaml:"takeover_report_score" json:"takeover_report_score" mapstructure:"takeover_report_score"`

	// TakeoverCriticalScore is the inclusive composite score at which a
	// takeover finding is CRITICAL rather than HIGH.
	TakeoverCriticalScore int `yaml:"takeover_critical_score" json:"takeover_critical_score" mapstructure:"takeover_critical_score"`

	// OffshoreBank is the sentinel bank name the laundering query matches.
	OffshoreBank string `yaml:"offshore_bank" json:"offshore_bank" mapstructure:"offshore_bank"`

	// HighRiskUserScore is the exclusive user risk bound the summary counts
	// as high-risk.
	HighRiskUserScore float64 `yaml:"high_risk_user_score" json:"high_risk_user_score" mapstructure:"high_risk_user_score"`

	// NetworkHighScore and NetworkCriticalScore classify user-network
	// connection scores.
	NetworkHighScore     int `yaml:"network_high_score" json:"network_high_score" mapstructure:"network_high_score"`
	NetworkCriticalScore int `yaml:"network_critical_score" json:"network_critical_score" mapstructure:"network_critical_score"`
}

// DefaultThresholds returns the reference configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LargeAmount:           10_000,
		CriticalAmount:        50_000,
		LaunderingAmount:      50_000,
		RapidWindow:           30 * time.Minute,
		MinRapidTransfers:     3,
		RapidTotalAmount:      100_000,
		MinSharedUsers:        2,
		HighAvgRisk:           0.5,
		TakeoverReportScore:   5,
		TakeoverCriticalScore: 8,
		OffshoreBank:          "Offshore Bank",
		HighRiskUserScore:     0.7,
		NetworkHighScore:      2,
		NetworkCriticalScore:  3,
	}
}

// Validate checks the configuration is usable. Malformed thresholds are
// rejected here so queries never have to.
func (t Thresholds) Validate() error {
	if t.LargeAmount < 0 {
		return types.NewError(types.DETECT_INVALID_THRESHOLDS, "LargeAmount cannot be negative")
	}
	if t.CriticalAmount < t.LargeAmount {
		return types.NewError(types.DETECT_INVALID_THRESHOLDS, "CriticalAmount cannot be below LargeAmount")
	}
	if t.LaunderingAmount < 0 {
		return types.NewError(types.DETECT_INVALID_THRESHOLDS, "LaunderingAmount cannot be negative")
	}
	if t.RapidWindow <= 0 {
		return types.NewError(types.DETECT_INVALID_THRESHOLDS, "RapidWindow must be positive")
	}
	if t.MinRapidTransfers < 1 {
		return types.NewError(types.DETECT_INVALID_THRESHOLDS, "MinRapidTransfers must be at least 1")
	}
	if t.RapidTotalAmount < 0 {
		return types.NewError(types.DETECT_INVALID_THRESHOLDS, "RapidTotalAmount cannot be negative")
	}
	if t.MinSharedUsers < 2 {
		return types.NewError(types.DETECT_INVALID_THRESHOLDS, "MinSharedUsers must be at least 2")
	}
	if t.HighAvgRisk < 0 || t.HighAvgRisk > 1 {
		return types.NewError(types.DETECT_INVALID_THRESHOLDS, "HighAvgRisk must be within [0, 1]")
	}
	if t.TakeoverReportScore < 1 {
		return types.NewError(types.DETECT_INVALID_THRESHOLDS, "TakeoverReportScore must be at least 1")
	}
	if t.TakeoverCriticalScore < t.TakeoverReportScore {
		return types.NewError(types.DETECT_INVALID_THRESHOLDS, "TakeoverCriticalScore cannot be below TakeoverReportScore")
	}
	if t.OffshoreBank == "" {
		return types.NewError(types.DETECT_INVALID_THRESHOLDS, "OffshoreBank sentinel cannot be empty")
	}
	if t.HighRiskUserScore < 0 || t.HighRiskUserScore > 1 {
		return types.NewError(types.DETECT_INVALID_THRESHOLDS, "HighRiskUserScore must be within [0, 1]")
	}
	if t.NetworkHighScore < 1 || t.NetworkCriticalScore < t.NetworkHighScore {
		return types.NewError(types.DETECT_INVALID_THRESHOLDS, "network scores must satisfy 1 <= NetworkHighScore <= NetworkCriticalScore")
	}
	return nil
}
