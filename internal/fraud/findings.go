package fraud

import (
	"time"

	"github.com/zero-day-ai/fraudlens/internal/types"
)

// OwnerUnknown labels a transaction whose source account resolves to no
// loaded user.
const OwnerUnknown = "Unknown"

// RiskLevel is the ordinal classification attached to every finding:
// MEDIUM < HIGH < CRITICAL.
type RiskLevel string

const (
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// String returns the string representation of RiskLevel.
func (r RiskLevel) String() string {
	return string(r)
}

// Rank returns the ordinal position of the level, for comparisons and
// sorting. Unknown levels rank below MEDIUM.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	default:
		return 0
	}
}

// DeviceSharingFinding reports a device used by multiple distinct users.
type DeviceSharingFinding struct {
	ID           types.ID  `json:"id"`
	DeviceID     string    `json:"device_id"`
	DeviceIP     string    `json:"device_ip"`
	UserIDs      []string  `json:"user_ids"`
	UserNames    []string  `json:"user_names"`
	AvgRiskScore float64   `json:"avg_risk_score"`
	RiskLevel    RiskLevel `json:"risk_level"`
}

// RapidTransferFinding reports an account pair with repeated recent
// transfers inside the detection window.
type RapidTransferFinding struct {
	ID            types.ID  `json:"id"`
	FromAccount   string    `json:"from_account"`
	ToAccount     string    `json:"to_account"`
	FromBank      string    `json:"from_bank"`
	ToBank        string    `json:"to_bank"`
	TransferCount int       `json:"transfer_count"`
	TotalAmount   float64   `json:"total_amount"`
	RiskLevel     RiskLevel `json:"risk_level"`
}

// LargeTransactionFinding reports a single transaction above the large
// amount threshold, attributed to the owning user of the source account
// when one resolves.
type LargeTransactionFinding struct {
	ID            types.ID  `json:"id"`
	TransactionID string    `json:"transaction_id"`
	UserName      string    `json:"user_name"`
	Amount        float64   `json:"amount"`
	FromBank      string    `json:"from_bank"`
	ToBank        string    `json:"to_bank"`
	Timestamp     time.Time `json:"timestamp"`
	RiskLevel     RiskLevel `json:"risk_level"`
}

// LaunderingFinding reports a large transaction touching the offshore
// sentinel bank on either endpoint. This is a single-hop indicator, not a
// multi-hop chain query.
type LaunderingFinding struct {
	ID            types.ID  `json:"id"`
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	FromBank      string    `json:"from_bank"`
	ToBank        string    `json:"to_bank"`
	RiskLevel     RiskLevel `json:"risk_level"`
}

// TakeoverFinding reports a user whose composite footprint (devices +
// accounts + unknown-location devices) crosses the takeover threshold.
type TakeoverFinding struct {
	ID                     types.ID  `json:"id"`
	UserID                 string    `json:"user_id"`
	UserName               string    `json:"user_name"`
	UserRisk               float64   `json:"user_risk"`
	DeviceCount            int       `json:"device_count"`
	AccountCount           int       `json:"account_count"`
	UnknownLocationDevices int       `json:"unknown_location_devices"`
	RiskScore              int       `json:"risk_score"`
	RiskLevel              RiskLevel `json:"risk_level"`
}

// NetworkConnectionFinding reports a pair of users linked by shared devices
// and optionally shared phone or similar email attributes.
type NetworkConnectionFinding struct {
	ID              types.ID  `json:"id"`
	UserID1         string    `json:"user_id_1"`
	UserID2         string    `json:"user_id_2"`
	UserName1       string    `json:"user_name_1"`
	UserName2       string    `json:"user_name_2"`
	SharedDevices   int       `json:"shared_devices"`
	SharesPhone     int       `json:"shares_phone"`
	SimilarEmail    int       `json:"similar_email"`
	ConnectionScore int       `json:"connection_score"`
	RiskLevel       RiskLevel `json:"risk_level"`
}

// RiskSummary aggregates portfolio-level fraud exposure counts.
type RiskSummary struct {
	HighRiskUsers          int     `json:"high_risk_users"`
	SuspiciousTransactions int     `json:"suspicious_transactions"`
	DeviceSharingIncidents int     `json:"device_sharing_incidents"`
	OffshoreAccounts       int     `json:"offshore_accounts"`
	TotalRiskScore         float64 `json:"total_risk_score"`
}
