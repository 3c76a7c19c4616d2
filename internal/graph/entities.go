package graph

import "time"

// LocationUnknown is the sentinel marking a device whose location could not
// be resolved. Unresolved locations are treated as a fraud signal by the
// account-takeover query.
const LocationUnknown = "Unknown"

// TransactionStatus represents the processing state of a transaction.
// The set is open: ingested data may carry statuses beyond the named ones.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// String returns the string representation of TransactionStatus.
func (s TransactionStatus) String() string {
	return string(s)
}

// User is a person holding accounts and using devices.
// RiskScore is a prior in [0.0, 1.0] assigned at ingestion.
type User struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Email     string  `json:"email" yaml:"email"`
	Phone     string  `json:"phone" yaml:"phone"`
	RiskScore float64 `json:"risk_score" yaml:"risk_score"`
}

// Device is an endpoint a user signs in from. Location carries
// LocationUnknown when geolocation failed.
type Device struct {
	ID       string `json:"id" yaml:"id"`
	Type     string `json:"type" yaml:"type"`
	IP       string `json:"ip" yaml:"ip"`
	Location string `json:"location" yaml:"location"`
}

// Account is a bank account that sends and receives transactions.
type Account struct {
	ID          string  `json:"id" yaml:"id"`
	Bank        string  `json:"bank" yaml:"bank"`
	AccountType string  `json:"account_type" yaml:"account_type"`
	Balance     float64 `json:"balance" yaml:"balance"`
}

// Transaction is a transfer between two accounts. FromAccount and ToAccount
// are raw account identifiers and may reference accounts that were never
// loaded; queries resolve them best-effort.
type Transaction struct {
	ID          string            `json:"id" yaml:"id"`
	FromAccount string            `json:"from_account" yaml:"from_account"`
	ToAccount   string            `json:"to_account" yaml:"to_account"`
	Amount      float64           `json:"amount" yaml:"amount"`
	Status      TransactionStatus `json:"status" yaml:"status"`
	Timestamp   time.Time         `json:"timestamp" yaml:"timestamp"`
}

// RelationType represents the type of a directed relationship between two
// entity identifiers. The named constants cover the tags the detection
// engine matches on; the store accepts any tag so unknown types flow through
// untouched for forward compatibility.
type RelationType string

const (
	RelationUses         RelationType = "USES"
	RelationOwns         RelationType = "OWNS"
	RelationSends        RelationType = "SENDS"
	RelationReceives     RelationType = "RECEIVES"
	RelationSharesPhone  RelationType = "SHARES_PHONE"
	RelationSimilarEmail RelationType = "SIMILAR_EMAIL"
)

// String returns the string representation of RelationType.
func (rt RelationType) String() string {
	return string(rt)
}

// IsKnown reports whether the tag is one the detection engine understands.
// Unknown tags are stored and iterated but matched by no query.
func (rt RelationType) IsKnown() bool {
	switch rt {
	case RelationUses, RelationOwns, RelationSends,
		RelationReceives, RelationSharesPhone, RelationSimilarEmail:
		return true
	default:
		return false
	}
}

// Relationship is a directed, typed edge between two entity identifiers
// with an optional property bag. Direction is significant: (A,B) USES is
// distinct from (B,A) USES, and no relationship is implicitly symmetric.
type Relationship struct {
	FromID     string         `json:"from_id"`
	ToID       string         `json:"to_id"`
	Type       RelationType   `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}
