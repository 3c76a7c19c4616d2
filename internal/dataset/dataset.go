// Package dataset ingests graph datasets from YAML into a store. A dataset
// describes users, devices, accounts, transactions, and relationships; the
// loader builds a frozen store ready for detection.
package dataset

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/fraudlens/internal/graph"
	"github.com/zero-day-ai/fraudlens/internal/types"
)

// TransactionRecord is the YAML shape of one transaction. The timestamp may
// be absolute (timestamp, RFC3339) or relative (age, a duration before load
// time); age wins when both are set so fixtures stay inside detection
// windows regardless of when they run.
type TransactionRecord struct {
	ID          string  `yaml:"id"`
	FromAccount string  `yaml:"from_account"`
	ToAccount   string  `yaml:"to_account"`
	Amount      float64 `yaml:"amount"`
	Status      string  `yaml:"status"`
	Timestamp   string  `yaml:"timestamp,omitempty"`
	Age         string  `yaml:"age,omitempty"`
}

// RelationshipRecord is the YAML shape of one relationship.
type RelationshipRecord struct {
	From       string         `yaml:"from"`
	To         string         `yaml:"to"`
	Type       string         `yaml:"type"`
	Properties map[string]any `yaml:"properties,omitempty"`
}

// Dataset is the YAML document shape.
type Dataset struct {
	Users         []graph.User         `yaml:"users"`
	Devices       []graph.Device       `yaml:"devices"`
	Accounts      []graph.Account      `yaml:"accounts"`
	Transactions  []TransactionRecord  `yaml:"transactions"`
	Relationships []RelationshipRecord `yaml:"relationships"`
}

// LoadFile reads a YAML dataset from disk and builds a frozen store.
func LoadFile(path string) (*graph.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.WrapError(types.DATASET_READ_FAILED, "failed to read dataset file", err)
	}
	return Load(data, time.Now())
}

// Load parses YAML and builds a frozen store. Relative transaction ages are
// resolved against now.
func Load(data []byte, now time.Time) (*graph.Store, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, types.WrapError(types.DATASET_PARSE_FAILED, "failed to parse dataset YAML", err)
	}
	return ds.Build(now)
}

// Build populates and freezes a store from the dataset.
func (ds *Dataset) Build(now time.Time) (*graph.Store, error) {
	store := graph.NewStore()

	for _, u := range ds.Users {
		if err := store.AddUser(u); err != nil {
			return nil, err
		}
	}
	for _, d := range ds.Devices {
		if err := store.AddDevice(d); err != nil {
			return nil, err
		}
	}
	for _, a := range ds.Accounts {
		if err := store.AddAccount(a); err != nil {
			return nil, err
		}
	}
	for _, tr := range ds.Transactions {
		ts, err := tr.resolveTimestamp(now)
		if err != nil {
			return nil, err
		}
		tx := graph.Transaction{
			ID:          tr.ID,
			FromAccount: tr.FromAccount,
			ToAccount:   tr.ToAccount,
			Amount:      tr.Amount,
			Status:      graph.TransactionStatus(tr.Status),
			Timestamp:   ts,
		}
		if err := store.AddTransaction(tx); err != nil {
			return nil, err
		}
	}
	for _, r := range ds.Relationships {
		if err := store.AddRelationship(r.From, r.To, graph.RelationType(r.Type), r.Properties); err != nil {
			return nil, err
		}
	}

	store.Freeze()
	return store, nil
}

func (tr TransactionRecord) resolveTimestamp(now time.Time) (time.Time, error) {
	if tr.Age != "" {
		age, err := time.ParseDuration(tr.Age)
		if err != nil {
			return time.Time{}, types.WrapError(types.DATASET_INVALID,
				fmt.Sprintf("transaction %s has invalid age %q", tr.ID, tr.Age), err)
		}
		return now.Add(-age), nil
	}
	if tr.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339, tr.Timestamp)
		if err != nil {
			return time.Time{}, types.WrapError(types.DATASET_INVALID,
				fmt.Sprintf("transaction %s has invalid timestamp %q", tr.ID, tr.Timestamp), err)
		}
		return ts, nil
	}
	return time.Time{}, types.NewErrorf(types.DATASET_INVALID,
		"transaction %s has neither timestamp nor age", tr.ID)
}
