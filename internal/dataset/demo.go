package dataset

import (
	"time"

	"github.com/zero-day-ai/fraudlens/internal/graph"
)

// demoYAML is the built-in demonstration dataset: a handful of ordinary
// users plus a small fraud ring sharing devices with unresolved locations
// and cycling large transfers through offshore accounts. Ages keep the
// rapid transfers inside the default 30-minute window at every run.
const demoYAML = `
users:
  - {id: U001, name: Alice Johnson, email: alice@email.com, phone: "+1-555-0101", risk_score: 0.1}
  - {id: U002, name: Bob Smith, email: bob@email.com, phone: "+1-555-0102", risk_score: 0.2}
  - {id: U003, name: Carol Davis, email: carol@email.com, phone: "+1-555-0103", risk_score: 0.1}
  - {id: U101, name: Frank Fraud, email: frank@fake.com, phone: "+1-555-9999", risk_score: 0.9}
  - {id: U102, name: Grace Scammer, email: grace@scam.net, phone: "+1-555-9998", risk_score: 0.8}
  - {id: U103, name: Henry Thief, email: henry@stolen.org, phone: "+1-555-9997", risk_score: 0.7}

devices:
  - {id: D001, type: laptop, ip: 192.168.1.100, location: New York}
  - {id: D002, type: mobile, ip: 192.168.1.101, location: San Francisco}
  - {id: D003, type: tablet, ip: 192.168.1.102, location: Boston}
  - {id: D004, type: laptop, ip: 10.0.0.50, location: Unknown}
  - {id: D005, type: mobile, ip: 10.0.0.51, location: Unknown}
  - {id: D006, type: laptop, ip: 10.0.0.52, location: Unknown}

accounts:
  - {id: A001, bank: Chase, account_type: checking, balance: 5000}
  - {id: A002, bank: Wells Fargo, account_type: savings, balance: 15000}
  - {id: A003, bank: Bank of America, account_type: checking, balance: 3000}
  - {id: A101, bank: Offshore Bank, account_type: checking, balance: 100000}
  - {id: A102, bank: Offshore Bank, account_type: savings, balance: 500000}

transactions:
  - {id: T001, from_account: A001, to_account: A002, amount: 100, status: completed, age: 2h}
  - {id: T002, from_account: A002, to_account: A003, amount: 250, status: completed, age: 1h}
  - {id: T003, from_account: A003, to_account: A001, amount: 75, status: completed, age: 45m}
  - {id: T101, from_account: A101, to_account: A102, amount: 50000, status: pending, age: 10m}
  - {id: T102, from_account: A102, to_account: A101, amount: 25000, status: pending, age: 8m}
  - {id: T103, from_account: A101, to_account: A102, amount: 100000, status: pending, age: 5m}
  - {id: T104, from_account: A101, to_account: A102, amount: 75000, status: pending, age: 3m}
  - {id: T105, from_account: A101, to_account: A102, amount: 30000, status: pending, age: 1m}

relationships:
  - {from: U001, to: D001, type: USES}
  - {from: U002, to: D002, type: USES}
  - {from: U003, to: D003, type: USES}
  - {from: U101, to: D004, type: USES}
  - {from: U102, to: D004, type: USES}
  - {from: U103, to: D005, type: USES}
  - {from: U101, to: D005, type: USES}
  - {from: U101, to: D006, type: USES}
  - {from: U102, to: D006, type: USES}
  - {from: U001, to: A001, type: OWNS}
  - {from: U002, to: A002, type: OWNS}
  - {from: U003, to: A003, type: OWNS}
  - {from: U101, to: A101, type: OWNS}
  - {from: U102, to: A102, type: OWNS}
  - {from: U101, to: U102, type: SHARES_PHONE, properties: {phone: "+1-555-9999"}}
  - {from: U102, to: U103, type: SIMILAR_EMAIL, properties: {pattern: scam.net}}
`

// Demo builds the built-in demonstration store, frozen and ready for
// detection.
func Demo() (*graph.Store, error) {
	return Load([]byte(demoYAML), time.Now())
}
