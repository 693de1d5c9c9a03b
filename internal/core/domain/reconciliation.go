package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconScope selects which checks a reconciliation run performs.
type ReconScope string

const (
	ScopeStock        ReconScope = "STOCK"
	ScopeParties      ReconScope = "PARTIES"
	ScopeTrialBalance ReconScope = "TRIAL_BALANCE"
	ScopeAll          ReconScope = "ALL"
)

// DiscrepancySeverity classifies how far a cached aggregate drifted from the
// value recomputed from source history.
type DiscrepancySeverity string

const (
	SeverityMinor    DiscrepancySeverity = "MINOR"    // < 1 unit
	SeverityModerate DiscrepancySeverity = "MODERATE" // 1-5 units
	SeverityMajor    DiscrepancySeverity = "MAJOR"    // > 5 units, stock stays alert-only
)

// HealthStatus is the terminal verdict of a reconciliation run.
type HealthStatus string

const (
	Healthy       HealthStatus = "HEALTHY"
	Corrected     HealthStatus = "CORRECTED"
	AlertsPending HealthStatus = "ALERTS_PENDING"
	Corrupted     HealthStatus = "CORRUPTED"
)

// DiscrepancyKind identifies which check produced a discrepancy.
type DiscrepancyKind string

const (
	StockDiscrepancy        DiscrepancyKind = "STOCK"
	PartyDiscrepancy        DiscrepancyKind = "PARTY_LEDGER"
	TrialBalanceDiscrepancy DiscrepancyKind = "TRIAL_BALANCE"
)

// Discrepancy is one detected mismatch between a cached aggregate and the
// value recomputed from the journal or movement stream.
type Discrepancy struct {
	Kind        DiscrepancyKind     `json:"kind"`
	EntityID    string              `json:"entityID"`
	EntityName  string              `json:"entityName"`
	Expected    decimal.Decimal     `json:"expected"` // recomputed from history
	Actual      decimal.Decimal     `json:"actual"`   // cached value
	Variance    decimal.Decimal     `json:"variance"`
	Severity    DiscrepancySeverity `json:"severity"`
	Explanation string              `json:"explanation"`
	Corrected   bool                `json:"corrected"`
}

// Correction records one applied auto-fix with before/after snapshots.
type Correction struct {
	Kind       DiscrepancyKind `json:"kind"`
	EntityID   string          `json:"entityID"`
	Before     decimal.Decimal `json:"before"`
	After      decimal.Decimal `json:"after"`
	MovementID string          `json:"movementID,omitempty"` // AUDIT_CORRECTION movement, stock only
	AppliedAt  time.Time       `json:"appliedAt"`
}

// ReconciliationReport is the structured outcome of a reconciliation run.
// Discrepancies are returned as data, never thrown; only a trial-balance
// variance is a blocking alert.
type ReconciliationReport struct {
	BusinessID     string          `json:"businessID"`
	Scope          ReconScope      `json:"scope"`
	RanAt          time.Time       `json:"ranAt"`
	ItemsChecked   int             `json:"itemsChecked"`
	PartiesChecked int             `json:"partiesChecked"`
	Discrepancies  []Discrepancy   `json:"discrepancies"`
	Corrections    []Correction    `json:"corrections"`
	TrialVariance  decimal.Decimal `json:"trialVariance"`
	Status         HealthStatus    `json:"status"`
}
