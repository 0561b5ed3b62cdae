package entity

import (
	"database/sql"
	"time"
)

// ClaimStatus is the lifecycle of a customer claim against an order.
type ClaimStatus string

const (
	ClaimOpen       ClaimStatus = "open"
	ClaimInProgress ClaimStatus = "in_progress"
	ClaimResolved   ClaimStatus = "resolved"
	ClaimClosed     ClaimStatus = "closed"
)

var ValidClaimStatuses = map[ClaimStatus]bool{
	ClaimOpen:       true,
	ClaimInProgress: true,
	ClaimResolved:   true,
	ClaimClosed:     true,
}

// ClaimPriority ranks how urgently a claim needs attention.
type ClaimPriority string

const (
	ClaimUrgent ClaimPriority = "urgent"
	ClaimHigh   ClaimPriority = "high"
	ClaimMedium ClaimPriority = "medium"
	ClaimLow    ClaimPriority = "low"
)

var ValidClaimPriorities = map[ClaimPriority]bool{
	ClaimUrgent: true,
	ClaimHigh:   true,
	ClaimMedium: true,
	ClaimLow:    true,
}

// ClaimType classifies what went wrong.
type ClaimType string

const (
	ClaimQuality  ClaimType = "quality"
	ClaimDelivery ClaimType = "delivery"
	ClaimDesign   ClaimType = "design"
	ClaimOtherTyp ClaimType = "other"
)

var ValidClaimTypes = map[ClaimType]bool{
	ClaimQuality:  true,
	ClaimDelivery: true,
	ClaimDesign:   true,
	ClaimOtherTyp: true,
}

// Claim represents the claim_order table.
type Claim struct {
	ID           int            `db:"id"`
	OrderID      int            `db:"order_id"`
	Description  sql.NullString `db:"description"`
	ReporterName sql.NullString `db:"reporter_name"`
	ReportedBy   sql.NullString `db:"reported_by"`
	Status       ClaimStatus    `db:"status"`
	Priority     ClaimPriority  `db:"priority"`
	ClaimType    ClaimType      `db:"claim_type"`

	// Teams flagged as responsible for the follow-up.
	Admin          bool `db:"admin"`
	Designer       bool `db:"designer"`
	ProductionTeam bool `db:"production_team"`
	Shipper        bool `db:"shipper"`
	PreProduction  bool `db:"pre_production"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ClaimInsert is the writable subset of Claim.
type ClaimInsert struct {
	OrderID        int
	Description    string
	ReporterName   string
	ReportedBy     string
	Status         ClaimStatus
	Priority       ClaimPriority
	ClaimType      ClaimType
	Admin          bool
	Designer       bool
	ProductionTeam bool
	Shipper        bool
	PreProduction  bool
}
