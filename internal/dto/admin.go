package dto

import (
	"encoding/json"
	"time"

	"github.com/printline/printline-manager/internal/entity"
)

// View types returned by the admin and public APIs. They flatten the
// sql.Null* storage types into plain JSON values.

type MemberView struct {
	ID        int       `json:"id"`
	UserName  string    `json:"userName"`
	Nickname  string    `json:"nickname,omitempty"`
	Email     string    `json:"email,omitempty"`
	RoleCode  string    `json:"roleCode"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ConvertMember(m *entity.Member) MemberView {
	return MemberView{
		ID:        m.ID,
		UserName:  m.UserName,
		Nickname:  m.Nickname.String,
		Email:     m.Email.String,
		RoleCode:  m.RoleCode,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ConvertMembers(ms []entity.Member) []MemberView {
	out := make([]MemberView, 0, len(ms))
	for i := range ms {
		out = append(out, ConvertMember(&ms[i]))
	}
	return out
}

type MasterItemView struct {
	ID        int             `json:"id"`
	Category  string          `json:"category"`
	Code      string          `json:"code"`
	Label     string          `json:"label"`
	SortOrder int             `json:"sortOrder"`
	Active    bool            `json:"active"`
	Extra     json.RawMessage `json:"extra,omitempty"`
}

func ConvertMasterItem(item *entity.MasterItem) MasterItemView {
	v := MasterItemView{
		ID:        item.ID,
		Category:  string(item.Category),
		Code:      item.Code,
		Label:     item.Label,
		SortOrder: item.SortOrder,
		Active:    item.Active,
	}
	if item.Extra.Valid && json.Valid([]byte(item.Extra.String)) {
		v.Extra = json.RawMessage(item.Extra.String)
	}
	return v
}

func ConvertMasterItems(items []entity.MasterItem) []MasterItemView {
	out := make([]MasterItemView, 0, len(items))
	for i := range items {
		out = append(out, ConvertMasterItem(&items[i]))
	}
	return out
}

type ClaimView struct {
	ID           int    `json:"id"`
	OrderID      int    `json:"orderId"`
	Description  string `json:"description,omitempty"`
	ReporterName string `json:"reporterName,omitempty"`
	ReportedBy   string `json:"reportedBy,omitempty"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	ClaimType    string `json:"claimType"`

	Admin          bool `json:"admin"`
	Designer       bool `json:"designer"`
	ProductionTeam bool `json:"productionTeam"`
	Shipper        bool `json:"shipper"`
	PreProduction  bool `json:"preProduction"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ConvertClaim(c *entity.Claim) ClaimView {
	return ClaimView{
		ID:             c.ID,
		OrderID:        c.OrderID,
		Description:    c.Description.String,
		ReporterName:   c.ReporterName.String,
		ReportedBy:     c.ReportedBy.String,
		Status:         string(c.Status),
		Priority:       string(c.Priority),
		ClaimType:      string(c.ClaimType),
		Admin:          c.Admin,
		Designer:       c.Designer,
		ProductionTeam: c.ProductionTeam,
		Shipper:        c.Shipper,
		PreProduction:  c.PreProduction,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func ConvertClaims(cs []entity.Claim) []ClaimView {
	out := make([]ClaimView, 0, len(cs))
	for i := range cs {
		out = append(out, ConvertClaim(&cs[i]))
	}
	return out
}
