package models

// Payment status values for a rent record.
const (
	StatusPaid    = "Paid"
	StatusNotPaid = "Not Paid"
)

// RentRecord is one tenant-month billing row. Identity is the
// (Month, Tenant) pair; records are updated in place, never deleted.
type RentRecord struct {
	Month         string  `json:"month"`
	Tenant        string  `json:"tenant"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Floor         string  `json:"floor"`
	BaseRent      float64 `json:"baseRent"`
	Maintenance   float64 `json:"maintenance"`
	EnergyCharges float64 `json:"energyCharges"`
	TotalRent     float64 `json:"totalRent"`
	Status        string  `json:"status"`
	Comments      string  `json:"comments"`
}

// RentRecordUpdate carries a partial update; nil fields are left untouched.
type RentRecordUpdate struct {
	BaseRent      *float64 `json:"baseRent,omitempty"`
	Maintenance   *float64 `json:"maintenance,omitempty"`
	EnergyCharges *float64 `json:"energyCharges,omitempty"`
	TotalRent     *float64 `json:"totalRent,omitempty"`
	Status        *string  `json:"status,omitempty"`
	Comments      *string  `json:"comments,omitempty"`
}

// Apply merges the set fields into the record.
func (u *RentRecordUpdate) Apply(r *RentRecord) {
	if u.BaseRent != nil {
		r.BaseRent = *u.BaseRent
	}
	if u.Maintenance != nil {
		r.Maintenance = *u.Maintenance
	}
	if u.EnergyCharges != nil {
		r.EnergyCharges = *u.EnergyCharges
	}
	if u.TotalRent != nil {
		r.TotalRent = *u.TotalRent
	}
	if u.Status != nil {
		r.Status = *u.Status
	}
	if u.Comments != nil {
		r.Comments = *u.Comments
	}
}

type MarkPaidRequest struct {
	Tenant string `json:"tenant"`
	Month  string `json:"month"`
}

type AdjustRentRequest struct {
	Tenant string  `json:"tenant"`
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

type UpsertRentRecordRequest struct {
	Tenant  string           `json:"tenant"`
	Month   string           `json:"month"`
	Updates RentRecordUpdate `json:"updates"`
}
