package models

// TenantConfig holds the per-tenant defaults that seed a month's
// expected amount when no rent record exists yet.
type TenantConfig struct {
	Tenant         string  `json:"tenant"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	Floor          string  `json:"floor"`
	BaseRent       float64 `json:"baseRent"`
	Maintenance    float64 `json:"maintenance"`
	RentStartMonth string  `json:"rentStartMonth"`
	Misc           float64 `json:"misc"`
	Notes          string  `json:"notes"`
}

// TenantConfigUpdate carries a partial update; nil fields are left untouched.
type TenantConfigUpdate struct {
	Name           *string  `json:"name,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	Address        *string  `json:"address,omitempty"`
	Floor          *string  `json:"floor,omitempty"`
	BaseRent       *float64 `json:"baseRent,omitempty"`
	Maintenance    *float64 `json:"maintenance,omitempty"`
	RentStartMonth *string  `json:"rentStartMonth,omitempty"`
	Misc           *float64 `json:"misc,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

func (u *TenantConfigUpdate) Apply(c *TenantConfig) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Address != nil {
		c.Address = *u.Address
	}
	if u.Floor != nil {
		c.Floor = *u.Floor
	}
	if u.BaseRent != nil {
		c.BaseRent = *u.BaseRent
	}
	if u.Maintenance != nil {
		c.Maintenance = *u.Maintenance
	}
	if u.RentStartMonth != nil {
		c.RentStartMonth = *u.RentStartMonth
	}
	if u.Misc != nil {
		c.Misc = *u.Misc
	}
	if u.Notes != nil {
		c.Notes = *u.Notes
	}
}

type UpdateTenantConfigRequest struct {
	Tenant  string             `json:"tenant"`
	Updates TenantConfigUpdate `json:"updates"`
}
