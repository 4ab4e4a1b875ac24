package models

// Floor labels used to pick a tenant's consumption column.
const (
	FloorGround = "Ground"
	FloorFirst  = "First"
	FloorSecond = "Second"
	FloorA206   = "A-206"
)

// MeterReading is the utility snapshot for one month, unique per Month.
// Consumption fields are pointers: a nil field means the units for that
// floor were not recorded, which is distinct from consuming zero.
type MeterReading struct {
	Month               string   `json:"month"`
	MainMeter           float64  `json:"mainMeter"`
	GroundFloorConsumed *float64 `json:"groundFloorConsumed,omitempty"`
	FirstFloorConsumed  *float64 `json:"firstFloorConsumed,omitempty"`
	SecondFloorConsumed *float64 `json:"secondFloorConsumed,omitempty"`
	WaterConsumed       float64  `json:"waterConsumed"`
	A206MainMeter       float64  `json:"a206MainMeter"`
	A206Consumed        *float64 `json:"a206Consumed,omitempty"`
}

// ConsumptionFor returns the units consumed on the given floor, and
// whether that floor has a recorded value at all.
func (m *MeterReading) ConsumptionFor(floor string) (float64, bool) {
	var v *float64
	switch floor {
	case FloorGround:
		v = m.GroundFloorConsumed
	case FloorFirst:
		v = m.FirstFloorConsumed
	case FloorSecond:
		v = m.SecondFloorConsumed
	case FloorA206:
		v = m.A206Consumed
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// MeterReadingUpdate carries a partial update; nil fields are left untouched.
type MeterReadingUpdate struct {
	MainMeter           *float64 `json:"mainMeter,omitempty"`
	GroundFloorConsumed *float64 `json:"groundFloorConsumed,omitempty"`
	FirstFloorConsumed  *float64 `json:"firstFloorConsumed,omitempty"`
	SecondFloorConsumed *float64 `json:"secondFloorConsumed,omitempty"`
	WaterConsumed       *float64 `json:"waterConsumed,omitempty"`
	A206MainMeter       *float64 `json:"a206MainMeter,omitempty"`
	A206Consumed        *float64 `json:"a206Consumed,omitempty"`
}

func (u *MeterReadingUpdate) Apply(m *MeterReading) {
	if u.MainMeter != nil {
		m.MainMeter = *u.MainMeter
	}
	if u.GroundFloorConsumed != nil {
		v := *u.GroundFloorConsumed
		m.GroundFloorConsumed = &v
	}
	if u.FirstFloorConsumed != nil {
		v := *u.FirstFloorConsumed
		m.FirstFloorConsumed = &v
	}
	if u.SecondFloorConsumed != nil {
		v := *u.SecondFloorConsumed
		m.SecondFloorConsumed = &v
	}
	if u.WaterConsumed != nil {
		m.WaterConsumed = *u.WaterConsumed
	}
	if u.A206MainMeter != nil {
		m.A206MainMeter = *u.A206MainMeter
	}
	if u.A206Consumed != nil {
		v := *u.A206Consumed
		m.A206Consumed = &v
	}
}

type UpdateMeterReadingsRequest struct {
	Month    string             `json:"month"`
	Readings MeterReadingUpdate `json:"readings"`
}
