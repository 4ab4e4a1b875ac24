package services

import (
	"github.com/avibhor77/rent-sub001/internal/models"
	"github.com/avibhor77/rent-sub001/internal/store"
	"github.com/avibhor77/rent-sub001/internal/timeutil"
)

func f64(v float64) *float64 { return &v }

// newTestStore builds a small dataset: three tenants, meter data and full
// records for August 25, an older July record for the ground tenant, and
// no August record at all for A-206.
func newTestStore() *store.MemoryStore {
	return store.NewMemoryStoreFromDataset(&store.Dataset{
		TenantConfigs: []*models.TenantConfig{
			{Tenant: "A-88 G", Name: "Rakesh Sharma", Phone: "9810012345", Floor: models.FloorGround, BaseRent: 26000, Maintenance: 500, Misc: 0},
			{Tenant: "A-88 F", Name: "Vikram Mehta", Phone: "9811122233", Floor: models.FloorFirst, BaseRent: 17000, Maintenance: 500, Misc: 200},
			{Tenant: "A-206", Name: "Mohan Lal", Phone: "9813344556", Floor: models.FloorA206, BaseRent: 12000, Maintenance: 300, Misc: 0},
		},
		MeterReadings: []*models.MeterReading{
			{
				Month:               "August 25",
				MainMeter:           45210,
				GroundFloorConsumed: f64(352),
				FirstFloorConsumed:  f64(218),
				// A-206 units not recorded this month
			},
			{
				Month:               "July 25",
				MainMeter:           44620,
				GroundFloorConsumed: f64(365),
				FirstFloorConsumed:  f64(224),
				A206Consumed:        f64(102),
			},
		},
		RentRecords: []*models.RentRecord{
			{Month: "July 25", Tenant: "A-88 G", Name: "Rakesh Sharma", Floor: models.FloorGround, BaseRent: 26000, Maintenance: 500, EnergyCharges: 3650, TotalRent: 30150, Status: models.StatusPaid},
			{Month: "August 25", Tenant: "A-88 G", Name: "Rakesh Sharma", Floor: models.FloorGround, BaseRent: 26000, Maintenance: 500, EnergyCharges: 3520, TotalRent: 30020, Status: models.StatusNotPaid},
			{Month: "August 25", Tenant: "A-88 F", Name: "Vikram Mehta", Floor: models.FloorFirst, BaseRent: 17000, Maintenance: 500, EnergyCharges: 2180, TotalRent: 19880, Status: models.StatusPaid},
		},
	})
}

func lexicographic() timeutil.Comparer {
	return timeutil.Comparer{Order: timeutil.OrderLexicographic}
}
