package parking

import "github.com/shopspring/decimal"

// Hourly base rate; the final amount is billed whole hours times the base
// rate times both multipliers.
var baseRate = decimal.NewFromInt(10)

var vehicleRates = map[VehicleType]decimal.Decimal{
	VehicleTypeCar:        decimal.NewFromFloat(1.0),
	VehicleTypeMotorcycle: decimal.NewFromFloat(0.5),
	VehicleTypeBicycle:    decimal.NewFromFloat(0.2),
	VehicleTypeMicrocar:   decimal.NewFromFloat(0.5),
	VehicleTypeTruck:      decimal.NewFromFloat(3.0),
	VehicleTypeBus:        decimal.NewFromFloat(2.0),
}

var slotRates = map[SlotType]decimal.Decimal{
	SlotTypeRegular:     decimal.NewFromFloat(1.0),
	SlotTypeCompact:     decimal.NewFromFloat(0.8),
	SlotTypeLarge:       decimal.NewFromFloat(1.5),
	SlotTypeHandicapped: decimal.NewFromFloat(1.2),
}

// Settlement splits: the system keeps 20% of a completed booking and 10%
// of a cancelled one.
var (
	completionShare   = decimal.NewFromFloat(0.8)
	cancellationShare = decimal.NewFromFloat(0.9)
)
