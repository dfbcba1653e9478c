package parking

import "github.com/shopspring/decimal"

type VehicleType string

const (
	VehicleTypeCar        VehicleType = "CAR"
	VehicleTypeMotorcycle VehicleType = "MOTORCYCLE"
	VehicleTypeTruck      VehicleType = "TRUCK"
	VehicleTypeBicycle    VehicleType = "BICYCLE"
	VehicleTypeMicrocar   VehicleType = "MICROCAR"
	VehicleTypeBus        VehicleType = "BUS"
)

// Vehicle is identity plus type plus an owned wallet. IDs are
// caller-assigned; the system does not enforce uniqueness.
type Vehicle struct {
	id          int
	vehicleType VehicleType
	wallet      *Wallet
}

func NewVehicle(id int, vehicleType VehicleType, balance decimal.Decimal) *Vehicle {
	return &Vehicle{
		id:          id,
		vehicleType: vehicleType,
		wallet:      NewWalletWithBalance(balance),
	}
}

func NewVehicleWithWallet(id int, vehicleType VehicleType, wallet *Wallet) *Vehicle {
	return &Vehicle{
		id:          id,
		vehicleType: vehicleType,
		wallet:      wallet,
	}
}

func (v *Vehicle) ID() int {
	return v.id
}

func (v *Vehicle) Type() VehicleType {
	return v.vehicleType
}

func (v *Vehicle) Wallet() *Wallet {
	return v.wallet
}

func (v *Vehicle) Balance() decimal.Decimal {
	return v.wallet.Balance()
}
