package parking

import (
	"time"

	"github.com/shopspring/decimal"
)

type SlotType string

const (
	SlotTypeRegular     SlotType = "REGULAR"
	SlotTypeCompact     SlotType = "COMPACT"
	SlotTypeLarge       SlotType = "LARGE"
	SlotTypeHandicapped SlotType = "HANDICAPPED"
)

// ParkingSlot owns its wallet and the bookings made against it, in
// insertion order.
type ParkingSlot struct {
	id       string
	slotType SlotType
	active   bool
	wallet   *Wallet
	bookings []*Booking
}

func NewParkingSlot(id string, slotType SlotType) *ParkingSlot {
	return &ParkingSlot{
		id:       id,
		slotType: slotType,
		active:   true,
		wallet:   NewWallet(),
	}
}

func (s *ParkingSlot) ID() string {
	return s.id
}

func (s *ParkingSlot) Type() SlotType {
	return s.slotType
}

func (s *ParkingSlot) IsActive() bool {
	return s.active
}

func (s *ParkingSlot) Activate() {
	s.active = true
}

func (s *ParkingSlot) Deactivate() {
	s.active = false
}

func (s *ParkingSlot) Wallet() *Wallet {
	return s.wallet
}

func (s *ParkingSlot) Balance() decimal.Decimal {
	return s.wallet.Balance()
}

func (s *ParkingSlot) Bookings() []*Booking {
	return s.bookings
}

func (s *ParkingSlot) AddBooking(b *Booking) {
	s.bookings = append(s.bookings, b)
}

// IsAvailable reports whether [start, end) overlaps no existing booking.
// Intervals are half-open: a window that starts exactly when another ends,
// or ends exactly when another starts, does not overlap.
func (s *ParkingSlot) IsAvailable(start, end time.Time) bool {
	for _, b := range s.bookings {
		if b.StartTime().Before(end) && start.Before(b.EndTime()) {
			return false
		}
	}
	return true
}

// IsCompatible reports whether a vehicle of the given type may book this
// slot for the window: the slot must be active, the window free, and the
// vehicle type permitted for the slot type.
func (s *ParkingSlot) IsCompatible(vehicleType VehicleType, start, end time.Time) bool {
	if !s.active {
		return false
	}
	if !s.IsAvailable(start, end) {
		return false
	}
	return s.permits(vehicleType)
}

func (s *ParkingSlot) permits(vehicleType VehicleType) bool {
	switch s.slotType {
	case SlotTypeRegular:
		return vehicleType == VehicleTypeCar ||
			vehicleType == VehicleTypeMotorcycle ||
			vehicleType == VehicleTypeBicycle ||
			vehicleType == VehicleTypeMicrocar
	case SlotTypeCompact:
		return vehicleType == VehicleTypeMotorcycle ||
			vehicleType == VehicleTypeBicycle ||
			vehicleType == VehicleTypeMicrocar
	case SlotTypeLarge:
		return vehicleType == VehicleTypeCar ||
			vehicleType == VehicleTypeMotorcycle ||
			vehicleType == VehicleTypeBus ||
			vehicleType == VehicleTypeBicycle
	case SlotTypeHandicapped:
		return vehicleType == VehicleTypeBicycle
	}
	return false
}
