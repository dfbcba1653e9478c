package parking

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ParkingSystem is the registry and orchestration point for vehicles,
// slots, and bookings, and holds the system wallet that collects booking
// fees. It is constructed explicitly and passed to whatever drives the
// simulation; callers needing concurrent access must synchronize
// externally.
type ParkingSystem struct {
	vehicles []*Vehicle
	slots    []*ParkingSlot
	bookings []*Booking
	wallet   *Wallet
	nextID   int
}

func NewParkingSystem() *ParkingSystem {
	return &ParkingSystem{
		wallet: NewWallet(),
		nextID: 1,
	}
}

func (ps *ParkingSystem) AddVehicle(v *Vehicle) {
	ps.vehicles = append(ps.vehicles, v)
}

func (ps *ParkingSystem) AddParkingSlot(s *ParkingSlot) {
	ps.slots = append(ps.slots, s)
}

func (ps *ParkingSystem) Vehicles() []*Vehicle {
	return ps.vehicles
}

func (ps *ParkingSystem) ParkingSlots() []*ParkingSlot {
	return ps.slots
}

func (ps *ParkingSystem) Bookings() []*Booking {
	return ps.bookings
}

func (ps *ParkingSystem) Wallet() *Wallet {
	return ps.wallet
}

// SetWallet replaces the system wallet. Test and reset tooling only.
func (ps *ParkingSystem) SetWallet(w *Wallet) {
	ps.wallet = w
}

func (ps *ParkingSystem) Balance() decimal.Decimal {
	return ps.wallet.Balance()
}

// AvailableParkingSlots returns, in registration order, every slot
// compatible with the vehicle for the window.
func (ps *ParkingSystem) AvailableParkingSlots(v *Vehicle, start, end time.Time) []*ParkingSlot {
	var available []*ParkingSlot
	for _, slot := range ps.slots {
		if slot.IsCompatible(v.Type(), start, end) {
			available = append(available, slot)
		}
	}
	return available
}

// Book validates the window and slot, prices the stay, charges the
// vehicle's wallet, and records the booking in both the system and the
// slot. A failed booking leaves no partial state behind.
func (ps *ParkingSystem) Book(v *Vehicle, slot *ParkingSlot, start, end time.Time) (*Booking, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end %s not after start %s", ErrIllegalBookingTime,
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	if !slot.IsCompatible(v.Type(), start, end) {
		return nil, fmt.Errorf("%w: vehicle %d in slot %s", ErrIncompatibleSlot, v.ID(), slot.ID())
	}

	amount := price(v.Type(), slot.Type(), start, end)

	// A sub-hour stay truncates to zero billed hours; the wallet rejects
	// zero-amount transfers, so skip the transfer outright.
	if amount.Sign() > 0 {
		if err := v.Wallet().TransferFunds(ps.wallet, amount); err != nil {
			return nil, err
		}
	}

	booking := NewBooking(ps.nextID, v, slot, start, end, amount)
	ps.nextID++
	ps.bookings = append(ps.bookings, booking)
	slot.AddBooking(booking)
	return booking, nil
}

// CompleteBooking marks the booking completed and pays the slot its 80%
// share from the system wallet.
func (ps *ParkingSystem) CompleteBooking(b *Booking) error {
	b.Complete()
	payout := b.Amount().Mul(completionShare)
	if payout.Sign() == 0 {
		return nil
	}
	return ps.wallet.TransferFunds(b.ParkingSlot().Wallet(), payout)
}

// CancelBooking marks the booking cancelled and refunds the vehicle 90%
// from the system wallet.
func (ps *ParkingSystem) CancelBooking(b *Booking) error {
	b.Cancel()
	refund := b.Amount().Mul(cancellationShare)
	if refund.Sign() == 0 {
		return nil
	}
	return ps.wallet.TransferFunds(b.Vehicle().Wallet(), refund)
}

// price bills whole hours only: any fractional remainder of the window is
// truncated toward zero.
func price(vt VehicleType, st SlotType, start, end time.Time) decimal.Decimal {
	hours := int64(end.Sub(start).Hours())
	return decimal.NewFromInt(hours).
		Mul(baseRate).
		Mul(vehicleRates[vt]).
		Mul(slotRates[st])
}
