package parking

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking records a vehicle/slot pairing over a time interval with the
// amount charged at creation. Everything except the status is fixed once
// constructed. Complete and Cancel are unconditional: they may be applied
// from any prior status and the last one applied wins.
type Booking struct {
	id        int
	vehicle   *Vehicle
	slot      *ParkingSlot
	startTime time.Time
	endTime   time.Time
	amount    decimal.Decimal
	status    BookingStatus
}

func NewBooking(id int, vehicle *Vehicle, slot *ParkingSlot, start, end time.Time, amount decimal.Decimal) *Booking {
	return &Booking{
		id:        id,
		vehicle:   vehicle,
		slot:      slot,
		startTime: start,
		endTime:   end,
		amount:    amount,
		status:    BookingStatusActive,
	}
}

func (b *Booking) ID() int {
	return b.id
}

func (b *Booking) Vehicle() *Vehicle {
	return b.vehicle
}

func (b *Booking) ParkingSlot() *ParkingSlot {
	return b.slot
}

func (b *Booking) StartTime() time.Time {
	return b.startTime
}

func (b *Booking) EndTime() time.Time {
	return b.endTime
}

func (b *Booking) Amount() decimal.Decimal {
	return b.amount
}

func (b *Booking) Status() BookingStatus {
	return b.status
}

func (b *Booking) Complete() {
	b.status = BookingStatusCompleted
}

func (b *Booking) Cancel() {
	b.status = BookingStatusCancelled
}

func (b *Booking) String() string {
	return fmt.Sprintf("booking %d: vehicle %d in slot %s from %s to %s for %s (%s)",
		b.id, b.vehicle.ID(), b.slot.ID(),
		b.startTime.Format(time.RFC3339), b.endTime.Format(time.RFC3339),
		b.amount, b.status)
}
