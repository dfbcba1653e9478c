package parking

import (
	"context"
	"testing"
	"time"
)

func TestInstrumentedParkingSystemIntegration(t *testing.T) {
	telemetry, err := NewTelemetryProvider()
	if err != nil {
		t.Fatalf("Failed to initialize telemetry: %v", err)
	}
	// Shutdown flushes to the OTLP endpoint; without a local collector the
	// flush itself may fail, which is fine for this test.
	defer telemetry.Shutdown(context.Background())

	ips, err := NewInstrumentedParkingSystem(telemetry)
	if err != nil {
		t.Fatalf("Failed to create instrumented parking system: %v", err)
	}

	ctx := context.Background()

	car := NewVehicle(1, VehicleTypeCar, dec(1000))
	slot := NewParkingSlot("REG001", SlotTypeRegular)
	ips.AddVehicle(car)
	ips.AddParkingSlot(slot)

	start := time.Date(2023, 10, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	available := ips.AvailableParkingSlots(ctx, car, start, end)
	if len(available) != 1 {
		t.Errorf("Expected 1 available slot, got %d", len(available))
	}

	booking, err := ips.Book(ctx, car, slot, start, end)
	if err != nil {
		t.Errorf("Unexpected error: %s", err)
	}
	if !booking.Amount().Equal(dec(20)) {
		t.Errorf("Expected amount 20, got %s", booking.Amount())
	}

	// Booked window is no longer offered.
	available = ips.AvailableParkingSlots(ctx, car, start, end)
	if len(available) != 0 {
		t.Errorf("Expected 0 available slots, got %d", len(available))
	}

	if err := ips.CompleteBooking(ctx, booking); err != nil {
		t.Errorf("Unexpected error: %s", err)
	}
	if booking.Status() != BookingStatusCompleted {
		t.Errorf("Expected COMPLETED, got %s", booking.Status())
	}
	if !slot.Balance().Equal(dec(16)) {
		t.Errorf("Expected slot balance 16, got %s", slot.Balance())
	}
}
