package parking

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type InstrumentedParkingSystem struct {
	*ParkingSystem
	telemetry *TelemetryProvider

	// Metrics
	bookingOperations    metric.Int64Counter
	settlementOperations metric.Int64Counter
	activeBookings       metric.Int64UpDownCounter
	bookingRevenue       metric.Float64Counter
	operationDuration    metric.Float64Histogram
}

func NewInstrumentedParkingSystem(telemetry *TelemetryProvider) (*InstrumentedParkingSystem, error) {
	base := NewParkingSystem()

	meter := telemetry.Meter()

	bookingOperations, err := meter.Int64Counter("booking_operations_total",
		metric.WithDescription("Total number of booking attempts"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	settlementOperations, err := meter.Int64Counter("settlement_operations_total",
		metric.WithDescription("Total number of booking completions and cancellations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	activeBookings, err := meter.Int64UpDownCounter("active_bookings",
		metric.WithDescription("Current number of active bookings"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	bookingRevenue, err := meter.Float64Counter("booking_revenue_total",
		metric.WithDescription("Total amount charged for bookings"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram("operation_duration_seconds",
		metric.WithDescription("Duration of parking system operations"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &InstrumentedParkingSystem{
		ParkingSystem:        base,
		telemetry:            telemetry,
		bookingOperations:    bookingOperations,
		settlementOperations: settlementOperations,
		activeBookings:       activeBookings,
		bookingRevenue:       bookingRevenue,
		operationDuration:    operationDuration,
	}, nil
}

func (ips *InstrumentedParkingSystem) AvailableParkingSlots(ctx context.Context, v *Vehicle, start, end time.Time) []*ParkingSlot {
	tracer := ips.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_system.available_slots",
		trace.WithAttributes(
			attribute.Int("vehicle.id", v.ID()),
			attribute.String("vehicle.type", string(v.Type())),
		))
	defer span.End()

	startedAt := time.Now()

	available := ips.ParkingSystem.AvailableParkingSlots(v, start, end)

	span.SetAttributes(
		attribute.Int("available_slots_count", len(available)),
		attribute.Int("registered_slots_count", len(ips.ParkingSlots())),
	)

	labels := []attribute.KeyValue{
		attribute.String("operation", "available_slots"),
		attribute.String("status", "success"),
	}
	ips.operationDuration.Record(ctx, time.Since(startedAt).Seconds(), metric.WithAttributes(labels...))

	return available
}

func (ips *InstrumentedParkingSystem) Book(ctx context.Context, v *Vehicle, slot *ParkingSlot, start, end time.Time) (*Booking, error) {
	tracer := ips.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_system.book",
		trace.WithAttributes(
			attribute.Int("vehicle.id", v.ID()),
			attribute.String("vehicle.type", string(v.Type())),
			attribute.String("slot.id", slot.ID()),
			attribute.String("slot.type", string(slot.Type())),
		))
	defer span.End()

	startedAt := time.Now()

	span.AddEvent("validating_booking")

	booking, err := ips.ParkingSystem.Book(v, slot, start, end)

	duration := time.Since(startedAt).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "book"),
		attribute.String("vehicle_type", string(v.Type())),
		attribute.String("slot_type", string(slot.Type())),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
		ips.bookingOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	} else {
		amount, _ := booking.Amount().Float64()
		labels = append(labels, attribute.String("status", "success"))
		span.SetAttributes(
			attribute.Int("booking.id", booking.ID()),
			attribute.Float64("booking.amount", amount),
		)
		span.AddEvent("booking_created", trace.WithAttributes(
			attribute.Int("booking_id", booking.ID()),
		))

		ips.bookingOperations.Add(ctx, 1, metric.WithAttributes(labels...))
		ips.activeBookings.Add(ctx, 1)
		ips.bookingRevenue.Add(ctx, amount, metric.WithAttributes(
			attribute.String("vehicle_type", string(v.Type())),
			attribute.String("slot_type", string(slot.Type())),
		))
	}

	ips.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return booking, err
}

func (ips *InstrumentedParkingSystem) CompleteBooking(ctx context.Context, b *Booking) error {
	return ips.settle(ctx, b, "complete", ips.ParkingSystem.CompleteBooking)
}

func (ips *InstrumentedParkingSystem) CancelBooking(ctx context.Context, b *Booking) error {
	return ips.settle(ctx, b, "cancel", ips.ParkingSystem.CancelBooking)
}

func (ips *InstrumentedParkingSystem) settle(ctx context.Context, b *Booking, operation string, fn func(*Booking) error) error {
	tracer := ips.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_system."+operation+"_booking",
		trace.WithAttributes(
			attribute.Int("booking.id", b.ID()),
			attribute.String("booking.status", string(b.Status())),
		))
	defer span.End()

	startedAt := time.Now()

	wasActive := b.Status() == BookingStatusActive

	err := fn(b)

	duration := time.Since(startedAt).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", operation),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels, attribute.String("status", "success"))
		span.AddEvent("booking_settled", trace.WithAttributes(
			attribute.String("final_status", string(b.Status())),
		))
	}

	if wasActive {
		ips.activeBookings.Add(ctx, -1)
	}

	ips.settlementOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	ips.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return err
}
