package parking

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Shell command time format, minute resolution.
const timeLayout = "2006-01-02T15:04"

// Shell drives the booking simulation interactively over stdin.
type Shell struct {
	system    *InstrumentedParkingSystem
	scanner   *bufio.Scanner
	telemetry *TelemetryProvider
	log       zerolog.Logger
}

func NewShell(telemetry *TelemetryProvider, log zerolog.Logger) (*Shell, error) {
	system, err := NewInstrumentedParkingSystem(telemetry)
	if err != nil {
		return nil, err
	}

	return &Shell{
		system:    system,
		scanner:   bufio.NewScanner(os.Stdin),
		telemetry: telemetry,
		log:       log,
	}, nil
}

func (s *Shell) Run(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.run")
	defer span.End()

	for {
		if ctx.Err() != nil {
			break
		}
		if !s.scanner.Scan() {
			break
		}

		input := strings.TrimSpace(s.scanner.Text())
		if input == "" {
			continue
		}

		cmdCtx, cmdSpan := tracer.Start(ctx, "shell.process_command",
			trace.WithAttributes(attribute.String("command.input", input)))
		s.processCommand(cmdCtx, input)
		cmdSpan.End()
	}
}

func (s *Shell) processCommand(ctx context.Context, input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	command := parts[0]
	s.log.Debug().Str("command", command).Msg("processing shell command")

	switch command {
	case "add_vehicle":
		s.handleAddVehicle(parts)
	case "add_slot":
		s.handleAddSlot(parts)
	case "activate_slot":
		s.handleSetSlotActive(parts, true)
	case "deactivate_slot":
		s.handleSetSlotActive(parts, false)
	case "available_slots":
		s.handleAvailableSlots(ctx, parts)
	case "book":
		s.handleBook(ctx, parts)
	case "complete_booking":
		s.handleSettle(ctx, parts, "complete")
	case "cancel_booking":
		s.handleSettle(ctx, parts, "cancel")
	case "bookings":
		s.handleBookings()
	case "balance":
		fmt.Printf("System balance: %s\n", s.system.Balance())
	case "vehicle_balance":
		s.handleVehicleBalance(parts)
	case "slot_balance":
		s.handleSlotBalance(parts)
	default:
		fmt.Printf("Unknown command: %s\n", command)
	}
}

func (s *Shell) handleAddVehicle(parts []string) {
	if len(parts) != 4 {
		fmt.Println("Usage: add_vehicle <id> <type> <balance>")
		return
	}

	id, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Println("Invalid vehicle id")
		return
	}

	vehicleType, ok := parseVehicleType(parts[2])
	if !ok {
		fmt.Printf("Unknown vehicle type: %s\n", parts[2])
		return
	}

	balance, err := decimal.NewFromString(parts[3])
	if err != nil {
		fmt.Println("Invalid balance")
		return
	}

	s.system.AddVehicle(NewVehicle(id, vehicleType, balance))
	fmt.Printf("Added %s %d with balance %s\n", strings.ToLower(string(vehicleType)), id, balance)
}

func (s *Shell) handleAddSlot(parts []string) {
	if len(parts) != 3 {
		fmt.Println("Usage: add_slot <id> <type>")
		return
	}

	slotType, ok := parseSlotType(parts[2])
	if !ok {
		fmt.Printf("Unknown slot type: %s\n", parts[2])
		return
	}

	s.system.AddParkingSlot(NewParkingSlot(parts[1], slotType))
	fmt.Printf("Added %s slot %s\n", strings.ToLower(string(slotType)), parts[1])
}

func (s *Shell) handleSetSlotActive(parts []string, active bool) {
	if len(parts) != 2 {
		fmt.Printf("Usage: %s <slot_id>\n", parts[0])
		return
	}

	slot := s.slotByID(parts[1])
	if slot == nil {
		fmt.Println("Slot not found")
		return
	}

	if active {
		slot.Activate()
		fmt.Printf("Slot %s activated\n", slot.ID())
	} else {
		slot.Deactivate()
		fmt.Printf("Slot %s deactivated\n", slot.ID())
	}
}

func (s *Shell) handleAvailableSlots(ctx context.Context, parts []string) {
	if len(parts) != 4 {
		fmt.Println("Usage: available_slots <vehicle_id> <start> <end>")
		return
	}

	vehicle := s.vehicleFromArg(parts[1])
	if vehicle == nil {
		return
	}

	start, end, err := parseWindow(parts[2], parts[3])
	if err != nil {
		fmt.Println(err)
		return
	}

	available := s.system.AvailableParkingSlots(ctx, vehicle, start, end)
	if len(available) == 0 {
		fmt.Println("No available slots")
		return
	}

	for _, slot := range available {
		fmt.Printf("%s\t%s\n", slot.ID(), slot.Type())
	}
}

func (s *Shell) handleBook(ctx context.Context, parts []string) {
	if len(parts) != 5 {
		fmt.Println("Usage: book <vehicle_id> <slot_id> <start> <end>")
		return
	}

	vehicle := s.vehicleFromArg(parts[1])
	if vehicle == nil {
		return
	}

	slot := s.slotByID(parts[2])
	if slot == nil {
		fmt.Println("Slot not found")
		return
	}

	start, end, err := parseWindow(parts[3], parts[4])
	if err != nil {
		fmt.Println(err)
		return
	}

	booking, err := s.system.Book(ctx, vehicle, slot, start, end)
	if err != nil {
		s.log.Debug().Err(err).Int("vehicle_id", vehicle.ID()).Str("slot_id", slot.ID()).Msg("booking rejected")
		switch {
		case errors.Is(err, ErrIllegalBookingTime):
			fmt.Println("End time must be after start time")
		case errors.Is(err, ErrIncompatibleSlot):
			fmt.Println("Slot is not compatible with this vehicle for that window")
		case errors.Is(err, ErrInsufficientFunds):
			fmt.Println("Insufficient funds")
		default:
			fmt.Printf("Error: %s\n", err)
		}
		return
	}

	fmt.Printf("Booked: %s\n", booking)
}

func (s *Shell) handleSettle(ctx context.Context, parts []string, operation string) {
	if len(parts) != 2 {
		fmt.Printf("Usage: %s_booking <booking_id>\n", operation)
		return
	}

	id, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Println("Invalid booking id")
		return
	}

	booking := s.bookingByID(id)
	if booking == nil {
		fmt.Println("Booking not found")
		return
	}

	if operation == "complete" {
		err = s.system.CompleteBooking(ctx, booking)
	} else {
		err = s.system.CancelBooking(ctx, booking)
	}
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		return
	}

	fmt.Printf("Booking %d is now %s\n", booking.ID(), booking.Status())
}

func (s *Shell) handleBookings() {
	bookings := s.system.Bookings()
	if len(bookings) == 0 {
		fmt.Println("No bookings")
		return
	}

	for _, b := range bookings {
		fmt.Println(b)
	}
}

func (s *Shell) handleVehicleBalance(parts []string) {
	if len(parts) != 2 {
		fmt.Println("Usage: vehicle_balance <vehicle_id>")
		return
	}

	vehicle := s.vehicleFromArg(parts[1])
	if vehicle == nil {
		return
	}
	fmt.Printf("Vehicle %d balance: %s\n", vehicle.ID(), vehicle.Balance())
}

func (s *Shell) handleSlotBalance(parts []string) {
	if len(parts) != 2 {
		fmt.Println("Usage: slot_balance <slot_id>")
		return
	}

	slot := s.slotByID(parts[1])
	if slot == nil {
		fmt.Println("Slot not found")
		return
	}
	fmt.Printf("Slot %s balance: %s\n", slot.ID(), slot.Balance())
}

func (s *Shell) vehicleFromArg(arg string) *Vehicle {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("Invalid vehicle id")
		return nil
	}

	for _, v := range s.system.Vehicles() {
		if v.ID() == id {
			return v
		}
	}
	fmt.Println("Vehicle not found")
	return nil
}

func (s *Shell) slotByID(id string) *ParkingSlot {
	for _, slot := range s.system.ParkingSlots() {
		if slot.ID() == id {
			return slot
		}
	}
	return nil
}

func (s *Shell) bookingByID(id int) *Booking {
	for _, b := range s.system.Bookings() {
		if b.ID() == id {
			return b
		}
	}
	return nil
}

func parseWindow(startArg, endArg string) (time.Time, time.Time, error) {
	start, err := time.Parse(timeLayout, startArg)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start time, want %s", timeLayout)
	}
	end, err := time.Parse(timeLayout, endArg)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end time, want %s", timeLayout)
	}
	return start, end, nil
}

func parseVehicleType(arg string) (VehicleType, bool) {
	switch VehicleType(strings.ToUpper(arg)) {
	case VehicleTypeCar, VehicleTypeMotorcycle, VehicleTypeTruck,
		VehicleTypeBicycle, VehicleTypeMicrocar, VehicleTypeBus:
		return VehicleType(strings.ToUpper(arg)), true
	}
	return "", false
}

func parseSlotType(arg string) (SlotType, bool) {
	switch SlotType(strings.ToUpper(arg)) {
	case SlotTypeRegular, SlotTypeCompact, SlotTypeLarge, SlotTypeHandicapped:
		return SlotType(strings.ToUpper(arg)), true
	}
	return "", false
}
