package parking

import "testing"

func TestNewVehicle(t *testing.T) {
	v := NewVehicle(1, VehicleTypeCar, dec(100))

	if v.ID() != 1 {
		t.Errorf("Expected id 1, got %d", v.ID())
	}
	if v.Type() != VehicleTypeCar {
		t.Errorf("Expected type CAR, got %s", v.Type())
	}
	if v.Wallet() == nil {
		t.Error("Expected vehicle to own a wallet")
	}
	if !v.Balance().Equal(dec(100)) {
		t.Errorf("Expected balance 100, got %s", v.Balance())
	}
}

func TestNewVehicleWithWallet(t *testing.T) {
	w := NewWalletWithBalance(dec(250))
	v := NewVehicleWithWallet(2, VehicleTypeBus, w)

	if v.Wallet() != w {
		t.Error("Expected vehicle to use the provided wallet")
	}
	if !v.Balance().Equal(dec(250)) {
		t.Errorf("Expected balance 250, got %s", v.Balance())
	}
}

func TestVehicleBalanceTracksWallet(t *testing.T) {
	v := NewVehicle(3, VehicleTypeMotorcycle, dec(10))

	v.Wallet().AddFunds(dec(5))

	if !v.Balance().Equal(dec(15)) {
		t.Errorf("Expected balance 15 after wallet deposit, got %s", v.Balance())
	}
}
