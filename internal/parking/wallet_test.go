package parking

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func TestNewWallet(t *testing.T) {
	w := NewWallet()

	if !w.Balance().IsZero() {
		t.Errorf("Expected zero balance, got %s", w.Balance())
	}
}

func TestNewWalletWithBalance(t *testing.T) {
	w := NewWalletWithBalance(dec(100))

	if !w.Balance().Equal(dec(100)) {
		t.Errorf("Expected balance 100, got %s", w.Balance())
	}
}

func TestNewWalletWithNegativeBalance(t *testing.T) {
	w := NewWalletWithBalance(dec(-50))

	if !w.Balance().Equal(dec(-50)) {
		t.Errorf("Expected balance -50, got %s", w.Balance())
	}
}

func TestAddFunds(t *testing.T) {
	w := NewWallet()

	if err := w.AddFunds(dec(50)); err != nil {
		t.Errorf("Unexpected error: %s", err)
	}
	if !w.Balance().Equal(dec(50)) {
		t.Errorf("Expected balance 50, got %s", w.Balance())
	}
}

func TestAddFundsRejectsZeroAndNegative(t *testing.T) {
	w := NewWallet()

	for _, amount := range []decimal.Decimal{dec(0), dec(-10)} {
		err := w.AddFunds(amount)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Expected ErrInvalidAmount for amount %s, got %v", amount, err)
		}
	}
	if !w.Balance().IsZero() {
		t.Errorf("Expected balance unchanged, got %s", w.Balance())
	}
}

func TestDeductFunds(t *testing.T) {
	w := NewWalletWithBalance(dec(100))

	if err := w.DeductFunds(dec(30)); err != nil {
		t.Errorf("Unexpected error: %s", err)
	}
	if !w.Balance().Equal(dec(70)) {
		t.Errorf("Expected balance 70, got %s", w.Balance())
	}
}

func TestDeductFundsExactBalance(t *testing.T) {
	w := NewWalletWithBalance(dec(100))

	if err := w.DeductFunds(dec(100)); err != nil {
		t.Errorf("Unexpected error: %s", err)
	}
	if !w.Balance().IsZero() {
		t.Errorf("Expected empty wallet, got %s", w.Balance())
	}
}

func TestDeductFundsInsufficientBalance(t *testing.T) {
	w := NewWalletWithBalance(dec(50))

	err := w.DeductFunds(dec(100))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Expected ErrInsufficientFunds, got %v", err)
	}
	if !w.Balance().Equal(dec(50)) {
		t.Errorf("Expected balance unchanged at 50, got %s", w.Balance())
	}
}

func TestDeductFundsRejectsZeroAndNegative(t *testing.T) {
	w := NewWalletWithBalance(dec(50))

	for _, amount := range []decimal.Decimal{dec(0), dec(-10)} {
		err := w.DeductFunds(amount)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Expected ErrInvalidAmount for amount %s, got %v", amount, err)
		}
	}
}

func TestTransferFunds(t *testing.T) {
	source := NewWalletWithBalance(dec(100))
	target := NewWallet()

	if err := source.TransferFunds(target, dec(30)); err != nil {
		t.Errorf("Unexpected error: %s", err)
	}
	if !source.Balance().Equal(dec(70)) {
		t.Errorf("Expected source balance 70, got %s", source.Balance())
	}
	if !target.Balance().Equal(dec(30)) {
		t.Errorf("Expected target balance 30, got %s", target.Balance())
	}
}

func TestTransferFundsExactBalance(t *testing.T) {
	source := NewWalletWithBalance(dec(100))
	target := NewWallet()

	if err := source.TransferFunds(target, dec(100)); err != nil {
		t.Errorf("Unexpected error: %s", err)
	}
	if !source.Balance().IsZero() {
		t.Errorf("Expected empty source, got %s", source.Balance())
	}
	if !target.Balance().Equal(dec(100)) {
		t.Errorf("Expected target balance 100, got %s", target.Balance())
	}
}

func TestTransferFundsInsufficientBalance(t *testing.T) {
	source := NewWalletWithBalance(dec(50))
	target := NewWallet()

	err := source.TransferFunds(target, dec(100))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Expected ErrInsufficientFunds, got %v", err)
	}
	if !source.Balance().Equal(dec(50)) {
		t.Errorf("Expected source balance unchanged at 50, got %s", source.Balance())
	}
	if !target.Balance().IsZero() {
		t.Errorf("Expected target balance unchanged, got %s", target.Balance())
	}
}

func TestTransferFundsRejectsZeroAndNegative(t *testing.T) {
	source := NewWalletWithBalance(dec(50))
	target := NewWallet()

	for _, amount := range []decimal.Decimal{dec(0), dec(-10)} {
		err := source.TransferFunds(target, amount)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Expected ErrInvalidAmount for amount %s, got %v", amount, err)
		}
	}
}

func TestTransferFundsToSelf(t *testing.T) {
	w := NewWalletWithBalance(dec(100))

	if err := w.TransferFunds(w, dec(50)); err != nil {
		t.Errorf("Unexpected error: %s", err)
	}
	if !w.Balance().Equal(dec(100)) {
		t.Errorf("Expected balance unchanged at 100, got %s", w.Balance())
	}
}

func TestWalletMultipleOperations(t *testing.T) {
	w := NewWallet()
	target := NewWallet()

	w.AddFunds(dec(100))
	w.DeductFunds(dec(20))
	w.AddFunds(dec(30))
	w.TransferFunds(target, dec(40))

	if !w.Balance().Equal(dec(70)) {
		t.Errorf("Expected balance 70, got %s", w.Balance())
	}
	if !target.Balance().Equal(dec(40)) {
		t.Errorf("Expected target balance 40, got %s", target.Balance())
	}
}
