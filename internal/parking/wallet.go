package parking

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Wallet holds a monetary balance. A wallet is owned by exactly one
// vehicle, slot, or the system coordinator and is never shared.
type Wallet struct {
	balance decimal.Decimal
}

func NewWallet() *Wallet {
	return &Wallet{}
}

// NewWalletWithBalance creates a wallet with an arbitrary starting balance.
// A negative initial balance is allowed; operations never produce one.
func NewWalletWithBalance(balance decimal.Decimal) *Wallet {
	return &Wallet{balance: balance}
}

func (w *Wallet) Balance() decimal.Decimal {
	return w.balance
}

func (w *Wallet) AddFunds(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: add %s", ErrInvalidAmount, amount)
	}
	w.balance = w.balance.Add(amount)
	return nil
}

func (w *Wallet) DeductFunds(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: deduct %s", ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(w.balance) {
		return fmt.Errorf("%w: deduct %s from balance %s", ErrInsufficientFunds, amount, w.balance)
	}
	w.balance = w.balance.Sub(amount)
	return nil
}

// TransferFunds moves amount from w to target. Transferring to w itself is
// a net no-op on the balance.
func (w *Wallet) TransferFunds(target *Wallet, amount decimal.Decimal) error {
	if err := w.DeductFunds(amount); err != nil {
		return err
	}
	target.balance = target.balance.Add(amount)
	return nil
}
