// Package registry holds the state-transition rules of the car rental
// registry. Functions here are pure: they validate a call against the
// current records and return the records to persist, plus the payment to
// issue for a rental. Loading and committing is the caller's job.
package registry

import (
	"unicode/utf16"

	"github.com/dmitrijs2005/carregistry/internal/currency"
	"github.com/dmitrijs2005/carregistry/internal/server/models"
)

// MinNameLength is counted in UTF-16 code units, so a character outside the
// Basic Multilingual Plane counts twice.
const MinNameLength = 3

// Call describes who invoked an operation and how much value came with it.
type Call struct {
	Caller  string
	Deposit currency.Amount
}

// Payment is a transfer the caller must issue to complete a rental.
type Payment struct {
	From   string
	To     string
	Amount currency.Amount
}

// Rental is the outcome of a successful RentCar: both updated records and
// the payment that pays the owner.
type Rental struct {
	Owner   *models.Owner
	Renter  *models.Renter
	Payment Payment
}

// PriceAmount converts a whole-token price into base units.
func PriceAmount(price uint32) currency.Amount {
	return currency.OneToken.Mul(uint64(price))
}

func nameLength(name string) int {
	return len(utf16.Encode([]rune(name)))
}

func validateRegistration(call Call, name string, errDeposit *Error) error {
	if nameLength(name) < MinNameLength {
		return ErrInvalidName
	}
	if call.Deposit.Cmp(currency.OneToken) < 0 {
		return errDeposit
	}
	return nil
}

// RegisterOwner validates an owner registration and returns the record to
// store under the caller's account. The deposit is a registration fee and is
// kept; nothing is forwarded.
func RegisterOwner(call Call, name string, carAvailable bool, price uint32) (*models.Owner, error) {
	if err := validateRegistration(call, name, ErrInsufficientDeposit); err != nil {
		return nil, err
	}
	if PriceAmount(price).Cmp(currency.OneToken) <= 0 {
		return nil, ErrInvalidPrice
	}

	return &models.Owner{
		Account:      call.Caller,
		Name:         name,
		CarAvailable: carAvailable,
		Price:        price,
	}, nil
}

// RegisterRenter validates a renter registration. The third argument, the
// caller's carRented flag, is accepted for compatibility but ignored: every
// registration starts the renter without a car, including re-registration of
// a renter who currently holds one.
func RegisterRenter(call Call, name string, _ bool) (*models.Renter, error) {
	if err := validateRegistration(call, name, ErrRenterInsufficientDeposit); err != nil {
		return nil, err
	}

	return &models.Renter{
		Account:   call.Caller,
		Name:      name,
		CarRented: false,
	}, nil
}

// RentCar checks a rental of owner's car by the calling renter. renter and
// owner are the current records, nil when absent. Checks run in a fixed
// order and the first failure is returned. The inputs are not modified.
func RentCar(call Call, renter *models.Renter, owner *models.Owner) (*Rental, error) {
	if renter == nil {
		return nil, ErrRenterNotRegistered
	}
	if owner == nil {
		return nil, ErrOwnerNotRegistered
	}
	if !owner.CarAvailable {
		return nil, ErrCarNotAvailable
	}

	price := PriceAmount(owner.Price)
	if !call.Deposit.Equal(price) {
		return nil, ErrDepositMismatch
	}

	o := *owner
	o.CarAvailable = false

	r := *renter
	r.CarRented = true

	return &Rental{
		Owner:  &o,
		Renter: &r,
		Payment: Payment{
			From:   call.Caller,
			To:     owner.Account,
			Amount: price,
		},
	}, nil
}
