package registry

import "errors"

// Kind classifies registry failures.
type Kind int

const (
	KindInvalidName Kind = iota + 1
	KindInsufficientDeposit
	KindInvalidPrice
	KindRenterNotRegistered
	KindOwnerNotRegistered
	KindCarNotAvailable
	KindDepositMismatch
)

var kindNames = map[Kind]string{
	KindInvalidName:         "InvalidName",
	KindInsufficientDeposit: "InsufficientDeposit",
	KindInvalidPrice:        "InvalidPrice",
	KindRenterNotRegistered: "RenterNotRegistered",
	KindOwnerNotRegistered:  "OwnerNotRegistered",
	KindCarNotAvailable:     "CarNotAvailable",
	KindDepositMismatch:     "DepositMismatch",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Error is a rejected registry operation. Messages are fixed; clients compare
// them verbatim.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

var (
	ErrInvalidName         = &Error{Kind: KindInvalidName, msg: "El nombre debe contener 3 o más caractéres."}
	ErrInsufficientDeposit = &Error{Kind: KindInsufficientDeposit, msg: "Debes pagar 1 NEAR para registrarte."}
	ErrInvalidPrice        = &Error{Kind: KindInvalidPrice, msg: "El precio de renta debe ser mayor a 1 NEAR."}
	ErrRenterNotRegistered = &Error{Kind: KindRenterNotRegistered, msg: "Tienes que ser un usuario registrado para ejecutar este comando."}
	ErrOwnerNotRegistered  = &Error{Kind: KindOwnerNotRegistered, msg: "Tienes que ingresar la cuenta de un propietario registrado para ejecutar este comando."}
	ErrCarNotAvailable     = &Error{Kind: KindCarNotAvailable, msg: "El propietario no tiene su auto disponible."}
	ErrDepositMismatch     = &Error{Kind: KindDepositMismatch, msg: "El depósito debe ser igual al precio estipulado por el propietario."}

	// ErrRenterInsufficientDeposit shares KindInsufficientDeposit with
	// ErrInsufficientDeposit; renters get a differently worded message.
	ErrRenterInsufficientDeposit = &Error{Kind: KindInsufficientDeposit, msg: "Debes de pagar 1 NEAR para registrarte."}
)

// KindOf extracts the registry Kind from err, if err is a registry error.
func KindOf(err error) (Kind, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}
