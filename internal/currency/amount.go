// Package currency models value amounts in base units. One token is worth
// 10^24 base units, so amounts do not fit into machine integers and are kept
// as arbitrary-precision integers.
package currency

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// TokenDecimals is the number of base-unit digits in one token.
const TokenDecimals = 24

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

var oneToken = new(big.Int).Exp(big.NewInt(10), big.NewInt(TokenDecimals), nil)

// OneToken is the smallest deposit accepted at registration.
var OneToken = Amount{v: oneToken}

// Amount is an immutable non-negative quantity of base units.
// The zero value is a valid zero amount.
type Amount struct {
	v *big.Int
}

// Zero returns an empty amount.
func Zero() Amount { return Amount{} }

// FromTokens converts whole tokens into base units.
func FromTokens(n uint64) Amount {
	v := new(big.Int).SetUint64(n)
	return Amount{v: v.Mul(v, oneToken)}
}

// FromBaseUnits wraps a base-unit count.
func FromBaseUnits(n uint64) Amount {
	return Amount{v: new(big.Int).SetUint64(n)}
}

// ParseAmount parses a decimal string of base units, e.g. "3000000000000000000000000".
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if v.Sign() < 0 {
		return Amount{}, ErrNegativeAmount
	}
	return Amount{v: v}, nil
}

// ParseTokens parses a decimal token quantity such as "3" or "1.5".
// At most TokenDecimals fractional digits are accepted.
func ParseTokens(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	if strings.HasPrefix(s, "-") {
		return Amount{}, ErrNegativeAmount
	}

	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > TokenDecimals {
		return Amount{}, fmt.Errorf("%w: more than %d fractional digits", ErrInvalidAmount, TokenDecimals)
	}
	if whole == "" {
		whole = "0"
	}

	digits := whole + frac + strings.Repeat("0", TokenDecimals-len(frac))
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
	}

	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Amount{v: v}, nil
}

func (a Amount) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int { return a.big().Cmp(b.big()) }

// Equal reports whether a and b hold exactly the same number of base units.
func (a Amount) Equal(b Amount) bool { return a.Cmp(b) == 0 }

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.big().Sign() == 0 }

// Mul returns a multiplied by n.
func (a Amount) Mul(n uint64) Amount {
	return Amount{v: new(big.Int).Mul(a.big(), new(big.Int).SetUint64(n))}
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{v: new(big.Int).Add(a.big(), b.big())}
}

// String returns the amount in base units.
func (a Amount) String() string { return a.big().String() }

// Tokens formats the amount as a token quantity without trailing zeros.
func (a Amount) Tokens() string {
	q, r := new(big.Int).QuoRem(a.big(), oneToken, new(big.Int))
	if r.Sign() == 0 {
		return q.String()
	}
	rs := r.String()
	frac := strings.Repeat("0", TokenDecimals-len(rs)) + rs
	return q.String() + "." + strings.TrimRight(frac, "0")
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Value stores amounts as decimal text so that every SQL backend keeps full precision.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

func (a *Amount) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case int64:
		if v < 0 {
			return ErrNegativeAmount
		}
		*a = Amount{v: big.NewInt(v)}
		return nil
	case nil:
		*a = Amount{}
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, src)
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
