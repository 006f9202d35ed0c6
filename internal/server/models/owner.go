// Package models defines server-side records persisted in the ledger.
package models

// Owner is a party that offers exactly one car for rent.
// Price is kept in whole tokens and only converted to base units when a
// payment is checked.
type Owner struct {
	Account      string `json:"account"`
	Name         string `json:"name"`
	CarAvailable bool   `json:"car_available"`
	Price        uint32 `json:"price"`
}
