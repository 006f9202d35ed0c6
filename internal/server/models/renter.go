package models

// Renter is a party allowed to rent cars. CarRented is true once the renter
// has rented a car; nothing records which one.
type Renter struct {
	Account   string `json:"account"`
	Name      string `json:"name"`
	CarRented bool   `json:"car_rented"`
}
