package api

import "time"

// Amounts are decimal strings of base units.

type Owner struct {
	Account      string `json:"account"`
	Name         string `json:"name"`
	CarAvailable bool   `json:"car_available"`
	Price        uint32 `json:"price"`
}

type Renter struct {
	Account   string `json:"account"`
	Name      string `json:"name"`
	CarRented bool   `json:"car_rented"`
}

type Transfer struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type RegisterOwnerRequest struct {
	Name         string `json:"name"`
	CarAvailable bool   `json:"car_available"`
	Price        uint32 `json:"price"`
	Deposit      string `json:"deposit"`
}

type RegisterOwnerResponse struct {
	Owner *Owner `json:"owner"`
}

type RegisterRenterRequest struct {
	Name      string `json:"name"`
	CarRented bool   `json:"car_rented"`
	Deposit   string `json:"deposit"`
}

type RegisterRenterResponse struct {
	Renter *Renter `json:"renter"`
}

type RentCarRequest struct {
	OwnerAccount string `json:"owner_account"`
	Deposit      string `json:"deposit"`
}

type RentCarResponse struct {
	Owner    *Owner    `json:"owner"`
	Renter   *Renter   `json:"renter"`
	Transfer *Transfer `json:"transfer"`
}

type GetOwnerRequest struct {
	Account string `json:"account"`
}

type GetOwnerResponse struct {
	Owner *Owner `json:"owner"`
}

type GetOwnersRequest struct{}

type GetOwnersResponse struct {
	Owners []*Owner `json:"owners"`
}

type GetRenterRequest struct {
	Account string `json:"account"`
}

type GetRenterResponse struct {
	Renter *Renter `json:"renter"`
}

type GetRentersRequest struct{}

type GetRentersResponse struct {
	Renters []*Renter `json:"renters"`
}

type GetTransfersRequest struct {
	Account string `json:"account"`
}

type GetTransfersResponse struct {
	Transfers []*Transfer `json:"transfers"`
}

type ExportSnapshotRequest struct{}

type ExportSnapshotResponse struct {
	Key           string `json:"key"`
	SchemaVersion int32  `json:"schema_version"`
	Owners        int64  `json:"owners"`
	Renters       int64  `json:"renters"`
}
