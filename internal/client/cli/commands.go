package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carregistry/internal/currency"
)

func (a *App) Ping(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Server is online")
	return nil
}

// RegisterOwner lists the caller's car. The price is whole tokens per day.
func (a *App) RegisterOwner(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	available, err := GetYesNo(a.reader, "Is the car available?", a.out)
	if err != nil {
		return err
	}
	price, err := GetPrice(a.reader, "Enter daily price (tokens)", a.out)
	if err != nil {
		return err
	}
	deposit, err := GetTokens(a.reader, "Enter deposit (tokens)", a.out)
	if err != nil {
		return err
	}

	o, err := a.client.RegisterOwner(ctx, name, available, price, deposit)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registered owner")
	printOwner(a.out, o)
	return nil
}

func (a *App) RegisterRenter(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	deposit, err := GetTokens(a.reader, "Enter deposit (tokens)", a.out)
	if err != nil {
		return err
	}

	// the server always starts a renter without a car
	r, err := a.client.RegisterRenter(ctx, name, false, deposit)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registered renter")
	printRenter(a.out, r)
	return nil
}

// Rent pays the owner's price from the caller's account. The owner may be
// passed as the first argument; otherwise it is prompted for.
func (a *App) Rent(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var owner string
	if len(args) > 0 {
		owner = args[0]
	} else {
		var err error
		owner, err = getSimpleText(a.reader, "Enter owner account", a.out)
		if err != nil {
			return err
		}
	}

	deposit, err := GetTokens(a.reader, "Enter payment (tokens)", a.out)
	if err != nil {
		return err
	}

	resp, err := a.client.RentCar(ctx, owner, deposit)
	if err != nil {
		return err
	}

	paid := resp.Transfer.Amount
	if amt, err := currency.ParseAmount(paid); err == nil {
		paid = amt.Tokens()
	}
	fmt.Fprintf(a.out, "Rented car from %s, paid %s tokens\n", resp.Owner.Account, paid)
	return nil
}

func (a *App) Snapshot(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	resp, err := a.client.ExportSnapshot(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Snapshot %s exported (schema v%d, %d owners, %d renters)\n",
		resp.Key, resp.SchemaVersion, resp.Owners, resp.Renters)
	return nil
}
