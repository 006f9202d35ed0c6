package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/carregistry/internal/api"
	"github.com/dmitrijs2005/carregistry/internal/currency"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func printOwner(w io.Writer, o *api.Owner) {
	if o == nil {
		return
	}
	fmt.Fprintf(w, "%-24s %-20s price=%d available=%s\n", o.Account, o.Name, o.Price, yesNo(o.CarAvailable))
}

func printRenter(w io.Writer, r *api.Renter) {
	if r == nil {
		return
	}
	fmt.Fprintf(w, "%-24s %-20s rented=%s\n", r.Account, r.Name, yesNo(r.CarRented))
}

func printTransfer(w io.Writer, t *api.Transfer) {
	amount := t.Amount
	if amt, err := currency.ParseAmount(t.Amount); err == nil {
		amount = amt.Tokens()
	}
	fmt.Fprintf(w, "%s  %s -> %s  %s tokens\n", t.CreatedAt.Local().Format(time.DateTime), t.From, t.To, amount)
}

// accountArg picks the explicit account argument or falls back to the
// logged-in account.
func (a *App) accountArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if a.account == "" {
		return "", errors.New("account id required")
	}
	return a.account, nil
}

func (a *App) ShowOwner(ctx context.Context, args []string) error {
	account, err := a.accountArg(args)
	if err != nil {
		return err
	}
	o, err := a.client.GetOwner(ctx, account)
	if err != nil {
		return err
	}
	printOwner(a.out, o)
	return nil
}

func (a *App) ListOwners(ctx context.Context) error {
	owners, err := a.client.GetOwners(ctx)
	if err != nil {
		return err
	}
	if len(owners) == 0 {
		fmt.Fprintln(a.out, "No owners")
	}
	for _, o := range owners {
		printOwner(a.out, o)
	}
	return nil
}

func (a *App) ShowRenter(ctx context.Context, args []string) error {
	account, err := a.accountArg(args)
	if err != nil {
		return err
	}
	r, err := a.client.GetRenter(ctx, account)
	if err != nil {
		return err
	}
	printRenter(a.out, r)
	return nil
}

func (a *App) ListRenters(ctx context.Context) error {
	renters, err := a.client.GetRenters(ctx)
	if err != nil {
		return err
	}
	if len(renters) == 0 {
		fmt.Fprintln(a.out, "No renters")
	}
	for _, r := range renters {
		printRenter(a.out, r)
	}
	return nil
}

func (a *App) ListTransfers(ctx context.Context, args []string) error {
	account, err := a.accountArg(args)
	if err != nil {
		return err
	}
	transfers, err := a.client.GetTransfers(ctx, account)
	if err != nil {
		return err
	}
	if len(transfers) == 0 {
		fmt.Fprintln(a.out, "No transfers")
	}
	for _, t := range transfers {
		printTransfer(a.out, t)
	}
	return nil
}
