package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/dmitrijs2005/carregistry/internal/currency"
	"github.com/dmitrijs2005/carregistry/internal/server/storage"
)

type rentalTestContext struct {
	svc *RentalService
	err error
}

func (c *rentalTestContext) reset() {
	c.svc = NewRentalService(storage.NewMemoryStore(), newRecLogger())
	c.err = nil
}

func (c *rentalTestContext) registersAsOwner(account, name string, price, deposit int) error {
	_, c.err = c.svc.RegisterOwner(context.Background(), call(account, uint64(deposit)), name, true, uint32(price))
	return nil
}

func (c *rentalTestContext) registersAsRenter(account, name string, deposit int) error {
	_, c.err = c.svc.RegisterRenter(context.Background(), call(account, uint64(deposit)), name, false)
	return nil
}

func (c *rentalTestContext) rentsTheCarOf(renter, owner string, deposit int) error {
	_, c.err = c.svc.RentCar(context.Background(), call(renter, uint64(deposit)), owner)
	return nil
}

func (c *rentalTestContext) theOperationSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success but got error: %v", c.err)
	}
	return nil
}

func (c *rentalTestContext) theOperationFailsWith(msg string) error {
	if c.err == nil {
		return errors.New("expected operation to fail but it succeeded")
	}
	if c.err.Error() != msg {
		return fmt.Errorf("expected error %q, got %q", msg, c.err.Error())
	}
	return nil
}

func (c *rentalTestContext) carAvailability(want bool) func(string) error {
	return func(account string) error {
		o, err := c.svc.GetOwner(context.Background(), account)
		if err != nil {
			return err
		}
		if o.CarAvailable != want {
			return fmt.Errorf("expected car_available %v, got %v", want, o.CarAvailable)
		}
		return nil
	}
}

func (c *rentalTestContext) carRented(want bool) func(string) error {
	return func(account string) error {
		r, err := c.svc.GetRenter(context.Background(), account)
		if err != nil {
			return err
		}
		if r.CarRented != want {
			return fmt.Errorf("expected car_rented %v, got %v", want, r.CarRented)
		}
		return nil
	}
}

func (c *rentalTestContext) hasReceived(account string, tokens int) error {
	ts, err := c.svc.GetTransfers(context.Background(), account)
	if err != nil {
		return err
	}
	total := currency.Zero()
	for _, t := range ts {
		if t.To == account {
			total = total.Add(t.Amount)
		}
	}
	want := currency.FromTokens(uint64(tokens))
	if !total.Equal(want) {
		return fmt.Errorf("expected %s base units received, got %s", want, total)
	}
	return nil
}

func InitializeRentalScenario(ctx *godog.ScenarioContext) {
	tc := &rentalTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^"([^"]*)" registers as an owner named "([^"]*)" with a car priced at (\d+) tokens?, depositing (\d+) tokens?$`, tc.registersAsOwner)
	ctx.Step(`^"([^"]*)" registers as a renter named "([^"]*)", depositing (\d+) tokens?$`, tc.registersAsRenter)
	ctx.Step(`^"([^"]*)" rents the car of "([^"]*)" depositing (\d+) tokens?$`, tc.rentsTheCarOf)

	ctx.Step(`^the operation succeeds$`, tc.theOperationSucceeds)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
	ctx.Step(`^the car of "([^"]*)" is available$`, tc.carAvailability(true))
	ctx.Step(`^the car of "([^"]*)" is not available$`, tc.carAvailability(false))
	ctx.Step(`^"([^"]*)" has a car rented$`, tc.carRented(true))
	ctx.Step(`^"([^"]*)" has no car rented$`, tc.carRented(false))
	ctx.Step(`^"([^"]*)" has received (\d+) tokens?$`, tc.hasReceived)
}

func TestRentalFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeRentalScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/rental.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
