package storage

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/carregistry/internal/common"
	"github.com/dmitrijs2005/carregistry/internal/server/models"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/owners"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/renters"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/transfers"
)

type memState struct {
	owners    map[string]models.Owner
	renters   map[string]models.Renter
	transfers []models.Transfer
}

func (st *memState) clone() *memState {
	return &memState{
		owners:    maps.Clone(st.owners),
		renters:   maps.Clone(st.renters),
		transfers: slices.Clone(st.transfers),
	}
}

// access runs fn against some version of the state.
type access func(fn func(st *memState) error) error

// MemoryStore holds everything in process memory. One mutex covers the
// whole store; a transaction holds it until it finishes and works on a
// staged copy that replaces the live state only on success.
type MemoryStore struct {
	mu    sync.Mutex
	state *memState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: &memState{
		owners:  map[string]models.Owner{},
		renters: map[string]models.Renter{},
	}}
}

func (s *MemoryStore) live(fn func(st *memState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

func (s *MemoryStore) Owners() owners.Repository       { return &memOwners{with: s.live} }
func (s *MemoryStore) Renters() renters.Repository     { return &memRenters{with: s.live} }
func (s *MemoryStore) Transfers() transfers.Repository { return &memTransfers{with: s.live} }

func (s *MemoryStore) WithTx(ctx context.Context, fn func(ctx context.Context, l Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	staging := func(f func(st *memState) error) error { return f(staged) }

	if err := fn(ctx, &memLedger{with: staging}); err != nil {
		return err
	}
	s.state = staged
	return nil
}

func (s *MemoryStore) Close() error { return nil }

type memLedger struct {
	with access
}

func (l *memLedger) Owners() owners.Repository       { return &memOwners{with: l.with} }
func (l *memLedger) Renters() renters.Repository     { return &memRenters{with: l.with} }
func (l *memLedger) Transfers() transfers.Repository { return &memTransfers{with: l.with} }

type memOwners struct {
	with access
}

func (r *memOwners) Get(ctx context.Context, account string) (*models.Owner, error) {
	var out *models.Owner
	err := r.with(func(st *memState) error {
		o, ok := st.owners[account]
		if !ok {
			return common.ErrorNotFound
		}
		out = &o
		return nil
	})
	return out, err
}

func (r *memOwners) Set(ctx context.Context, o *models.Owner) error {
	return r.with(func(st *memState) error {
		if o.Price <= 1 {
			return fmt.Errorf("db error: owner %s: price must be greater than 1", o.Account)
		}
		st.owners[o.Account] = *o
		return nil
	})
}

func (r *memOwners) Contains(ctx context.Context, account string) (bool, error) {
	var ok bool
	err := r.with(func(st *memState) error {
		_, ok = st.owners[account]
		return nil
	})
	return ok, err
}

func (r *memOwners) Values(ctx context.Context) ([]*models.Owner, error) {
	var out []*models.Owner
	err := r.with(func(st *memState) error {
		for _, k := range slices.Sorted(maps.Keys(st.owners)) {
			o := st.owners[k]
			out = append(out, &o)
		}
		return nil
	})
	return out, err
}

type memRenters struct {
	with access
}

func (r *memRenters) Get(ctx context.Context, account string) (*models.Renter, error) {
	var out *models.Renter
	err := r.with(func(st *memState) error {
		rn, ok := st.renters[account]
		if !ok {
			return common.ErrorNotFound
		}
		out = &rn
		return nil
	})
	return out, err
}

func (r *memRenters) Set(ctx context.Context, rn *models.Renter) error {
	return r.with(func(st *memState) error {
		st.renters[rn.Account] = *rn
		return nil
	})
}

func (r *memRenters) Contains(ctx context.Context, account string) (bool, error) {
	var ok bool
	err := r.with(func(st *memState) error {
		_, ok = st.renters[account]
		return nil
	})
	return ok, err
}

func (r *memRenters) Values(ctx context.Context) ([]*models.Renter, error) {
	var out []*models.Renter
	err := r.with(func(st *memState) error {
		for _, k := range slices.Sorted(maps.Keys(st.renters)) {
			rn := st.renters[k]
			out = append(out, &rn)
		}
		return nil
	})
	return out, err
}

type memTransfers struct {
	with access
}

func (r *memTransfers) Create(ctx context.Context, t *models.Transfer) error {
	return r.with(func(st *memState) error {
		for _, existing := range st.transfers {
			if existing.ID == t.ID {
				return fmt.Errorf("db error: duplicate transfer id %s", t.ID)
			}
		}
		st.transfers = append(st.transfers, *t)
		return nil
	})
}

func (r *memTransfers) ListByAccount(ctx context.Context, account string) ([]*models.Transfer, error) {
	var out []*models.Transfer
	err := r.with(func(st *memState) error {
		for _, t := range st.transfers {
			if t.To == account || t.From == account {
				out = append(out, &t)
			}
		}
		return nil
	})
	slices.SortStableFunc(out, func(a, b *models.Transfer) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, err
}
