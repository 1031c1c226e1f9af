package actions

import (
	"context"

	"github.com/carson-networks/expense-ledger/internal/ledger"
)

type CreateCategory struct {
	Name string

	// StoredName is set on success to the name as the registry stored it,
	// with the first letter of each word capitalized.
	StoredName string

	IAction
}

func (c *CreateCategory) Perform(ctx context.Context, registry *ledger.Registry) error {
	stored, err := registry.Create(c.Name)
	if err != nil {
		return err
	}

	c.StoredName = stored
	return nil
}
