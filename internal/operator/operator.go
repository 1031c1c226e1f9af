package operator

import (
	"context"

	"github.com/carson-networks/expense-ledger/internal/ledger"
	"github.com/carson-networks/expense-ledger/internal/operator/actions"
)

// Operator is the worker that processes items from the queue. All ledger
// mutations funnel through here, so a transfer's debit and credit are never
// interleaved with another write.
type Operator struct {
	registry *ledger.Registry
	queue    chan ActionItem
}

func NewOperator(registry *ledger.Registry, queue chan ActionItem) *Operator {
	return &Operator{
		registry: registry,
		queue:    queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	err := item.action.Perform(item.ctx, o.registry)
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
