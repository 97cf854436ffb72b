// Package cli implements the flowctl commands against a snapshot repository.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/odyssey-erp/finflow/internal/flow"
)

// FlowCLI applies events directly to the configured repository. Unlike
// flow.Service it reports save failures to the caller.
type FlowCLI struct {
	repo flow.Repository
}

// NewFlowCLI constructs the helper around repo.
func NewFlowCLI(repo flow.Repository) (*FlowCLI, error) {
	if repo == nil {
		return nil, errors.New("flow cli: repository required")
	}
	return &FlowCLI{repo: repo}, nil
}

// Load returns the stored snapshot, or the initial one when nothing is stored.
func (c *FlowCLI) Load(ctx context.Context) (flow.Snapshot, error) {
	snap, err := c.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, flow.ErrSnapshotNotFound) {
			return flow.Initial(), nil
		}
		return flow.Snapshot{}, fmt.Errorf("flow cli: load: %w", err)
	}
	return snap, nil
}

// Submit records a transaction.
func (c *FlowCLI) Submit(ctx context.Context, tag string, amount float64) (flow.Snapshot, error) {
	activity, ok := flow.ParseActivity(tag)
	if !ok {
		return flow.Snapshot{}, fmt.Errorf("%w: %s", flow.ErrUnknownActivity, tag)
	}
	value, err := flow.ParseMoney(amount)
	if err != nil || !flow.ValidAmount(value) {
		return flow.Snapshot{}, flow.ErrInvalidAmount
	}
	return c.apply(ctx, func(flow.Snapshot) (flow.Event, error) {
		return flow.SubmitEvent{Activity: activity, Amount: value}, nil
	})
}

// Remove deletes the transaction with timestamp.
func (c *FlowCLI) Remove(ctx context.Context, timestamp string) (flow.Snapshot, error) {
	return c.apply(ctx, func(current flow.Snapshot) (flow.Event, error) {
		idx := current.FindTransaction(timestamp)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", flow.ErrTransactionNotFound, timestamp)
		}
		return flow.RemoveEvent{Transaction: current.Transactions[idx]}, nil
	})
}

// Undo restores the last removed transaction. An empty slot changes nothing.
func (c *FlowCLI) Undo(ctx context.Context) (flow.Snapshot, error) {
	return c.apply(ctx, func(current flow.Snapshot) (flow.Event, error) {
		if !current.CanUndo() {
			return nil, nil
		}
		return flow.UndoEvent{}, nil
	})
}

// Reset discards balances and history.
func (c *FlowCLI) Reset(ctx context.Context) (flow.Snapshot, error) {
	return c.apply(ctx, func(flow.Snapshot) (flow.Event, error) {
		return flow.ResetEvent{}, nil
	})
}

func (c *FlowCLI) apply(ctx context.Context, build func(flow.Snapshot) (flow.Event, error)) (flow.Snapshot, error) {
	current, err := c.Load(ctx)
	if err != nil {
		return flow.Snapshot{}, err
	}
	ev, err := build(current)
	if err != nil {
		return current, err
	}
	if ev == nil {
		return current, nil
	}
	next, err := flow.NewMachine(current).Send(ev)
	if err != nil {
		return current, err
	}
	if err := c.repo.Save(ctx, next); err != nil {
		return current, fmt.Errorf("flow cli: save: %w", err)
	}
	return next, nil
}
