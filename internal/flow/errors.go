package flow

import "errors"

var (
	// ErrUnknownActivity indicates the activity tag has no rule.
	ErrUnknownActivity = errors.New("flow: unknown activity")
	// ErrInvalidAmount indicates an amount outside (0, MaxAmount].
	ErrInvalidAmount = errors.New("flow: amount must be positive and at most MaxAmount")
	// ErrTransactionNotFound indicates no logged transaction carries the timestamp.
	ErrTransactionNotFound = errors.New("flow: transaction not found")
	// ErrSnapshotNotFound is returned by repositories when nothing was persisted yet.
	ErrSnapshotNotFound = errors.New("flow: snapshot not found")
	// ErrMachineBusy rejects events sent while another is being processed.
	ErrMachineBusy = errors.New("flow: machine busy")
)
