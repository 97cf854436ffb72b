package flow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	stored  *Snapshot
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeRepo) Load(ctx context.Context) (Snapshot, error) {
	if f.loadErr != nil {
		return Snapshot{}, f.loadErr
	}
	if f.stored == nil {
		return Snapshot{}, ErrSnapshotNotFound
	}
	return f.stored.Clone(), nil
}

func (f *fakeRepo) Save(ctx context.Context, s Snapshot) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	clone := s.Clone()
	f.stored = &clone
	return nil
}

type fakeEnqueuer struct {
	payloads  [][]byte
	revisions []int64
	err       error
}

func (f *fakeEnqueuer) EnqueueSnapshotPersist(ctx context.Context, payload []byte, revision int64) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	f.revisions = append(f.revisions, revision)
	return nil
}

type fakeRecorder struct {
	transitions []EventKind
	failures    []PersistMode
}

func (f *fakeRecorder) ObserveTransition(event EventKind, activity Activity) {
	f.transitions = append(f.transitions, event)
}

func (f *fakeRecorder) ObservePersistFailure(mode PersistMode) {
	f.failures = append(f.failures, mode)
}

func newTestService(t *testing.T, opts ServiceOptions) *Service {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Clock == nil {
		tick := fixedNow
		opts.Clock = func() time.Time {
			tick = tick.Add(time.Millisecond)
			return tick
		}
	}
	return NewService(context.Background(), opts)
}

func TestServiceSubmitPersistsSync(t *testing.T) {
	repo := &fakeRepo{}
	rec := &fakeRecorder{}
	svc := newTestService(t, ServiceOptions{Repository: repo, Recorder: rec})

	snap, err := svc.Submit(context.Background(), RetailSales, FromFloat(100))
	require.NoError(t, err)
	assert.Equal(t, FromFloat(100), snap.Balance(CheckingAccounts))
	require.NotNil(t, repo.stored)
	assert.Equal(t, snap, *repo.stored)
	assert.Equal(t, []EventKind{EventSubmit}, rec.transitions)
}

func TestServiceSubmitValidatesInput(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, ServiceOptions{Repository: repo})

	_, err := svc.Submit(context.Background(), "NOT_A_TAG", FromFloat(10))
	assert.ErrorIs(t, err, ErrUnknownActivity)

	_, err = svc.Submit(context.Background(), RetailSales, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Submit(context.Background(), RetailSales, FromFloat(-1))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Submit(context.Background(), RetailSales, FromFloat(1e15))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Zero(t, repo.saves)
	assert.Empty(t, svc.Snapshot().Transactions)
}

func TestServiceRestoresPersistedSnapshot(t *testing.T) {
	repo := &fakeRepo{}
	first := newTestService(t, ServiceOptions{Repository: repo})
	_, err := first.Submit(context.Background(), OnlineSales, FromFloat(100))
	require.NoError(t, err)

	second := newTestService(t, ServiceOptions{Repository: repo})
	assert.Equal(t, first.Snapshot(), second.Snapshot())
}

func TestServiceRestoreFallsBackToInitial(t *testing.T) {
	repo := &fakeRepo{loadErr: errors.New("boom")}
	svc := newTestService(t, ServiceOptions{Repository: repo})
	assert.Equal(t, Initial(), svc.Snapshot())
}

func TestServiceRemoveUndoReset(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, ServiceOptions{Repository: repo})
	ctx := context.Background()

	snap, err := svc.Submit(ctx, WagesExpense, FromFloat(50))
	require.NoError(t, err)
	ts := snap.Transactions[0].Timestamp

	_, err = svc.Remove(ctx, "missing")
	assert.ErrorIs(t, err, ErrTransactionNotFound)

	snap, err = svc.Remove(ctx, ts)
	require.NoError(t, err)
	assert.Empty(t, snap.Transactions)
	assert.True(t, svc.CanUndo())

	snap, err = svc.Undo(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, FromFloat(-50), snap.Balance(CheckingAccounts))
	assert.False(t, svc.CanUndo())

	again, err := svc.Undo(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, again)

	snap, err = svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, Initial(), snap)
	assert.Equal(t, Initial(), *repo.stored)
}

func TestServiceSaveFailureKeepsMemoryState(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("redis down")}
	rec := &fakeRecorder{}
	svc := newTestService(t, ServiceOptions{Repository: repo, Recorder: rec})

	snap, err := svc.Submit(context.Background(), RetailSales, FromFloat(10))
	require.NoError(t, err)
	assert.Len(t, snap.Transactions, 1)
	assert.Equal(t, []PersistMode{PersistSync}, rec.failures)
}

func TestServiceAsyncEnqueuesRevisions(t *testing.T) {
	repo := &fakeRepo{}
	enq := &fakeEnqueuer{}
	svc := newTestService(t, ServiceOptions{Repository: repo, Enqueuer: enq, Mode: PersistAsync})
	ctx := context.Background()

	_, err := svc.Submit(ctx, RetailSales, FromFloat(10))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, OfficeRent, FromFloat(3))
	require.NoError(t, err)

	assert.Zero(t, repo.saves)
	require.Len(t, enq.payloads, 2)
	assert.Greater(t, enq.revisions[1], enq.revisions[0])

	decoded, err := Decode(enq.payloads[1])
	require.NoError(t, err)
	assert.Equal(t, svc.Snapshot(), decoded)
}

func TestServiceAsyncEnqueueFailureIsSwallowed(t *testing.T) {
	rec := &fakeRecorder{}
	svc := newTestService(t, ServiceOptions{Enqueuer: &fakeEnqueuer{err: errors.New("queue full")}, Mode: PersistAsync, Recorder: rec})

	_, err := svc.Submit(context.Background(), RetailSales, FromFloat(10))
	require.NoError(t, err)
	assert.Equal(t, []PersistMode{PersistAsync}, rec.failures)
}

func TestNextRevisionIsMonotonic(t *testing.T) {
	svc := newTestService(t, ServiceOptions{Clock: func() time.Time { return fixedNow }})
	a := svc.nextRevision()
	b := svc.nextRevision()
	assert.Equal(t, fixedNow.UnixNano(), a)
	assert.Equal(t, a+1, b)
}

func TestServiceCurrentTracksVersion(t *testing.T) {
	svc := newTestService(t, ServiceOptions{})
	snap, version := svc.Current()
	assert.Empty(t, snap.Transactions)
	assert.Equal(t, uint64(0), version)

	_, err := svc.Submit(context.Background(), RetailSales, FromFloat(10))
	require.NoError(t, err)
	snap, version = svc.Current()
	assert.Len(t, snap.Transactions, 1)
	assert.Equal(t, uint64(1), version)
	assert.Equal(t, version, svc.Version())
}

func TestServiceSubmitLargestAmountKeepsSign(t *testing.T) {
	svc := newTestService(t, ServiceOptions{})

	snap, err := svc.Submit(context.Background(), OnlineSales, MaxAmount)
	require.NoError(t, err)
	assert.Equal(t, FromFloat(7e11), snap.Balance(CheckingAccounts))
	assert.Equal(t, FromFloat(3e11), snap.Balance(AccountsReceivable))
	assert.Equal(t, MaxAmount, snap.Balance(OnlineSalesRevenue))
}
