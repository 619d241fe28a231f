package library

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLedger(t *testing.T, items ...*Item) *Ledger {
	t.Helper()
	return NewLedger(NewCatalog(items...), zap.NewNop())
}

func TestBorrowDownloadReturnScenario(t *testing.T) {
	wizards := NewPhysicalItem("Wizards of the North", "J.K. Rowling", Fantasy, 380, Hardcover, StatusAvailable)
	blade := NewDigitalItem("Blade of the Dawn", "Brandon Sanderson", Fantasy, 560, PDF, StatusDownloadable)
	l := newTestLedger(t, wizards, blade)

	require.NoError(t, l.Checkout(wizards))
	assert.False(t, wizards.Available())
	assert.Equal(t, StatusUnavailable, wizards.Status())
	assert.Equal(t, []*Item{wizards}, l.Borrowed())

	require.NoError(t, l.Checkout(blade))
	assert.Equal(t, []*Item{blade}, l.Downloaded())
	assert.Equal(t, StatusDownloadable, blade.Status())

	require.NoError(t, l.ReturnItem(wizards))
	assert.True(t, wizards.Available())
	assert.Equal(t, StatusAvailable, wizards.Status())
	assert.Empty(t, l.Borrowed())
}

func TestCheckoutUnknownItem(t *testing.T) {
	outside := NewPhysicalItem("Elsewhere", "A", Fiction, 1, Paperback, StatusAvailable)
	l := newTestLedger(t)

	err := l.Checkout(outside)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, outside.Available())
	assert.Empty(t, l.Borrowed())

	assert.True(t, errors.Is(l.Checkout(nil), ErrNotFound))
}

func TestCheckoutIneligible(t *testing.T) {
	shelved := NewPhysicalItem("Gone", "A", Fiction, 1, Paperback, StatusUnavailable)
	locked := NewDigitalItem("Locked", "A", Fiction, 1, PDF, StatusUndownloadable)
	l := newTestLedger(t, shelved, locked)

	assert.True(t, errors.Is(l.Checkout(shelved), ErrInvalidTransition))
	assert.True(t, errors.Is(l.Checkout(locked), ErrInvalidTransition))
	assert.Empty(t, l.Borrowed())
	assert.Empty(t, l.Downloaded())
	assert.Equal(t, StatusUnavailable, shelved.Status())
}

func TestCheckoutUsesConstructionTimeDownloadFlag(t *testing.T) {
	it := NewDigitalItem("Flip", "A", Fiction, 1, PDF, StatusUndownloadable)
	l := newTestLedger(t, it)

	it.SetStatus(StatusDownloadable)
	assert.True(t, errors.Is(l.Checkout(it), ErrInvalidTransition))
}

func TestBorrowedHasNoDuplicates(t *testing.T) {
	it := NewPhysicalItem("Single", "A", Fiction, 1, Paperback, StatusAvailable)
	l := newTestLedger(t, it)

	require.NoError(t, l.Checkout(it))
	assert.True(t, errors.Is(l.Checkout(it), ErrInvalidTransition))
	assert.Len(t, l.Borrowed(), 1)
}

func TestDownloadTwiceIsRecordedTwice(t *testing.T) {
	it := NewDigitalItem("Again", "A", Fiction, 1, EPUB, StatusDownloadable)
	l := newTestLedger(t, it)

	require.NoError(t, l.Checkout(it))
	require.NoError(t, l.Checkout(it))
	assert.Equal(t, []*Item{it, it}, l.Downloaded())
}

func TestReturnRejected(t *testing.T) {
	borrowedElsewhere := NewPhysicalItem("Theirs", "A", Fiction, 1, Paperback, StatusAvailable)
	download := NewDigitalItem("Mine Forever", "A", Fiction, 1, EPUB, StatusDownloadable)
	catalog := NewCatalog(borrowedElsewhere, download)
	mine := NewLedger(catalog, zap.NewNop())
	theirs := NewLedger(catalog, zap.NewNop())

	require.NoError(t, theirs.Checkout(borrowedElsewhere))
	require.NoError(t, mine.Checkout(download))

	assert.True(t, errors.Is(mine.ReturnItem(borrowedElsewhere), ErrInvalidTransition))
	assert.False(t, borrowedElsewhere.Available())
	assert.Len(t, theirs.Borrowed(), 1)

	assert.True(t, errors.Is(mine.ReturnItem(download), ErrInvalidTransition))
	assert.Len(t, mine.Downloaded(), 1)

	assert.True(t, errors.Is(mine.ReturnItem(nil), ErrInvalidTransition))
}

func TestBorrowCountIsIndependent(t *testing.T) {
	a := NewPhysicalItem("A", "X", Fiction, 1, Paperback, StatusAvailable)
	b := NewPhysicalItem("B", "X", Fiction, 1, Paperback, StatusAvailable)
	c := NewPhysicalItem("C", "X", Fiction, 1, Paperback, StatusAvailable)
	l := newTestLedger(t, a, b, c)

	for _, it := range []*Item{a, b, c} {
		require.NoError(t, l.Checkout(it))
	}
	assert.Len(t, l.Borrowed(), 3)
	assert.Equal(t, 0, l.BorrowCount())
	assert.False(t, l.OverLimit())

	l.IncrementBorrowCount()
	l.IncrementBorrowCount()
	assert.Equal(t, 2, l.BorrowCount())

	require.NoError(t, l.ReturnItem(a))
	assert.Equal(t, 2, l.BorrowCount())

	l.DecrementBorrowCount()
	l.SetBorrowCount(7)
	assert.Equal(t, 7, l.BorrowCount())

	l.SetOverLimit(true)
	assert.True(t, l.OverLimit())
}

func TestIndexedViews(t *testing.T) {
	p := NewPhysicalItem("P", "X", Fiction, 1, Paperback, StatusAvailable)
	d := NewDigitalItem("D", "X", Fiction, 1, TXT, StatusDownloadable)
	l := newTestLedger(t, p, d)
	require.NoError(t, l.Checkout(d))
	require.NoError(t, l.Checkout(p))

	got, err := l.BorrowedItem(0)
	require.NoError(t, err)
	assert.Same(t, p, got)

	got, err = l.DownloadedItem(0)
	require.NoError(t, err)
	assert.Same(t, d, got)

	_, err = l.BorrowedItem(1)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = l.DownloadedItem(-1)
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.Equal(t, []*Item{p, d}, l.UserItems())
	assert.Equal(t, []*Item{p, d}, l.UserItems())
}

func TestViewsAreCopies(t *testing.T) {
	p := NewPhysicalItem("P", "X", Fiction, 1, Paperback, StatusAvailable)
	l := newTestLedger(t, p)
	require.NoError(t, l.Checkout(p))

	view := l.Borrowed()
	view[0] = nil
	assert.Same(t, p, l.Borrowed()[0])
}
