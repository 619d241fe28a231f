package library

import (
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Ledger records what one user has borrowed and downloaded during a session.
//
// The borrow counter and the over-limit flag are stored, not derived:
// Checkout and ReturnItem never touch them. Whoever drives the ledger pairs
// every successful physical checkout with IncrementBorrowCount and every
// successful return with DecrementBorrowCount (see Session).
type Ledger struct {
	catalog *Catalog
	log     *zap.Logger

	borrowed   []*Item
	downloaded []*Item

	borrowCount int
	overLimit   bool
}

// NewLedger creates an empty ledger. Membership checks run against catalog.
func NewLedger(catalog *Catalog, log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{
		catalog: catalog,
		log:     log.Named("ledger"),
	}
}

func (l *Ledger) Catalog() *Catalog { return l.catalog }

// Checkout borrows a physical item or downloads a digital one.
//
// Items outside the catalog yield ErrNotFound. A physical item that is not on
// the shelf, or a digital item that was not downloadable when created, yields
// ErrInvalidTransition. Nothing changes on failure.
//
// Downloading the same item twice records it twice.
func (l *Ledger) Checkout(item *Item) error {
	if item == nil || !l.catalog.HasItem(item) {
		l.log.Debug("checkout of unknown item")
		return errors.Wrap(ErrNotFound, "item does not exist")
	}

	switch item.Kind {
	case KindDigital:
		if !item.CanDownload() {
			break
		}
		l.downloaded = append(l.downloaded, item)
		l.log.Debug("downloaded", zap.String("title", item.Title))
		return nil
	case KindPhysical:
		if !item.borrow() {
			break
		}
		l.borrowed = append(l.borrowed, item)
		l.log.Debug("borrowed", zap.String("title", item.Title))
		return nil
	}

	l.log.Debug("checkout refused", zap.String("title", item.Title), zap.Stringer("status", item.Status()))
	return errors.Wrapf(ErrInvalidTransition, "%s is not eligible for checkout", item.FormattedTitle())
}

// ReturnItem puts a borrowed physical item back on the shelf. Downloads are
// permanent, so digital items are always rejected.
func (l *Ledger) ReturnItem(item *Item) error {
	idx := -1
	if item != nil {
		idx = slices.Index(l.borrowed, item)
	}
	if idx < 0 {
		title := "item"
		if item != nil {
			title = item.FormattedTitle()
		}
		l.log.Debug("return refused", zap.String("title", title))
		return errors.Wrapf(ErrInvalidTransition, "%s is not borrowed by this user", title)
	}

	l.borrowed = slices.Delete(l.borrowed, idx, idx+1)
	item.release()
	l.log.Debug("returned", zap.String("title", item.Title))
	return nil
}

// ------------------ Views ------------------

func (l *Ledger) Borrowed() []*Item   { return slices.Clone(l.borrowed) }
func (l *Ledger) Downloaded() []*Item { return slices.Clone(l.downloaded) }

func (l *Ledger) BorrowedItem(i int) (*Item, error) {
	if i < 0 || i >= len(l.borrowed) {
		return nil, errors.Wrapf(ErrNotFound, "borrowed index %d", i)
	}
	return l.borrowed[i], nil
}

func (l *Ledger) DownloadedItem(i int) (*Item, error) {
	if i < 0 || i >= len(l.downloaded) {
		return nil, errors.Wrapf(ErrNotFound, "downloaded index %d", i)
	}
	return l.downloaded[i], nil
}

// UserItems lists borrowed items followed by downloads.
func (l *Ledger) UserItems() []*Item {
	out := make([]*Item, 0, len(l.borrowed)+len(l.downloaded))
	out = append(out, l.borrowed...)
	return append(out, l.downloaded...)
}

// ------------------ Counters ------------------

func (l *Ledger) BorrowCount() int       { return l.borrowCount }
func (l *Ledger) SetBorrowCount(n int)   { l.borrowCount = n }
func (l *Ledger) IncrementBorrowCount()  { l.borrowCount++ }
func (l *Ledger) DecrementBorrowCount()  { l.borrowCount-- }
func (l *Ledger) OverLimit() bool        { return l.overLimit }
func (l *Ledger) SetOverLimit(over bool) { l.overLimit = over }
