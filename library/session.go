package library

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=session.go -destination=mocks/mock.go -package=mocks

// CatalogSource yields the items a catalog starts with.
type CatalogSource interface {
	LoadItems(ctx context.Context) ([]*Item, error)
}

// LoadCatalog builds a catalog from src, keeping the order src returns.
func LoadCatalog(ctx context.Context, src CatalogSource) (*Catalog, error) {
	items, err := src.LoadItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog")
	}
	return NewCatalog(items...), nil
}

// BorrowPolicy decides when a user may not borrow more physical items.
type BorrowPolicy struct {
	Limit int
}

func DefaultBorrowPolicy() BorrowPolicy { return BorrowPolicy{Limit: 3} }

// Exceeded reports whether count has reached the limit.
func (p BorrowPolicy) Exceeded(count int) bool {
	return count >= p.Limit
}

// Query selects a catalog view. Zero fields do not filter.
type Query struct {
	Kind   *Kind
	Genre  *Genre
	Author string
}

// Summary is the ledger state a front end shows next to the catalog.
type Summary struct {
	Borrowed    int
	Downloaded  int
	BorrowCount int
	OverLimit   bool
	Limit       int
}

// Session wraps one catalog and one user's ledger. It owns the counter
// protocol the ledger leaves to its caller.
type Session struct {
	catalog *Catalog
	ledger  *Ledger
	policy  BorrowPolicy
	log     *zap.Logger
}

func NewSession(catalog *Catalog, policy BorrowPolicy, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		catalog: catalog,
		ledger:  NewLedger(catalog, log),
		policy:  policy,
		log:     log.Named("session"),
	}
}

func (s *Session) Catalog() *Catalog    { return s.catalog }
func (s *Session) Ledger() *Ledger      { return s.ledger }
func (s *Session) Policy() BorrowPolicy { return s.policy }

// ------------------ Circulation ------------------

// Checkout downloads a digital item or borrows a physical one. Physical
// checkouts are refused with ErrBorrowLimit once the ledger is over limit.
func (s *Session) Checkout(item *Item) error {
	if item != nil && item.IsPhysical() && s.ledger.OverLimit() {
		s.log.Info("borrow limit reached",
			zap.String("title", item.Title),
			zap.Int("count", s.ledger.BorrowCount()),
			zap.Int("limit", s.policy.Limit))
		return errors.Wrapf(ErrBorrowLimit, "cannot borrow %s", item.FormattedTitle())
	}

	if err := s.ledger.Checkout(item); err != nil {
		s.log.Warn("checkout failed", zap.Error(err))
		return err
	}

	if item.IsPhysical() {
		s.ledger.IncrementBorrowCount()
		s.refreshOverLimit()
	}
	return nil
}

// Return gives a borrowed physical item back.
func (s *Session) Return(item *Item) error {
	if err := s.ledger.ReturnItem(item); err != nil {
		s.log.Warn("return failed", zap.Error(err))
		return err
	}
	s.ledger.DecrementBorrowCount()
	s.refreshOverLimit()
	return nil
}

func (s *Session) refreshOverLimit() {
	s.ledger.SetOverLimit(s.policy.Exceeded(s.ledger.BorrowCount()))
}

// ------------------ Search ------------------

// Find looks a title up ignoring case.
func (s *Session) Find(title string) (*Item, error) {
	item, ok := s.catalog.GetByTitle(title)
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "no item titled %q", title)
	}
	return item, nil
}

// Query maps q onto the matching catalog filter. Kind with both genre and
// author set filters by genre first, then by author.
func (s *Session) Query(q Query) *Catalog {
	switch {
	case q.Kind != nil && q.Genre != nil && q.Author != "":
		return s.catalog.FilterByKindAndGenre(*q.Kind, *q.Genre).FilterByKindAndAuthor(*q.Kind, q.Author)
	case q.Kind != nil && q.Genre != nil:
		return s.catalog.FilterByKindAndGenre(*q.Kind, *q.Genre)
	case q.Kind != nil && q.Author != "":
		return s.catalog.FilterByKindAndAuthor(*q.Kind, q.Author)
	case q.Kind != nil:
		return s.catalog.FilterByKind(*q.Kind)
	case q.Genre != nil && q.Author != "":
		return s.catalog.FilterByGenre(*q.Genre).FilterByAuthor(q.Author)
	case q.Genre != nil:
		return s.catalog.FilterByGenre(*q.Genre)
	case q.Author != "":
		return s.catalog.FilterByAuthor(q.Author)
	default:
		return NewCatalog(s.catalog.Items()...)
	}
}

func (s *Session) Summary() Summary {
	return Summary{
		Borrowed:    len(s.ledger.borrowed),
		Downloaded:  len(s.ledger.downloaded),
		BorrowCount: s.ledger.BorrowCount(),
		OverLimit:   s.ledger.OverLimit(),
		Limit:       s.policy.Limit,
	}
}
