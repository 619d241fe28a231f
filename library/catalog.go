package library

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Catalog is an ordered collection of items. Insertion order is kept until a
// sort is applied. Filters return new catalogs and leave the receiver alone.
type Catalog struct {
	items []*Item
}

func NewCatalog(items ...*Item) *Catalog {
	c := &Catalog{items: make([]*Item, 0, len(items))}
	c.items = append(c.items, items...)
	return c
}

// AddItem appends without any duplicate check.
func (c *Catalog) AddItem(item *Item) {
	c.items = append(c.items, item)
}

func (c *Catalog) Len() int { return len(c.items) }

// Items returns the current contents in order. The slice is a copy; the items
// are shared.
func (c *Catalog) Items() []*Item {
	return slices.Clone(c.items)
}

func (c *Catalog) GetByIndex(i int) (*Item, error) {
	if i < 0 || i >= len(c.items) {
		return nil, errors.Wrapf(ErrNotFound, "index %d not in range [0,%d)", i, len(c.items))
	}
	return c.items[i], nil
}

// GetByTitle returns the first item whose title matches ignoring case.
func (c *Catalog) GetByTitle(title string) (*Item, bool) {
	want := strings.ToLower(title)
	for _, it := range c.items {
		if strings.ToLower(it.Title) == want {
			return it, true
		}
	}
	return nil, false
}

// HasItem tests membership by identity.
func (c *Catalog) HasItem(item *Item) bool {
	if item == nil {
		return false
	}
	return slices.Contains(c.items, item)
}

// ------------------ Filters ------------------

func (c *Catalog) filter(keep func(*Item) bool) *Catalog {
	out := &Catalog{}
	for _, it := range c.items {
		if keep(it) {
			out.items = append(out.items, it)
		}
	}
	return out
}

// FilterByKind keeps one variant and sorts the result by title.
func (c *Catalog) FilterByKind(kind Kind) *Catalog {
	out := c.filter(func(it *Item) bool { return it.Kind == kind })
	out.SortByTitle()
	return out
}

// FilterByKindAndGenre sorts the result by title.
func (c *Catalog) FilterByKindAndGenre(kind Kind, genre Genre) *Catalog {
	out := c.filter(func(it *Item) bool { return it.Kind == kind && it.Genre == genre })
	out.SortByTitle()
	return out
}

// FilterByKindAndAuthor matches the author exactly and sorts by author, not
// title.
func (c *Catalog) FilterByKindAndAuthor(kind Kind, author string) *Catalog {
	out := c.filter(func(it *Item) bool { return it.Kind == kind && it.Author == author })
	out.SortByAuthor()
	return out
}

// FilterByGenre keeps source order.
func (c *Catalog) FilterByGenre(genre Genre) *Catalog {
	return c.filter(func(it *Item) bool { return it.Genre == genre })
}

// FilterByAuthor matches the author exactly and sorts by title.
func (c *Catalog) FilterByAuthor(author string) *Catalog {
	out := c.filter(func(it *Item) bool { return it.Author == author })
	out.SortByTitle()
	return out
}

// ------------------ Sorting ------------------

func byTitle(a, b *Item) int {
	return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
}

func byAuthor(a, b *Item) int {
	return strings.Compare(a.Author, b.Author)
}

// SortByTitle sorts in place on the lower-cased title. Equal titles keep
// their relative order.
func (c *Catalog) SortByTitle() {
	slices.SortStableFunc(c.items, byTitle)
}

// SortByAuthor sorts in place on the author as written.
func (c *Catalog) SortByAuthor() {
	slices.SortStableFunc(c.items, byAuthor)
}

func (c *Catalog) String() string {
	var sb strings.Builder
	for i, it := range c.items {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, it.FormattedTitle())
	}
	return sb.String()
}
