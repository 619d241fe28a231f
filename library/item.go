package library

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Genre classifies an item for filtering.
type Genre int

const (
	Fiction Genre = iota
	NonFiction
	Mystery
	Fantasy
	ScienceFiction
	Romance
	Poetry
)

var genreNames = [...]string{"FICTION", "NON_FICTION", "MYSTERY", "FANTASY", "SCIENCE_FICTION", "ROMANCE", "POETRY"}

// Genres lists every genre in declaration order.
func Genres() []Genre {
	return []Genre{Fiction, NonFiction, Mystery, Fantasy, ScienceFiction, Romance, Poetry}
}

func (g Genre) String() string {
	if g < 0 || int(g) >= len(genreNames) {
		return fmt.Sprintf("Genre(%d)", int(g))
	}
	return genreNames[g]
}

// ParseGenre accepts "science fiction", "Science-Fiction" and "SCIENCE_FICTION" alike.
func ParseGenre(s string) (Genre, error) {
	i, ok := lookupName(genreNames[:], s)
	if !ok {
		return 0, errors.Errorf("unknown genre %q", s)
	}
	return Genre(i), nil
}

// Status is the lending state of an item as shown to users.
type Status int

const (
	StatusAvailable Status = iota
	StatusUnavailable
	StatusDownloadable
	StatusUndownloadable
)

var (
	statusNames  = [...]string{"AVAILABLE", "UNAVAILABLE", "DOWNLOADABLE", "UNDOWNLOADABLE"}
	statusLabels = [...]string{"Available", "Unavailable", "Downloadable", "Undownloadable"}
)

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusLabels) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusLabels[s]
}

// Name returns the upper-case identifier used in storage.
func (s Status) Name() string {
	if s < 0 || int(s) >= len(statusNames) {
		return ""
	}
	return statusNames[s]
}

func ParseStatus(s string) (Status, error) {
	i, ok := lookupName(statusNames[:], s)
	if !ok {
		return 0, errors.Errorf("unknown status %q", s)
	}
	return Status(i), nil
}

// CoverType is the binding of a physical item.
type CoverType int

const (
	Hardcover CoverType = iota
	Paperback
	SpiralBound
	LeatherBound
	Magazine
	GraphicNovel
)

var coverNames = [...]string{"HARDCOVER", "PAPERBACK", "SPIRAL_BOUND", "LEATHER_BOUND", "MAGAZINE", "GRAPHIC_NOVEL"}

func (c CoverType) String() string {
	if c < 0 || int(c) >= len(coverNames) {
		return fmt.Sprintf("CoverType(%d)", int(c))
	}
	return coverNames[c]
}

func ParseCoverType(s string) (CoverType, error) {
	i, ok := lookupName(coverNames[:], s)
	if !ok {
		return 0, errors.Errorf("unknown cover type %q", s)
	}
	return CoverType(i), nil
}

// Format is the file format of a digital item.
type Format int

const (
	PDF Format = iota
	EPUB
	AZW
	DJVU
	TXT
	HTML
	DOCX
)

var formatNames = [...]string{"PDF", "EPUB", "AZW", "DJVU", "TXT", "HTML", "DOCX"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

func ParseFormat(s string) (Format, error) {
	i, ok := lookupName(formatNames[:], s)
	if !ok {
		return 0, errors.Errorf("unknown format %q", s)
	}
	return Format(i), nil
}

// Kind tags which variant payload an Item carries.
type Kind int

const (
	KindPhysical Kind = iota
	KindDigital
)

var kindNames = [...]string{"PHYSICAL", "DIGITAL"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind also accepts "print" for physical items.
func ParseKind(s string) (Kind, error) {
	if strings.EqualFold(strings.TrimSpace(s), "print") {
		return KindPhysical, nil
	}
	i, ok := lookupName(kindNames[:], s)
	if !ok {
		return 0, errors.Errorf("unknown item kind %q", s)
	}
	return Kind(i), nil
}

func lookupName(names []string, s string) (int, bool) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	for i, n := range names {
		if n == norm {
			return i, true
		}
	}
	return 0, false
}

// ---------------------------------------------------------------------------
// Item
// ---------------------------------------------------------------------------

// PrintDetails holds the fields only a physical item has.
type PrintDetails struct {
	Cover CoverType
}

// DigitalDetails holds the fields only a digital item has.
type DigitalDetails struct {
	Format Format
}

// Item is one lendable catalog unit. Exactly one of Print and Digital is set,
// matching Kind. Items are compared by pointer; never copy one by value.
type Item struct {
	ID        uuid.UUID
	Title     string
	Author    string
	Genre     Genre
	PageCount int
	Kind      Kind

	Print   *PrintDetails
	Digital *DigitalDetails

	mu          sync.Mutex
	status      Status
	available   bool
	canDownload bool
}

// NewPhysicalItem creates a print item. Its availability starts as
// status == StatusAvailable.
func NewPhysicalItem(title, author string, genre Genre, pages int, cover CoverType, status Status) *Item {
	return &Item{
		ID:        uuid.New(),
		Title:     title,
		Author:    author,
		Genre:     genre,
		PageCount: pages,
		Kind:      KindPhysical,
		Print:     &PrintDetails{Cover: cover},
		status:    status,
		available: status == StatusAvailable,
	}
}

// NewDigitalItem creates a digital item. Whether it can be downloaded is
// decided here from the initial status and never changes afterwards, even if
// SetStatus is called later.
func NewDigitalItem(title, author string, genre Genre, pages int, format Format, status Status) *Item {
	return &Item{
		ID:          uuid.New(),
		Title:       title,
		Author:      author,
		Genre:       genre,
		PageCount:   pages,
		Kind:        KindDigital,
		Digital:     &DigitalDetails{Format: format},
		status:      status,
		canDownload: status == StatusDownloadable,
	}
}

func (it *Item) IsPhysical() bool { return it.Kind == KindPhysical }
func (it *Item) IsDigital() bool  { return it.Kind == KindDigital }

func (it *Item) Status() Status {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.status
}

// SetStatus assigns unconditionally. Callers keep Available in step.
func (it *Item) SetStatus(s Status) {
	it.mu.Lock()
	it.status = s
	it.mu.Unlock()
}

// Available reports whether a physical item is on the shelf. Always false for
// digital items.
func (it *Item) Available() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.available
}

// SetAvailable is a no-op for digital items.
func (it *Item) SetAvailable(b bool) {
	if !it.IsPhysical() {
		return
	}
	it.mu.Lock()
	it.available = b
	it.mu.Unlock()
}

// CanDownload is fixed at construction.
func (it *Item) CanDownload() bool { return it.canDownload }

// borrow takes a physical copy off the shelf if it is there. Availability and
// status flip together so two sessions cannot both win.
func (it *Item) borrow() bool {
	if !it.IsPhysical() {
		return false
	}
	it.mu.Lock()
	defer it.mu.Unlock()
	if !it.available {
		return false
	}
	it.available = false
	it.status = StatusUnavailable
	return true
}

func (it *Item) release() {
	it.mu.Lock()
	it.available = true
	it.status = StatusAvailable
	it.mu.Unlock()
}

// FormattedTitle is the "<title> by <author>" form used in listings.
func (it *Item) FormattedTitle() string {
	return it.Title + " by " + it.Author
}

// Detail returns the variant-specific field as text: cover type for print,
// file format for digital.
func (it *Item) Detail() string {
	switch it.Kind {
	case KindPhysical:
		return it.Print.Cover.String()
	case KindDigital:
		return it.Digital.Format.String()
	default:
		return ""
	}
}

func (it *Item) String() string {
	return fmt.Sprintf("Title: %s By Author: %s (Genre: %s)", it.Title, it.Author, it.Genre)
}
