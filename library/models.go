package library

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CatalogRecord is one row of the stored fixture: what an item looks like
// when a session starts. Lending state is never written back.
type CatalogRecord struct {
	ItemUID   string         `db:"item_uid" validate:"required,uuid"`
	Position  int            `db:"position" validate:"min=0"`
	Title     string         `db:"title" validate:"required"`
	Author    string         `db:"author" validate:"required"`
	Genre     string         `db:"genre" validate:"required"`
	PageCount int            `db:"page_count" validate:"min=0"`
	Kind      string         `db:"kind" validate:"oneof=PHYSICAL DIGITAL"`
	Cover     sql.NullString `db:"cover"`
	Format    sql.NullString `db:"format"`
	Status    string         `db:"status" validate:"oneof=AVAILABLE UNAVAILABLE DOWNLOADABLE UNDOWNLOADABLE"`
}

var validate = validator.New()

// NewCatalogRecord captures item as it is now, at position pos.
func NewCatalogRecord(pos int, it *Item) CatalogRecord {
	rec := CatalogRecord{
		ItemUID:   it.ID.String(),
		Position:  pos,
		Title:     it.Title,
		Author:    it.Author,
		Genre:     it.Genre.String(),
		PageCount: it.PageCount,
		Kind:      it.Kind.String(),
		Status:    it.Status().Name(),
	}
	switch it.Kind {
	case KindPhysical:
		rec.Cover = sql.NullString{String: it.Print.Cover.String(), Valid: true}
	case KindDigital:
		rec.Format = sql.NullString{String: it.Digital.Format.String(), Valid: true}
	}
	return rec
}

// Item validates the record and builds a fresh item from it.
func (r CatalogRecord) Item() (*Item, error) {
	if err := validate.Struct(r); err != nil {
		return nil, errors.Wrapf(err, "record %d", r.Position)
	}
	id, err := uuid.Parse(r.ItemUID)
	if err != nil {
		return nil, errors.Wrapf(err, "record %d", r.Position)
	}
	genre, err := ParseGenre(r.Genre)
	if err != nil {
		return nil, err
	}
	status, err := ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	kind, err := ParseKind(r.Kind)
	if err != nil {
		return nil, err
	}

	var it *Item
	switch kind {
	case KindPhysical:
		if !r.Cover.Valid {
			return nil, errors.Errorf("record %d: physical item without cover", r.Position)
		}
		cover, err := ParseCoverType(r.Cover.String)
		if err != nil {
			return nil, err
		}
		it = NewPhysicalItem(r.Title, r.Author, genre, r.PageCount, cover, status)
	case KindDigital:
		if !r.Format.Valid {
			return nil, errors.Errorf("record %d: digital item without format", r.Position)
		}
		format, err := ParseFormat(r.Format.String)
		if err != nil {
			return nil, err
		}
		it = NewDigitalItem(r.Title, r.Author, genre, r.PageCount, format, status)
	}
	it.ID = id
	return it, nil
}
