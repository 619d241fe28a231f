package library

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ItemView is a point-in-time copy of an item for display.
type ItemView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	PageCount   int    `json:"page_count"`
	Kind        string `json:"kind"`
	Cover       string `json:"cover,omitempty"`
	Format      string `json:"format,omitempty"`
	Status      string `json:"status"`
	Available   bool   `json:"available,omitempty"`
	CanDownload bool   `json:"can_download,omitempty"`
}

func NewItemView(it *Item) ItemView {
	v := ItemView{
		ID:        it.ID.String(),
		Title:     it.Title,
		Author:    it.Author,
		Genre:     it.Genre.String(),
		PageCount: it.PageCount,
		Kind:      it.Kind.String(),
		Status:    it.Status().String(),
	}
	switch it.Kind {
	case KindPhysical:
		v.Cover = it.Print.Cover.String()
		v.Available = it.Available()
	case KindDigital:
		v.Format = it.Digital.Format.String()
		v.CanDownload = it.CanDownload()
	}
	return v
}

func NewItemViews(items []*Item) []ItemView {
	out := make([]ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, NewItemView(it))
	}
	return out
}

// SessionView bundles ledger state for JSON output.
type SessionView struct {
	Borrowed    []ItemView `json:"borrowed"`
	Downloaded  []ItemView `json:"downloaded"`
	BorrowCount int        `json:"borrow_count"`
	OverLimit   bool       `json:"over_limit"`
	Limit       int        `json:"limit"`
}

func NewSessionView(s *Session) SessionView {
	sum := s.Summary()
	return SessionView{
		Borrowed:    NewItemViews(s.ledger.Borrowed()),
		Downloaded:  NewItemViews(s.ledger.Downloaded()),
		BorrowCount: sum.BorrowCount,
		OverLimit:   sum.OverLimit,
		Limit:       sum.Limit,
	}
}

// MarshalIndent renders v as indented JSON.
func MarshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// PrettyItem formats an item for tables.
func PrettyItem(it *Item) string {
	return fmt.Sprintf("%-35s %-25s %-16s %-9s %-14s %-5d %s",
		truncate(it.Title, 35), truncate(it.Author, 25), it.Genre, it.Kind, it.Detail(), it.PageCount, it.Status())
}

// PrettyHeader matches the columns of PrettyItem.
func PrettyHeader() string {
	return fmt.Sprintf("%-35s %-25s %-16s %-9s %-14s %-5s %s", "Title", "Author", "Genre", "Kind", "Cover/Format", "Pages", "Status")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
