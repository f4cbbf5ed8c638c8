package model

import (
	"strings"
	"time"
)

type MediaType string

const (
	MediaBook MediaType = "BOOK"
	MediaCD   MediaType = "CD"
)

const day = 24 * time.Hour

// ParseMediaType matches the tag case-insensitively. Unknown or empty tags
// fall back to MediaBook.
func ParseMediaType(tag string) MediaType {
	switch MediaType(strings.ToUpper(strings.TrimSpace(tag))) {
	case MediaCD:
		return MediaCD
	case MediaBook:
		return MediaBook
	default:
		return MediaBook
	}
}

// LoanPeriod is a policy constant per media type.
func (m MediaType) LoanPeriod() time.Duration {
	switch m {
	case MediaCD:
		return 7 * day
	case MediaBook:
		return 28 * day
	default:
		return 28 * day
	}
}

// Valid reports whether m is a known media type.
func (m MediaType) Valid() bool {
	return m == MediaBook || m == MediaCD
}

func (m MediaType) String() string { return string(m) }

// Prefixes returns the id prefixes of the loan and fine documents of m.
func (m MediaType) Prefixes() (loan, fine string) {
	switch m {
	case MediaCD:
		return "CDLOAN", "CDFINE"
	case MediaBook:
		return "LOAN", "FINE"
	default:
		return "LOAN", "FINE"
	}
}

type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ISBN      string    `json:"isbn"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Book) GetID() string        { return b.ID }
func (b *Book) SetID(id string)      { b.ID = id }
func (b *Book) Touch(now time.Time)  { b.UpdatedAt = now }
func (b *Book) IsAvailable() bool    { return b.Available }
func (b *Book) SetAvailable(v bool)  { b.Available = v }
func (b *Book) MediaType() MediaType { return MediaBook }

func NewBook(title, author, isbn string, now time.Time) Book {
	return Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Available: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type CD struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	Genre       string    `json:"genre"`
	TrackCount  int       `json:"trackCount"`
	Publisher   string    `json:"publisher"`
	ReleaseYear int       `json:"releaseYear"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *CD) GetID() string        { return c.ID }
func (c *CD) SetID(id string)      { c.ID = id }
func (c *CD) Touch(now time.Time)  { c.UpdatedAt = now }
func (c *CD) IsAvailable() bool    { return c.Available }
func (c *CD) SetAvailable(v bool)  { c.Available = v }
func (c *CD) MediaType() MediaType { return MediaCD }

type NewCDParams struct {
	Title       string
	Artist      string
	Genre       string
	TrackCount  int
	Publisher   string
	ReleaseYear int
}

func NewCD(p NewCDParams, now time.Time) CD {
	return CD{
		Title:       p.Title,
		Artist:      p.Artist,
		Genre:       p.Genre,
		TrackCount:  p.TrackCount,
		Publisher:   p.Publisher,
		ReleaseYear: p.ReleaseYear,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
