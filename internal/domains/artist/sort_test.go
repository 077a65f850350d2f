package artist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByExhibitionStart(t *testing.T) {
	artists := []Artist{
		{ArtistName: "no date"},
		{ArtistName: "march", ExhibitionStartDate: "2026-03-01"},
		{ArtistName: "bad date", ExhibitionStartDate: "not-a-date"},
		{ArtistName: "january", ExhibitionStartDate: "2026-01-15"},
		{ArtistName: "december", ExhibitionStartDate: "2025-12-24"},
	}

	SortByExhibitionStart(artists)

	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.ArtistName
	}
	// Dated records chronological first; missing and unparseable dates keep
	// their relative order at the end.
	assert.Equal(t, []string{"december", "january", "march", "no date", "bad date"}, names)
}

func TestSortByExhibitionStart_StableForEqualDates(t *testing.T) {
	artists := []Artist{
		{ArtistName: "first", ExhibitionStartDate: "2026-05-01"},
		{ArtistName: "second", ExhibitionStartDate: "2026-05-01"},
	}

	SortByExhibitionStart(artists)

	assert.Equal(t, "first", artists[0].ArtistName)
	assert.Equal(t, "second", artists[1].ArtistName)
}
