package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryFlag(t *testing.T) {
	tests := []struct {
		name     string
		country  string
		wantCode string
		wantOK   bool
	}{
		{name: "chinese display name", country: "泰國", wantCode: "th", wantOK: true},
		{name: "english name", country: "Thailand", wantCode: "th", wantOK: true},
		{name: "english name case-insensitive", country: "tHaIlAnD", wantCode: "th", wantOK: true},
		{name: "surrounding whitespace", country: "  日本  ", wantCode: "jp", wantOK: true},
		{name: "unknown country", country: "Atlantis", wantOK: false},
		{name: "empty", country: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := CountryFlag(tt.country)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCode, info.Code)
			}
		})
	}
}

func TestRegionsCoverCountryMapping(t *testing.T) {
	// Every country offered by the region dropdown must resolve to a flag.
	for _, region := range Regions {
		for _, country := range region.Countries {
			_, ok := CountryFlag(country)
			assert.True(t, ok, "region %s lists unresolvable country %s", region.Name, country)
		}
	}
}

func TestTagDisplay(t *testing.T) {
	known := TagDisplay("reef-diving")
	assert.Equal(t, "珊瑚礁潛水", known.Label)
	assert.Equal(t, "bg-cyan-100 text-cyan-800", known.Style)

	unknown := TagDisplay("night-diving")
	assert.Equal(t, "night-diving", unknown.Label, "unknown tags keep their identifier as label")
	assert.Equal(t, fallbackTagStyle, unknown.Style)

	trimmed := TagDisplay("  luxury  ")
	assert.Equal(t, "奢華體驗", trimmed.Label)
}

func TestKnownTags(t *testing.T) {
	tags := KnownTags()
	require.NotEmpty(t, tags)
	assert.IsIncreasing(t, tags, "taxonomy listing must be deterministic")
	assert.Contains(t, tags, "liveaboard")
	assert.Equal(t, tags, KnownTags())
}

func TestSortOptions(t *testing.T) {
	values := make([]string, 0, len(SortOptions))
	for _, option := range SortOptions {
		values = append(values, option.Value)
		assert.NotEmpty(t, option.Label)
	}
	assert.Equal(t, []string{"a-z", "z-a", "highest-rated", "distance", "popular"}, values)
}
