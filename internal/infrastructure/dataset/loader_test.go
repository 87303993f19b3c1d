package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveDocument(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLoader_Load_BareArray(t *testing.T) {
	server := serveDocument(t, http.StatusOK, `[
		{"id": "s1", "name": "Blue Reef", "country": "泰國", "city": "普吉島",
		 "certifications": ["PADI"], "tags": ["reef-diving"], "is_five_star": true,
		 "ad_priority": 5, "average_rating": 4.5, "review_count": 12,
		 "website": "https://bluereef.example.com", "email": "hi@bluereef.example.com"}
	]`)

	loader := NewLoader(server.URL, server.Client(), nil)
	shops, err := loader.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, shops, 1)
	shop := shops[0]
	assert.Equal(t, "s1", shop.ID)
	assert.Equal(t, "Blue Reef", shop.Name)
	assert.Equal(t, []string{"PADI"}, shop.Certifications)
	assert.True(t, shop.IsFiveStar)
	assert.Equal(t, 5, shop.AdPriority)
	assert.Equal(t, 4.5, shop.AverageRating)
	assert.Equal(t, PlaceholderImage, shop.BackgroundURL)
}

func TestLoader_Load_WrappedObject(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "items field", body: `{"items": [{"id": "a", "name": "One"}]}`},
		{name: "shops field", body: `{"shops": [{"id": "a", "name": "One"}]}`},
		{name: "data field", body: `{"data": [{"id": "a", "name": "One"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := serveDocument(t, http.StatusOK, tt.body)
			loader := NewLoader(server.URL, server.Client(), nil)

			shops, err := loader.Load(context.Background())
			require.NoError(t, err)
			require.Len(t, shops, 1)
			assert.Equal(t, "One", shops[0].Name)
		})
	}
}

func TestLoader_Load_LegacyFields(t *testing.T) {
	server := serveDocument(t, http.StatusOK, `[
		{"id": 42, "title": "Old Export Divers", "country": "日本",
		 "system": "SSI", "membershipLevel": "SSI 5 Star Instructor Training Center",
		 "url": "https://old.example.com",
		 "background": {"800x800": "https://cdn.example.com/42/800x800.jpg"}}
	]`)

	loader := NewLoader(server.URL, server.Client(), nil)
	shops, err := loader.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, shops, 1)
	shop := shops[0]
	assert.Equal(t, "42", shop.ID, "numeric id is stringified")
	assert.Equal(t, "Old Export Divers", shop.Name, "title is the legacy name field")
	assert.Equal(t, []string{"SSI"}, shop.Certifications, "system seeds the certification set")
	assert.True(t, shop.IsFiveStar, "membershipLevel marker derives the flag")
	assert.Equal(t, "https://old.example.com", shop.Website, "url is the legacy website field")
	assert.Equal(t, "https://cdn.example.com/42/800x800.jpg", shop.BackgroundURL)
}

func TestLoader_Load_Defaults(t *testing.T) {
	server := serveDocument(t, http.StatusOK, `[{"id": "min", "name": "Minimal"}]`)

	loader := NewLoader(server.URL, server.Client(), nil)
	shops, err := loader.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, shops, 1)
	shop := shops[0]

	// Absent sets default to empty, never nil, so predicates iterate unconditionally.
	assert.NotNil(t, shop.Certifications)
	assert.NotNil(t, shop.Tags)
	assert.NotNil(t, shop.Languages)
	assert.NotNil(t, shop.Activities)
	assert.Empty(t, shop.Tags)
	assert.Zero(t, shop.AdPriority)
	assert.Zero(t, shop.ReviewCount)
	assert.False(t, shop.IsFiveStar)
}

func TestLoader_Load_SoftFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "non-success status", status: http.StatusInternalServerError, body: "boom"},
		{name: "not json", status: http.StatusOK, body: "not json at all"},
		{name: "scalar payload", status: http.StatusOK, body: `"just a string"`},
		{name: "object without array field", status: http.StatusOK, body: `{"message": "hello"}`},
		{name: "empty body", status: http.StatusOK, body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := serveDocument(t, tt.status, tt.body)
			loader := NewLoader(server.URL, server.Client(), nil)

			shops, err := loader.Load(context.Background())
			require.Error(t, err)
			assert.NotNil(t, shops, "failure still yields an empty slice, not nil")
			assert.Empty(t, shops)
		})
	}
}

func TestLoader_Load_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	loader := NewLoader(url, &http.Client{}, nil)
	shops, err := loader.Load(context.Background())

	require.Error(t, err)
	assert.Empty(t, shops)
}

func TestLoader_Load_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shops.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "f1", "name": "File Divers"}]`), 0o644))

	loader := NewLoader(path, nil, nil)
	shops, err := loader.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, "File Divers", shops[0].Name)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "nope.json"), nil, nil)
	shops, err := loader.Load(context.Background())

	require.Error(t, err)
	assert.Empty(t, shops)
}
