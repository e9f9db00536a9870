package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, 249, c.Len())

	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{"US", "United States", true},
		{"USA", "United States", true},
		{"United States", "United States", true},
		{"GBR", "United Kingdom", true},
		{"UK", "United Kingdom", true},
		{"NO", "Norway", true},
		{"DEU", "Germany", true},
		{"usa", "", false},
		{"OH", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := c.Lookup(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCatalog_DuplicateKey(t *testing.T) {
	_, err := NewCatalog([]Country{
		{Alpha2: "XA", Name: "Alpha"},
		{Alpha2: "XA", Name: "Beta"},
	})
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestNewCatalog_MissingName(t *testing.T) {
	_, err := NewCatalog([]Country{{Alpha2: "XA"}})
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := "countries:\n  - {alpha2: XA, alpha3: XAA, name: Atlantis, aliases: [Poseidonia]}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	name, ok := c.Lookup("Poseidonia")
	assert.True(t, ok)
	assert.Equal(t, "Atlantis", name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
