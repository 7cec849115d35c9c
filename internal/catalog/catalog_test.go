package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarityrx/clarity-server/internal/domain"
)

func TestDefault_Invariants(t *testing.T) {
	c := Default()

	require.NoError(t, Validate(c))
	assert.Len(t, c, 5)

	// Positional layout the recommendation fallbacks depend on.
	assert.Equal(t, domain.SKUDeepRestMicro, c[0].SKU)
	assert.Equal(t, domain.SKUDeepRest, c[1].SKU)
	assert.Equal(t, domain.SKUCalmClarity, c[2].SKU)
	assert.Equal(t, domain.SKUFocusCrisp, c[3].SKU)
	assert.Equal(t, domain.SKUGentleRelief, c[4].SKU)
}

func TestValidate_Errors(t *testing.T) {
	valid := domain.Product{SKU: "CRX-X-1", Name: "X", THCMgPerCapsule: 1, Effect: domain.EffectCalm}

	tests := []struct {
		name    string
		catalog domain.Catalog
	}{
		{"empty catalog", domain.Catalog{}},
		{"missing sku", domain.Catalog{{Name: "X", THCMgPerCapsule: 1, Effect: domain.EffectCalm}}},
		{"duplicate sku", domain.Catalog{valid, valid}},
		{"missing name", domain.Catalog{{SKU: "CRX-X-1", THCMgPerCapsule: 1, Effect: domain.EffectCalm}}},
		{"zero dose", domain.Catalog{{SKU: "CRX-X-1", Name: "X", Effect: domain.EffectCalm}}},
		{"unknown effect", domain.Catalog{{SKU: "CRX-X-1", Name: "X", THCMgPerCapsule: 1, Effect: "party"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate(tt.catalog))
		})
	}
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validCatalogJSON = `[
	{"sku": "CRX-T-1", "name": "Test One", "thc_mg_per_capsule": 2.5, "intended_effect": "sleep"},
	{"sku": "CRX-T-2", "name": "Test Two", "thc_mg_per_capsule": 5, "intended_effect": "calm"}
]`

func TestLoadFile(t *testing.T) {
	path := writeCatalogFile(t, validCatalogJSON)

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "CRX-T-1", got[0].SKU)
	assert.Equal(t, domain.EffectCalm, got[1].Effect)
}

func TestLoadFile_Invalid(t *testing.T) {
	_, err := LoadFile(writeCatalogFile(t, "not json"))
	assert.Error(t, err)

	_, err = LoadFile(writeCatalogFile(t, "[]"))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestService_DefaultWhenNoPath(t *testing.T) {
	s, err := NewService("", nil)
	require.NoError(t, err)

	assert.Len(t, s.Catalog(), 5)

	p, ok := s.BySKU(domain.SKUCalmClarity)
	require.True(t, ok)
	assert.Equal(t, "Calm Clarity", p.Name)
}

func TestService_ReloadSwapsCatalog(t *testing.T) {
	path := writeCatalogFile(t, validCatalogJSON)

	s, err := NewService(path, nil)
	require.NoError(t, err)
	assert.Len(t, s.Catalog(), 2)

	updated := `[{"sku": "CRX-T-3", "name": "Test Three", "thc_mg_per_capsule": 2.5, "intended_effect": "focus"}]`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

	require.NoError(t, s.Reload())
	require.Len(t, s.Catalog(), 1)
	assert.Equal(t, "CRX-T-3", s.Catalog()[0].SKU)
}

func TestService_ReloadKeepsCatalogOnBrokenFile(t *testing.T) {
	path := writeCatalogFile(t, validCatalogJSON)

	s, err := NewService(path, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("broken"), 0o600))

	assert.Error(t, s.Reload())
	assert.Len(t, s.Catalog(), 2, "previous catalog stays in place")
}
