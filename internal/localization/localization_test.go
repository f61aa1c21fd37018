package localization_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-portal/internal/localization"
)

func newCatalog(t *testing.T, initial string) *localization.Catalog {
	t.Helper()
	c, err := localization.NewCatalog(initial, nil)
	require.NoError(t, err)
	return c
}

func TestT(t *testing.T) {
	c := newCatalog(t, "en")

	t.Run("returns english strings", func(t *testing.T) {
		assert.Equal(t, "ING", c.T("companyTitle", nil))
		assert.Equal(t, "Employees", c.T("viewEmployees", nil))
		assert.Equal(t, "Add New", c.T("addEmployee", nil))
		assert.Equal(t, "Cancel", c.T("cancel", nil))
	})

	t.Run("missing key returns the key", func(t *testing.T) {
		assert.Equal(t, "nonExistentKey", c.T("nonExistentKey", nil))
		assert.Equal(t, "nonExistentKey", c.T("nonExistentKey", map[string]any{"name": "Ignored"}))
	})

	t.Run("interpolates values", func(t *testing.T) {
		assert.Equal(t, "Selected Employee record of John Doe will be deleted",
			c.T("confirmDeleteMessage", map[string]any{"name": "John Doe"}))
		assert.Equal(t, "Are you sure you want to delete 3 selected employee record(s)?",
			c.T("confirmBulkDeleteMessage", map[string]any{"count": 3}))
	})

	t.Run("leaves unmatched placeholders", func(t *testing.T) {
		assert.Equal(t, "Selected Employee record of {name} will be deleted",
			c.T("confirmDeleteMessage", map[string]any{"nonMatchingValue": "ignored"}))
	})
}

func TestSetLanguage(t *testing.T) {
	t.Run("switches catalog and notifies once", func(t *testing.T) {
		c := newCatalog(t, "en")
		var got []string
		unsubscribe := c.Subscribe(func(code string) { got = append(got, code) })
		defer unsubscribe()

		require.NoError(t, c.SetLanguage("tr"))

		assert.Equal(t, "tr", c.Language())
		assert.Equal(t, "Personelleri Görüntüle", c.T("viewEmployees", nil))
		assert.Equal(t, "İptal", c.T("cancel", nil))
		assert.Equal(t, "Personel Ekle", c.T("addEmployee", nil))
		assert.Equal(t, "Ad", c.T("firstName", nil))
		assert.Equal(t, "ING", c.T("companyTitle", nil))
		assert.Equal(t, []string{"tr"}, got)
	})

	t.Run("rejects unsupported language", func(t *testing.T) {
		c := newCatalog(t, "en")
		calls := 0
		c.Subscribe(func(string) { calls++ })

		err := c.SetLanguage("fr")

		require.ErrorContains(t, err, "not supported")
		assert.Equal(t, "en", c.Language())
		assert.Zero(t, calls)
	})

	t.Run("normalizes regional tags", func(t *testing.T) {
		c := newCatalog(t, "en")

		require.NoError(t, c.SetLanguage("tr-TR"))
		assert.Equal(t, "tr", c.Language())
	})

	t.Run("unsubscribed listener is not called", func(t *testing.T) {
		c := newCatalog(t, "en")
		calls := 0
		unsubscribe := c.Subscribe(func(string) { calls++ })
		unsubscribe()

		require.NoError(t, c.SetLanguage("tr"))
		assert.Zero(t, calls)
	})
}

func TestNewCatalog_FallsBackToEnglish(t *testing.T) {
	c := newCatalog(t, "xx")
	assert.Equal(t, "en", c.Language())
}

func TestAvailableLanguages(t *testing.T) {
	c := newCatalog(t, "en")

	langs := c.AvailableLanguages()

	require.Len(t, langs, 2)
	assert.Equal(t, localization.Language{Code: "en", Name: "English", NativeName: "English"}, langs[0])
	assert.Equal(t, localization.Language{Code: "tr", Name: "Turkish", NativeName: "Türkçe"}, langs[1])
}

func TestLocalizer(t *testing.T) {
	c := newCatalog(t, "en")

	tr := c.Localizer("tr")
	assert.Equal(t, "tr", tr.Language())
	assert.Equal(t, "İptal", tr.T("cancel"))
	assert.Equal(t, "Cancel", c.T("cancel", nil))

	fallback := c.Localizer("de")
	assert.Equal(t, "en", fallback.Language())
}

func TestMatchAcceptLanguage(t *testing.T) {
	c := newCatalog(t, "en")

	code, ok := c.MatchAcceptLanguage("tr-TR,tr;q=0.9,en;q=0.8")
	require.True(t, ok)
	assert.Equal(t, "tr", code)

	_, ok = c.MatchAcceptLanguage("")
	assert.False(t, ok)
}
