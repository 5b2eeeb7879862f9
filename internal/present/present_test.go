package present

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/walletthemes/internal/registry"
	"github.com/unkn0wn-root/walletthemes/internal/theme"
)

func TestNewRequiresRegistry(t *testing.T) {
	a, err := New(nil)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrNoRegistry)
	assert.EqualError(t, err, "theme registry is not available: accessors must be constructed with a registry")

	assert.PanicsWithError(t, ErrNoRegistry.Error(), func() {
		MustNew(nil)
	})
}

func TestRequiredThemeNeedsActiveTheme(t *testing.T) {
	reg := registry.New()
	a := MustNew(reg)

	_, err := a.Theme()
	assert.ErrorIs(t, err, ErrNoActiveTheme)
	_, _, err = a.ScreenTheme("home")
	assert.ErrorIs(t, err, ErrNoActiveTheme)

	reg.Register(theme.Manifest{ID: "a", Name: "A"})
	rt, err := a.Theme()
	require.NoError(t, err)
	assert.Equal(t, "a", rt.ID)
}

func TestRequiredAccessorsReadSubRegistries(t *testing.T) {
	reg := registry.New()
	reg.Register(theme.Manifest{ID: "a", Name: "A"})
	reg.SetActive("a")
	reg.SetCardThemes([]theme.CardTheme{{
		ID: "acme",
		Matcher: theme.Matcher{Patterns: []theme.Pattern{
			{Type: theme.PatternIssuerName, Regex: "acme"},
		}},
	}})
	reg.SetBackgrounds([]theme.BackgroundConfig{{ID: "dark", ScreenIDs: []string{"home"}}})
	reg.SetScreenThemes(map[string]theme.ScreenTheme{"home": {StatusBar: "light"}})

	a := MustNew(reg)
	assert.Equal(t, "acme", a.CardTheme(theme.CredentialMatchInfo{IssuerName: "ACME"}).ID)
	assert.Equal(t, "dark", a.Background("home").ID)
	assert.Equal(t, theme.DefaultVariant, a.TabBar().Variant)

	st, ok, err := a.ScreenTheme("home")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", st.StatusBar)
}

func TestOptionalWithoutRegistryUsesDefaults(t *testing.T) {
	o := Optional(nil)

	assert.False(t, o.Available())
	assert.Nil(t, o.Theme())
	assert.Equal(t, theme.DefaultCardTheme(), o.CardTheme(theme.CredentialMatchInfo{IssuerName: "x"}))
	assert.Equal(t, theme.DefaultBackground(), o.Background("home"))
	assert.Equal(t, theme.DefaultTabBarConfig(), o.TabBar())
	_, ok := o.ScreenTheme("home")
	assert.False(t, ok)
}

func TestOptionalWithRegistryDelegates(t *testing.T) {
	reg := registry.New()
	o := Optional(reg)
	assert.True(t, o.Available())
	assert.Nil(t, o.Theme())

	reg.Register(theme.Manifest{ID: "a", Name: "A"})
	require.NotNil(t, o.Theme())
	assert.Equal(t, theme.DefaultID, o.Background("anything").ID)
}
