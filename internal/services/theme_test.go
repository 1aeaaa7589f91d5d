package services

import (
	"context"
	"testing"

	"github.com/apavlova/daybook/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestTheme(t *testing.T) {
	st := store.New(":memory:")
	t.Cleanup(func() { _ = st.Close() })
	ctx := context.Background()

	s := NewThemeService(st, testLogger())

	assert.Equal(t, ThemeLight, s.GetTheme(ctx), "defaults to light")

	assert.Equal(t, ThemeDark, s.ToggleTheme(ctx))
	assert.Equal(t, ThemeDark, s.GetTheme(ctx))

	assert.Equal(t, ThemeLight, s.ToggleTheme(ctx))

	s.SetTheme(ctx, ThemeDark)
	assert.Equal(t, ThemeDark, s.GetTheme(ctx))
}
