package theme_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaepaama/Employeehub/internal/domain"
	"github.com/jaepaama/Employeehub/internal/theme"
)

func TestStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")

	t.Run("missing file defaults to light", func(t *testing.T) {
		s, err := theme.NewStore(path)
		require.NoError(t, err)
		assert.Equal(t, theme.Light, s.Theme())
	})

	t.Run("toggle persists across restarts", func(t *testing.T) {
		s, err := theme.NewStore(path)
		require.NoError(t, err)
		require.NoError(t, s.SetTheme(theme.Dark))

		reopened, err := theme.NewStore(path)
		require.NoError(t, err)
		assert.Equal(t, theme.Dark, reopened.Theme())
	})

	t.Run("unknown theme rejected", func(t *testing.T) {
		s, err := theme.NewStore(path)
		require.NoError(t, err)
		err = s.SetTheme("sepia")
		assert.ErrorIs(t, err, domain.ErrUnknownTheme)
		assert.Equal(t, theme.Dark, s.Theme(), "previous preference kept")
	})
}
