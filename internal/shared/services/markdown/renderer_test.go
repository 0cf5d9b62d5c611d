package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	t.Run("formats markdown", func(t *testing.T) {
		out, err := r.Render("**bold** and `code`")
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>bold</strong>")
		assert.Contains(t, out, "<code>code</code>")
	})

	t.Run("strips scripts", func(t *testing.T) {
		out, err := r.Render("hello <script>alert(1)</script>")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
	})

	t.Run("links get nofollow", func(t *testing.T) {
		out, err := r.Render("see https://example.com")
		require.NoError(t, err)
		assert.Contains(t, out, `rel="nofollow`)
	})
}
