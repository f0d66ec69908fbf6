package carddex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", padCell("ab", 5))
	assert.Equal(t, "ab", padCell("ab", 2))
	assert.Equal(t, "ab", padCell("ab", 1))
}

func TestPadCellWideChars(t *testing.T) {
	t.Parallel()
	// "你" occupies two display columns.
	assert.Equal(t, 2, cellWidth("你"))
	assert.Equal(t, "你  ", padCell("你", 4))
}

func TestFirstLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a", firstLine("a\nb"))
	assert.Equal(t, "a", firstLine("a"))
	assert.Equal(t, "", firstLine("\nb"))
}

func TestInputenc(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "utf8", inputenc("utf-8"))
	assert.Equal(t, "latin1", inputenc("Latin-1"))
}

func TestParamVCard(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "work", paramVCard("work"))
	assert.Equal(t, "homeoffice", paramVCard("home;office"))
	assert.Equal(t, "OTHER", paramVCard(""))
}
