package templates

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/model"
)

func ids(templates []model.Template) []string {
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = t.ID
	}
	return out
}

func TestCatalog_Filter(t *testing.T) {
	c := New()

	tests := []struct {
		name     string
		category string
		query    string
		want     []string
	}{
		{name: "all", category: CategoryAll, want: []string{"template-1", "template-2", "template-3", "template-4"}},
		{name: "empty category matches all", want: []string{"template-1", "template-2", "template-3", "template-4"}},
		{name: "by category", category: "Education", want: []string{"template-2"}},
		{name: "search ignores case", query: "  MARKETING ", want: []string{"template-3"}},
		{name: "category and search", category: "Business", query: "design", want: []string{}},
		{name: "category without templates", category: "Science", want: []string{}},
		{name: "partial title", category: CategoryAll, query: "pro", want: []string{"template-1", "template-4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.Filter(tt.category, tt.query)))
		})
	}
}

func TestCatalog_FilterReturnsCopies(t *testing.T) {
	c := New()

	got := c.Filter(CategoryAll, "")
	got[0].Slides[0].Title = "changed"

	tmpl, err := c.Get("template-1")
	require.NoError(t, err)
	assert.Equal(t, "Executive Summary", tmpl.Slides[0].Title)
}

func TestCatalog_Get_NotFound(t *testing.T) {
	_, err := New().Get("missing")
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
}

func TestCatalog_Instantiate(t *testing.T) {
	c := New()
	c.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("x", 3600)) }

	first, err := c.Instantiate("template-2")
	require.NoError(t, err)
	second, err := c.Instantiate("template-2")
	require.NoError(t, err)

	assert.Equal(t, "Course Lecture", first.Title)
	assert.Equal(t, "2024-05-01T09:00:00Z", first.CreatedAt)
	require.Len(t, first.Slides, 3)
	assert.Equal(t, "Introduction", first.Slides[0].Title)

	_, err = uuid.Parse(first.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = c.Instantiate("missing")
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
}
