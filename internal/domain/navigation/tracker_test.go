package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageTops() map[string]float64 {
	return map[string]float64{
		"hero":           0,
		"about":          800,
		"timeline":       1600,
		"skills":         2600,
		"projects":       3400,
		"certifications": 4200,
	}
}

func TestNewTracker(t *testing.T) {
	tr, err := NewTracker(DefaultSections, DefaultHeaderOffset)
	require.NoError(t, err)
	assert.Equal(t, "hero", tr.Active())

	_, err = NewTracker(nil, DefaultHeaderOffset)
	assert.ErrorIs(t, err, ErrNoSections)
}

func TestObserve(t *testing.T) {
	tr, err := NewTracker(DefaultSections, DefaultHeaderOffset)
	require.NoError(t, err)

	tests := []struct {
		scrollY float64
		want    string
	}{
		{0, "hero"},
		{699, "hero"},
		{700, "about"},
		{1550, "timeline"},
		{5000, "certifications"},
		{100, "hero"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tr.Observe(tt.scrollY, pageTops()), "scrollY=%v", tt.scrollY)
	}
}

func TestObserve_NoQualifyingSectionKeepsActive(t *testing.T) {
	tr, err := NewTracker(DefaultSections, DefaultHeaderOffset)
	require.NoError(t, err)

	tr.Observe(2600, pageTops())
	require.Equal(t, "skills", tr.Active())

	tops := map[string]float64{"about": 9000}
	assert.Equal(t, "skills", tr.Observe(10, tops))
}

func TestObserve_AfterDetachIsIgnored(t *testing.T) {
	tr, err := NewTracker(DefaultSections, DefaultHeaderOffset)
	require.NoError(t, err)

	tr.Observe(800, pageTops())
	tr.Detach()
	tr.Detach()

	assert.True(t, tr.Detached())
	assert.Equal(t, "about", tr.Observe(4200, pageTops()))
}

func TestResolveSection(t *testing.T) {
	tr, err := NewTracker(DefaultSections, DefaultHeaderOffset)
	require.NoError(t, err)

	id, ok := tr.ResolveSection("#skills")
	assert.True(t, ok)
	assert.Equal(t, "skills", id)

	id, ok = tr.ResolveSection("projects")
	assert.True(t, ok)
	assert.Equal(t, "projects", id)

	_, ok = tr.ResolveSection("#contact")
	assert.False(t, ok)
}
