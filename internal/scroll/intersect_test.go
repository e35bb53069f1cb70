package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegion_Intersects(t *testing.T) {
	r := Region{ID: "about", Top: 40, Bottom: 60}

	tests := []struct {
		name        string
		top, height int
		want        bool
	}{
		{"window above", 0, 40, false},
		{"touches top edge", 1, 40, true},
		{"inside", 45, 5, true},
		{"covers", 30, 40, true},
		{"window below", 60, 20, false},
		{"zero height", 45, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Intersects(tt.top, tt.height))
		})
	}
}

func TestIntersections_Update(t *testing.T) {
	in := NewIntersections()
	in.SetRegions([]Region{
		{ID: "home", Top: 0, Bottom: 30},
		{ID: "about", Top: 30, Bottom: 60},
		{ID: "services", Top: 60, Bottom: 100},
	})

	entered, left := in.Update(0, 24)
	assert.Equal(t, []string{"home"}, entered)
	assert.Empty(t, left)

	entered, left = in.Update(20, 24)
	assert.Equal(t, []string{"about"}, entered)
	assert.Empty(t, left)

	entered, left = in.Update(40, 24)
	assert.Equal(t, []string{"services"}, entered)
	assert.Equal(t, []string{"home"}, left)

	// same window: nothing new
	entered, left = in.Update(40, 24)
	assert.Empty(t, entered)
	assert.Empty(t, left)

	assert.True(t, in.Visible("about"))
	assert.False(t, in.Visible("home"))
}

func TestIntersections_SetRegionsKeepsVisibility(t *testing.T) {
	in := NewIntersections()
	in.SetRegions([]Region{{ID: "home", Top: 0, Bottom: 30}})
	in.Update(0, 24)

	in.SetRegions([]Region{
		{ID: "home", Top: 0, Bottom: 32},
		{ID: "about", Top: 32, Bottom: 60},
	})
	entered, _ := in.Update(0, 24)
	assert.Empty(t, entered, "relayout must not re-announce visible regions")

	r, ok := in.Region("about")
	assert.True(t, ok)
	assert.Equal(t, 32, r.Top)
}
