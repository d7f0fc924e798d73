package collision

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRayIntersectsTriangle(t *testing.T) {
	t.Parallel()

	triangle := [3]mgl32.Vec3{{2, 0, 1}, {1, 0, 1}, {1, 0, 2}}

	tests := []struct {
		name      string
		origin    mgl32.Vec3
		direction mgl32.Vec3
		hit       bool
		t         float32
	}{
		{"straight down", mgl32.Vec3{1.25, -1.5, 1.25}, mgl32.Vec3{0, 1, 0}, true, 1.5},
		{"from below", mgl32.Vec3{1.25, 2, 1.25}, mgl32.Vec3{0, -1, 0}, true, 2},
		{"behind", mgl32.Vec3{1.25, 1, 1.25}, mgl32.Vec3{0, 1, 0}, false, 0},
		{"outside", mgl32.Vec3{1.9, -1, 1.9}, mgl32.Vec3{0, 1, 0}, false, 0},
		{"parallel", mgl32.Vec3{0, 0, 1.25}, mgl32.Vec3{1, 0, 0}, false, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := RayIntersectsTriangle(tt.origin, tt.direction, triangle)
			assert.Equal(t, tt.hit, res.Hit)

			if tt.hit {
				assert.InDelta(t, tt.t, res.T, 1e-5)
				assert.InDelta(t, 0, res.Point.Y(), 1e-5)
			}
		})
	}
}

func TestRayIntersectsAxisAlignedBoundingBox(t *testing.T) {
	t.Parallel()

	min, max := mgl32.Vec3{0, -2, 0}, mgl32.Vec3{4, 0, 3}

	res := RayIntersectsAxisAlignedBoundingBox(mgl32.Vec3{1, -1, -5}, mgl32.Vec3{0, 0, 1}, min, max)
	assert.True(t, res.Hit)
	assert.InDelta(t, 5, res.T, 1e-3)
	assert.InDelta(t, 0, res.Point.Z(), 1e-3)

	// inside the box the exit point is reported
	res = RayIntersectsAxisAlignedBoundingBox(mgl32.Vec3{1, -1, 1}, mgl32.Vec3{0, 0, 1}, min, max)
	assert.True(t, res.Hit)
	assert.InDelta(t, 3, res.Point.Z(), 1e-3)

	res = RayIntersectsAxisAlignedBoundingBox(mgl32.Vec3{1, -1, 5}, mgl32.Vec3{0, 0, 1}, min, max)
	assert.False(t, res.Hit)

	res = RayIntersectsAxisAlignedBoundingBox(mgl32.Vec3{10, -1, -5}, mgl32.Vec3{0, 0, 1}, min, max)
	assert.False(t, res.Hit)
}
