package renderer

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestRender_DepthZeroIsAmbientBackground(t *testing.T) {
	sc := scene.NewScene()
	sc.SetAmbient(0.25)
	sc.AddObject(geometry.NewUnitSphere())
	sc.AddLight(core.NewVec3(0, 5, 5))
	camera := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), 90, 1)

	for _, size := range []int{2, 3} {
		fb := NewFramebuffer(size, size)
		if err := Render(context.Background(), fb, camera, sc, 0); err != nil {
			t.Fatalf("Render failed: %v", err)
		}

		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				ray := camera.PixelRay(x, y, size, size)
				expected := integrator.Background(ray).Multiply(math.Min(1, 2*sc.Ambient()))
				r, g, b := fb.Pixel(x, y)
				want := [3]uint8{uint8(expected.X * 255), uint8(expected.Y * 255), uint8(expected.Z * 255)}
				if [3]uint8{r, g, b} != want {
					t.Errorf("%dx%d pixel (%d, %d) = %v, expected %v", size, size, x, y, [3]uint8{r, g, b}, want)
				}
			}
		}
	}

	// The center ray of the 3x3 frame hits the sphere, yet depth 0 ignores it
	if _, isHit := sc.Hit(camera.PixelRay(1, 1, 3, 3)); !isHit {
		t.Error("Expected the center ray to intersect the sphere")
	}
}

func TestRender_DeterministicAcrossWorkers(t *testing.T) {
	sc, settings := scene.NewShowcaseScene()
	camera := NewCamera(settings.Camera.Eye, settings.Camera.LookAt, settings.Camera.FOV, 40.0/30.0)

	var reference []byte
	for _, config := range []RenderConfig{
		{TileSize: 0, NumWorkers: 1},
		{TileSize: 7, NumWorkers: 3},
		{TileSize: 16, NumWorkers: 0},
	} {
		fb := NewFramebuffer(40, 30)
		if _, err := NewRenderer(config, nil).Render(context.Background(), fb, camera, sc, settings.MaxDepth); err != nil {
			t.Fatalf("Render with %+v failed: %v", config, err)
		}
		if reference == nil {
			reference = append([]byte(nil), fb.RGB()...)
			continue
		}
		if !bytes.Equal(reference, fb.RGB()) {
			t.Errorf("Render with %+v differs from single-worker render", config)
		}
	}
}

func TestRender_CancelledContext(t *testing.T) {
	sc := scene.NewScene()
	camera := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), 45, 1)
	fb := NewFramebuffer(8, 8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenderer(RenderConfig{TileSize: 2, NumWorkers: 2}, nil).Render(ctx, fb, camera, sc, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRender_Stats(t *testing.T) {
	sc := scene.NewScene()
	camera := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), 45, 2)
	fb := NewFramebuffer(10, 5)

	stats, err := NewRenderer(RenderConfig{TileSize: 4, NumWorkers: 2}, nil).Render(context.Background(), fb, camera, sc, 2)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.Pixels != 50 || stats.Tiles != 6 || stats.Workers != 2 || stats.MaxDepth != 2 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestNormalizedCoordinate(t *testing.T) {
	tests := []struct {
		i, n     int
		expected float64
	}{
		{0, 1, 0},
		{0, 2, 0},
		{1, 2, 1},
		{2, 5, 0.5},
	}
	for _, tt := range tests {
		if got := normalizedCoordinate(tt.i, tt.n); got != tt.expected {
			t.Errorf("normalizedCoordinate(%d, %d) = %f, expected %f", tt.i, tt.n, got, tt.expected)
		}
	}
}
