package scene

import (
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// NewDefaultScene creates the demo scene: a 6x6x6 box around five small
// refractive bubbles at random integer positions, lit from above.
// Bubble placement is drawn from random so callers control reproducibility.
func NewDefaultScene(random *rand.Rand) (*Scene, Settings) {
	s := NewScene()
	s.AddObject(geometry.NewDefaultBox())
	s.AddLight(core.NewVec3(0, 5, 0))

	for i := 0; i < 5; i++ {
		x := float64(-2 + random.Intn(5))
		y := float64(-2 + random.Intn(5))
		z := float64(-2 + random.Intn(5))

		bubble := geometry.NewSphere(core.NewVec3(x, y, z), 0.3)
		mat := bubble.Material()
		mat.Diffuse = core.NewVec3(1, 1, 1)
		mat.DiffuseAlbedo = 0.4
		mat.RefractAlbedo = 1.0
		mat.RefractiveIndex = 1.01
		bubble.SetMaterial(mat)

		// The first bubbles get a negative radius and render inside out
		bubble.SetScale(bubble.Scale()*-0.3 + 0.1*float64(i))
		bubble.Update()

		s.AddObject(bubble)
	}

	return s, DefaultSettings()
}
