package volume_test

import (
	"fmt"
	"log"

	"github.com/R3mmurd/MonteCarlo/geometry"
	"github.com/R3mmurd/MonteCarlo/volume"
)

func ExampleEstimate() {
	spheres := []geometry.Sphere{
		geometry.NewSphere(0, 0, 0, 1),
		geometry.NewSphere(0, 0, 0, 1),
	}

	res, err := volume.Estimate(spheres, 1_000_000, volume.WithSeed(42))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("union ~ %.1f, overlap ~ %.1f, sum of volumes = %.2f\n",
		res.HitVolume, res.OverlapVolume, res.Theoretical)
	// Output: union ~ 4.2, overlap ~ 4.2, sum of volumes = 8.38
}
