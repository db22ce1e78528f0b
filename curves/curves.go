// Package curves registers every supported curve under its name.
package curves

import (
	"fmt"

	"github.com/ZenGo-X/curv/bls12381"
	"github.com/ZenGo-X/curv/ed25519"
	"github.com/ZenGo-X/curv/jubjub"
	"github.com/ZenGo-X/curv/p256"
	"github.com/ZenGo-X/curv/ristretto"
	"github.com/ZenGo-X/curv/secp256k1"
	"github.com/ZenGo-X/curv/types"
)

type Curve = types.Curve

// All returns an instance of every supported curve.
func All() []Curve {
	return []Curve{
		secp256k1.NewCurve(),
		p256.NewCurve(),
		ed25519.NewCurve(),
		ristretto.NewCurve(),
		bls12381.NewCurve(),
		jubjub.NewCurve(),
	}
}

// ByName returns the curve with the given name.
func ByName(name string) (Curve, error) {
	for _, c := range All() {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("unknown curve %q", name)
}
