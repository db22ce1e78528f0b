package proofs

import (
	"bytes"
	"errors"

	"github.com/ZenGo-X/curv/polynomial"
	"github.com/ZenGo-X/curv/types"
)

var errInputBytesTooShort = errors.New("input bytes too short")

// Serialize encodes the proof.
func (p *DLogProof) Serialize() []byte {
	b := append(p.Public.Encode(), p.Commitment.Encode()...)
	b = append(b, p.Challenge.Encode()...)
	b = append(b, p.Response.Encode()...)
	return b
}

// Deserialize decodes the proof for the given curve. The curve must
// match the one passed to ProveDLog.
func (p *DLogProof) Deserialize(curve types.Curve, in []byte) error {
	pointLen := curve.CompressedPointSize()
	scalarLen := curve.ScalarSize()
	if len(in) < 2*pointLen+2*scalarLen {
		return errInputBytesTooShort
	}

	reader := bytes.NewBuffer(in)

	var err error
	p.Public, err = curve.DecodeToPoint(reader.Next(pointLen))
	if err != nil {
		return err
	}
	p.Commitment, err = curve.DecodeToPoint(reader.Next(pointLen))
	if err != nil {
		return err
	}
	p.Challenge, err = curve.DecodeToScalar(reader.Next(scalarLen))
	if err != nil {
		return err
	}
	p.Response, err = curve.DecodeToScalar(reader.Next(scalarLen))
	return err
}

// Serialize encodes the proof.
func (p *PedersenProof) Serialize() []byte {
	b := append(p.Commitment.Encode(), p.A.Encode()...)
	b = append(b, p.Challenge.Encode()...)
	b = append(b, p.Z1.Encode()...)
	b = append(b, p.Z2.Encode()...)
	return b
}

// Deserialize decodes the proof for the given curve.
func (p *PedersenProof) Deserialize(curve types.Curve, in []byte) error {
	pointLen := curve.CompressedPointSize()
	scalarLen := curve.ScalarSize()
	if len(in) < 2*pointLen+3*scalarLen {
		return errInputBytesTooShort
	}

	reader := bytes.NewBuffer(in)

	var err error
	p.Commitment, err = curve.DecodeToPoint(reader.Next(pointLen))
	if err != nil {
		return err
	}
	p.A, err = curve.DecodeToPoint(reader.Next(pointLen))
	if err != nil {
		return err
	}
	p.Challenge, err = curve.DecodeToScalar(reader.Next(scalarLen))
	if err != nil {
		return err
	}
	p.Z1, err = curve.DecodeToScalar(reader.Next(scalarLen))
	if err != nil {
		return err
	}
	p.Z2, err = curve.DecodeToScalar(reader.Next(scalarLen))
	return err
}

// Serialize encodes the proof.
func (p *PedersenBlindingProof) Serialize() []byte {
	b := append(p.Value.Encode(), p.Commitment.Encode()...)
	b = append(b, p.A.Encode()...)
	b = append(b, p.Challenge.Encode()...)
	b = append(b, p.Z.Encode()...)
	return b
}

// Deserialize decodes the proof for the given curve.
func (p *PedersenBlindingProof) Deserialize(curve types.Curve, in []byte) error {
	pointLen := curve.CompressedPointSize()
	scalarLen := curve.ScalarSize()
	if len(in) < 2*pointLen+3*scalarLen {
		return errInputBytesTooShort
	}

	reader := bytes.NewBuffer(in)

	var err error
	p.Value, err = curve.DecodeToScalar(reader.Next(scalarLen))
	if err != nil {
		return err
	}
	p.Commitment, err = curve.DecodeToPoint(reader.Next(pointLen))
	if err != nil {
		return err
	}
	p.A, err = curve.DecodeToPoint(reader.Next(pointLen))
	if err != nil {
		return err
	}
	p.Challenge, err = curve.DecodeToScalar(reader.Next(scalarLen))
	if err != nil {
		return err
	}
	p.Z, err = curve.DecodeToScalar(reader.Next(scalarLen))
	return err
}

// Serialize encodes the proof.
func (p *HomoElGamalProof) Serialize() []byte {
	b := append(p.T.Encode(), p.A3.Encode()...)
	b = append(b, p.Challenge.Encode()...)
	b = append(b, p.Z1.Encode()...)
	b = append(b, p.Z2.Encode()...)
	return b
}

// Deserialize decodes the proof for the given curve.
func (p *HomoElGamalProof) Deserialize(curve types.Curve, in []byte) error {
	pointLen := curve.CompressedPointSize()
	scalarLen := curve.ScalarSize()
	if len(in) < 2*pointLen+3*scalarLen {
		return errInputBytesTooShort
	}

	reader := bytes.NewBuffer(in)

	var err error
	p.T, err = curve.DecodeToPoint(reader.Next(pointLen))
	if err != nil {
		return err
	}
	p.A3, err = curve.DecodeToPoint(reader.Next(pointLen))
	if err != nil {
		return err
	}
	p.Challenge, err = curve.DecodeToScalar(reader.Next(scalarLen))
	if err != nil {
		return err
	}
	p.Z1, err = curve.DecodeToScalar(reader.Next(scalarLen))
	if err != nil {
		return err
	}
	p.Z2, err = curve.DecodeToScalar(reader.Next(scalarLen))
	return err
}

// Serialize encodes the proof.
func (p *LDEIProof) Serialize() []byte {
	// WARN: this assumes fewer than 256 generators.
	b := []byte{byte(len(p.A))}
	for _, a := range p.A {
		b = append(b, a.Encode()...)
	}

	b = append(b, p.Challenge.Encode()...)

	// WARN: this assumes a response polynomial with fewer than 256
	// coefficients.
	coeffs := p.Z.Coefficients()
	b = append(b, byte(len(coeffs)))
	for _, c := range coeffs {
		b = append(b, c.Encode()...)
	}
	return b
}

// Deserialize decodes the proof for the given curve.
func (p *LDEIProof) Deserialize(curve types.Curve, in []byte) error {
	pointLen := curve.CompressedPointSize()
	scalarLen := curve.ScalarSize()

	reader := bytes.NewBuffer(in)
	if reader.Len() < 1 {
		return errInputBytesTooShort
	}
	aLen := int(reader.Next(1)[0])
	if reader.Len() < aLen*pointLen+scalarLen {
		return errInputBytesTooShort
	}

	p.A = make([]types.Point, aLen)
	var err error
	for i := 0; i < aLen; i++ {
		p.A[i], err = curve.DecodeToPoint(reader.Next(pointLen))
		if err != nil {
			return err
		}
	}

	p.Challenge, err = curve.DecodeToScalar(reader.Next(scalarLen))
	if err != nil {
		return err
	}

	if reader.Len() < 1 {
		return errInputBytesTooShort
	}
	coeffsLen := int(reader.Next(1)[0])
	if reader.Len() < coeffsLen*scalarLen {
		return errInputBytesTooShort
	}

	coeffs := make([]types.Scalar, coeffsLen)
	for i := 0; i < coeffsLen; i++ {
		coeffs[i], err = curve.DecodeToScalar(reader.Next(scalarLen))
		if err != nil {
			return err
		}
	}
	p.Z = polynomial.New(curve, coeffs)
	return nil
}
