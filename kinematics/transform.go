// SPDX-License-Identifier: MIT

package kinematics

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/kinematics/matrix"
)

// Size is the dimension of every homogeneous transform in this package.
const Size = 4

// ErrNotHomogeneous indicates a transform argument that is not 4×4.
var ErrNotHomogeneous = errors.New("kinematics: transform must be 4x4")

// Vec3 is a point or direction in 3D space.
type Vec3 [3]float64

// identity returns a fresh I₄.
func identity() *matrix.Dense {
	m, err := matrix.NewIdentity(Size)
	if err != nil {
		panic(fmt.Sprintf("kinematics: identity: %v", err)) // unreachable for Size > 0
	}

	return m
}

// mustSet writes a cell whose indices are compile-time constants.
func mustSet(m *matrix.Dense, i, j int, v float64) {
	if err := m.Set(i, j, v); err != nil {
		panic(fmt.Sprintf("kinematics: set: %v", err))
	}
}

// mustMul multiplies two 4×4 transforms built by this package.
func mustMul(a, b *matrix.Dense) *matrix.Dense {
	p, err := matrix.Mul(a, b)
	if err != nil {
		panic(fmt.Sprintf("kinematics: mul: %v", err))
	}

	return p
}

// RotationX returns the rotation by angle (radians) about the X axis.
//
//	[1  0   0  0]
//	[0  c  -s  0]
//	[0  s   c  0]
//	[0  0   0  1]
func RotationX(angle float64) *matrix.Dense {
	s, c := math.Sincos(angle)
	m := identity()
	mustSet(m, 1, 1, c)
	mustSet(m, 1, 2, -s)
	mustSet(m, 2, 1, s)
	mustSet(m, 2, 2, c)

	return m
}

// RotationY returns the rotation by angle (radians) about the Y axis.
// The +sin sits at [0,2] and -sin at [2,0].
//
//	[ c  0  s  0]
//	[ 0  1  0  0]
//	[-s  0  c  0]
//	[ 0  0  0  1]
func RotationY(angle float64) *matrix.Dense {
	s, c := math.Sincos(angle)
	m := identity()
	mustSet(m, 0, 0, c)
	mustSet(m, 0, 2, s)
	mustSet(m, 2, 0, -s)
	mustSet(m, 2, 2, c)

	return m
}

// RotationZ returns the rotation by angle (radians) about the Z axis.
//
//	[c  -s  0  0]
//	[s   c  0  0]
//	[0   0  1  0]
//	[0   0  0  1]
func RotationZ(angle float64) *matrix.Dense {
	s, c := math.Sincos(angle)
	m := identity()
	mustSet(m, 0, 0, c)
	mustSet(m, 0, 1, -s)
	mustSet(m, 1, 0, s)
	mustSet(m, 1, 1, c)

	return m
}

// Translation returns I₄ with (x, y, z) in column 3.
func Translation(x, y, z float64) *matrix.Dense {
	m := identity()
	mustSet(m, 0, 3, x)
	mustSet(m, 1, 3, y)
	mustSet(m, 2, 3, z)

	return m
}

// EulerRotation composes RotationX(roll)·RotationY(pitch)·RotationZ(yaw),
// multiplied left to right in that fixed order. Applied to a column vector
// on the right, yaw acts first, then pitch, then roll.
func EulerRotation(yaw, pitch, roll float64) *matrix.Dense {
	return mustMul(mustMul(RotationX(roll), RotationY(pitch)), RotationZ(yaw))
}

// validateTransform accepts only non-nil 4×4 matrices.
func validateTransform(t matrix.Matrix) error {
	if err := matrix.ValidateNotNil(t); err != nil {
		return err
	}
	if err := matrix.ValidateSquare(t); err != nil || t.Rows() != Size {
		return fmt.Errorf("%w: got %dx%d", ErrNotHomogeneous, t.Rows(), t.Cols())
	}

	return nil
}

// TransformPoint applies t to the homogeneous point (p, 1) and returns the
// first three coordinates of the result. No perspective divide is applied.
//
// Errors: matrix.ErrNilMatrix, ErrNotHomogeneous.
func TransformPoint(t matrix.Matrix, p Vec3) (Vec3, error) {
	if err := validateTransform(t); err != nil {
		return Vec3{}, fmt.Errorf("TransformPoint: %w", err)
	}
	y, err := matrix.MatVec(t, []float64{p[0], p[1], p[2], 1})
	if err != nil {
		return Vec3{}, fmt.Errorf("TransformPoint: %w", err)
	}

	return Vec3{y[0], y[1], y[2]}, nil
}

// Position returns the translation column of t, i.e. where t sends the origin.
func Position(t matrix.Matrix) (Vec3, error) {
	if err := validateTransform(t); err != nil {
		return Vec3{}, fmt.Errorf("Position: %w", err)
	}
	var p Vec3
	for i := range p {
		v, err := t.At(i, Size-1)
		if err != nil {
			return Vec3{}, fmt.Errorf("Position: %w", err)
		}
		p[i] = v
	}

	return p, nil
}
