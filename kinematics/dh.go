// SPDX-License-Identifier: MIT

package kinematics

import (
	"math"

	"github.com/katalvlaran/kinematics/matrix"
)

// DHParam is one row of a Denavit-Hartenberg table (standard convention).
//
//   - Theta: rotation about the previous z axis (radians).
//   - D: offset along the previous z axis.
//   - A: link length along the new x axis.
//   - Alpha: twist about the new x axis (radians).
type DHParam struct {
	Theta float64
	D     float64
	A     float64
	Alpha float64
}

// DHJoint returns the transform from frame i-1 to frame i for one joint:
//
//	[cθ  -sθ·cα   sθ·sα  a·cθ]
//	[sθ   cθ·cα  -cθ·sα  a·sθ]
//	[ 0      sα      cα     d]
//	[ 0       0       0     1]
func DHJoint(p DHParam) *matrix.Dense {
	st, ct := math.Sincos(p.Theta)
	sa, ca := math.Sincos(p.Alpha)

	m := identity()
	mustSet(m, 0, 0, ct)
	mustSet(m, 0, 1, -st*ca)
	mustSet(m, 0, 2, st*sa)
	mustSet(m, 0, 3, p.A*ct)

	mustSet(m, 1, 0, st)
	mustSet(m, 1, 1, ct*ca)
	mustSet(m, 1, 2, -ct*sa)
	mustSet(m, 1, 3, p.A*st)

	mustSet(m, 2, 1, sa)
	mustSet(m, 2, 2, ca)
	mustSet(m, 2, 3, p.D)

	return m
}

// DHTransform returns the end-effector pose in the base frame for a chain
// listed base first: T = I; T ← T·DHJoint(p) for each p in order.
// An empty chain yields I₄.
func DHTransform(params []DHParam) *matrix.Dense {
	t := identity()
	for _, p := range params {
		t = mustMul(t, DHJoint(p))
	}

	return t
}

// DHFrames returns the running product after each joint: frames[i] is the
// pose of joint frame i+1 in the base frame, and the last element equals
// DHTransform(params). An empty chain yields an empty slice.
func DHFrames(params []DHParam) []*matrix.Dense {
	frames := make([]*matrix.Dense, 0, len(params))
	t := identity()
	for _, p := range params {
		t = mustMul(t, DHJoint(p))
		frames = append(frames, t)
	}

	return frames
}
