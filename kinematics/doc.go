// SPDX-License-Identifier: MIT

// Package kinematics builds 4×4 homogeneous transforms for serial robot
// arms on top of matrix.Dense.
//
// What:
//
//   - Axis rotations: RotationX, RotationY, RotationZ (right-handed, radians).
//   - Translation(x, y, z).
//   - EulerRotation(yaw, pitch, roll) = RotationX(roll)·RotationY(pitch)·RotationZ(yaw).
//   - Denavit-Hartenberg: DHJoint for one (theta, d, a, alpha) row,
//     DHTransform for the whole chain base→end-effector, DHFrames for every
//     intermediate frame.
//   - TransformPoint and Position to read results in 3D.
//
// Every builder starts from I₄ and only overwrites the rotation block and the
// translation column, so the last row is always [0 0 0 1]. Builders never
// fail: their shapes are fixed. Functions that accept a caller-supplied
// transform return ErrNotHomogeneous when it is not 4×4.
//
// Quick example (planar two-link arm, unit links):
//
//	t := kinematics.DHTransform([]kinematics.DHParam{
//		{Theta: math.Pi / 2, A: 1},
//		{Theta: 0, A: 1},
//	})
//	p, _ := kinematics.Position(t) // ≈ (0, 2, 0)
package kinematics
