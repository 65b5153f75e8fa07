// Package kinematics is a small toolkit for serial robot arms: dense
// matrices plus the homogeneous transforms that chain joint frames.
//
// 🚀 What is inside?
//
//	• matrix/      — Dense row-major float64 matrix, Add/Sub/Mul/Transpose/
//	                 Scale/Negate/MatVec, identity & zeros, text dump + parser
//	• kinematics/  — 4×4 rotations about X/Y/Z, translation, yaw-pitch-roll
//	                 composition, Denavit-Hartenberg joints and chains
//	• cmd/fk       — prints the end-effector pose of a YAML DH table
//
// ✨ Guarantees
//
//   - Every arithmetic result is a fresh matrix; operands are never mutated.
//   - Shape mismatches are errors (errors.Is(err, matrix.ErrDimensionMismatch)),
//     never panics.
//   - Fixed loop orders: results are reproducible bit for bit.
//
// Quick example:
//
//	t := kinematics.DHTransform([]kinematics.DHParam{
//		{Theta: math.Pi / 2, A: 1},
//		{Theta: -math.Pi / 2, A: 1},
//	})
//	fmt.Print(t) // 4×4 pose, tip at (1, 1, 0)
//
//	go get github.com/katalvlaran/kinematics
package kinematics
