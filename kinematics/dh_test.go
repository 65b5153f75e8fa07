package kinematics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinematics/kinematics"
	"github.com/katalvlaran/kinematics/matrix"
)

func TestDHTransform_EmptyChainIsIdentity(t *testing.T) {
	t.Parallel()

	requireClose(t, identity4(t), kinematics.DHTransform(nil))
	requireClose(t, identity4(t), kinematics.DHTransform([]kinematics.DHParam{}))
	require.Empty(t, kinematics.DHFrames(nil))
}

func TestDHTransform_SingleLinkIsXTranslation(t *testing.T) {
	t.Parallel()

	got := kinematics.DHTransform([]kinematics.DHParam{{Theta: 0, D: 0, A: 1, Alpha: 0}})
	ok, err := matrix.Equal(kinematics.Translation(1, 0, 0), got, 0)
	require.NoError(t, err)
	require.True(t, ok, "got:\n%v", got)
}

func TestDHJoint_MatchesClosedForm(t *testing.T) {
	t.Parallel()

	// DH joint == RotZ(theta) · Trans(0,0,d) · Trans(a,0,0) · RotX(alpha)
	p := kinematics.DHParam{Theta: 0.6, D: 0.3, A: 1.2, Alpha: -0.9}
	steps := []*matrix.Dense{
		kinematics.RotationZ(p.Theta),
		kinematics.Translation(0, 0, p.D),
		kinematics.Translation(p.A, 0, 0),
		kinematics.RotationX(p.Alpha),
	}
	want := identity4(t)
	for _, s := range steps {
		var err error
		want, err = matrix.Mul(want, s)
		require.NoError(t, err)
	}

	got := kinematics.DHJoint(p)
	requireClose(t, want, got)
	requireHomogeneousRow(t, got)
}

func TestDHTransform_PlanarTwoLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		theta1 float64
		theta2 float64
		want   kinematics.Vec3
	}{
		{"stretched", 0, 0, kinematics.Vec3{2, 0, 0}},
		{"shoulder up", math.Pi / 2, 0, kinematics.Vec3{0, 2, 0}},
		{"elbow up", 0, math.Pi / 2, kinematics.Vec3{1, 1, 0}},
		{"folded", 0, math.Pi, kinematics.Vec3{0, 0, 0}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			T := kinematics.DHTransform([]kinematics.DHParam{
				{Theta: tc.theta1, A: 1},
				{Theta: tc.theta2, A: 1},
			})
			p, err := kinematics.Position(T)
			require.NoError(t, err)
			requireVecClose(t, tc.want, p)
		})
	}
}

func TestDHTransform_OrderMatters(t *testing.T) {
	t.Parallel()

	a := kinematics.DHParam{Theta: 0.4, D: 0.1, A: 0.5, Alpha: math.Pi / 2}
	b := kinematics.DHParam{Theta: -1.2, D: 0.7, A: 0.2, Alpha: 0}

	ab := kinematics.DHTransform([]kinematics.DHParam{a, b})
	want, err := matrix.Mul(kinematics.DHJoint(a), kinematics.DHJoint(b))
	require.NoError(t, err)
	requireClose(t, want, ab)

	ba := kinematics.DHTransform([]kinematics.DHParam{b, a})
	same, err := matrix.Equal(ab, ba, 1e-9)
	require.NoError(t, err)
	require.False(t, same)
}

func TestDHFrames_LastEqualsTransform(t *testing.T) {
	t.Parallel()

	chain := []kinematics.DHParam{
		{Theta: 0.1, D: 0.4, A: 0, Alpha: math.Pi / 2},
		{Theta: 0.2, D: 0, A: 0.5, Alpha: 0},
		{Theta: -0.3, D: 0, A: 0.4, Alpha: 0},
	}
	frames := kinematics.DHFrames(chain)
	require.Len(t, frames, len(chain))
	requireClose(t, kinematics.DHJoint(chain[0]), frames[0])
	requireClose(t, kinematics.DHTransform(chain), frames[len(frames)-1])

	// frames are independent values
	require.NoError(t, frames[0].Set(0, 0, 42))
	v, err := frames[1].At(0, 0)
	require.NoError(t, err)
	require.NotEqual(t, 42.0, v)
}
