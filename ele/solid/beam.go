// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/felem/ele"
	"github.com/cpmech/felem/mdl/sld"
	"github.com/cpmech/gosl/la"
)

// MassModel selects between the lumped and consistent beam mass matrix.
type MassModel int

const (
	// Lumped mass: M_e = (ρAL/2)·I12.
	Lumped MassModel = iota

	// Consistent mass: the canonical cubic-Hermite mass matrix scaled by
	// ρAL/420, with the torsional diagonal entries scaled by J/A.
	Consistent
)

// condensTol is the absolute pivot tolerance below which a release is
// reported as SINGULAR_CONDENSATION.
const condensTol = 1e-12

// Beam is a 3D Euler-Bernoulli beam with closed-form 12x12 stiffness and
// mass, and static condensation over end releases.
type Beam struct {
	*line
	ele.Meta
	mdl sld.Beam1D
	mm  MassModel

	k [][]float64 // uncondensed 12x12 stiffness, local frame
	m [][]float64 // uncondensed 12x12 mass, local frame
	r []float64   // uncondensed nodal force

	releases [12]bool
	kStar    [][]float64
	mStar    [][]float64
	rStar    []float64
}

// NewBeam constructs a Beam between two nodes. name may be empty, in which
// case a UUID is generated.
func NewBeam(name string, ni, nj ele.Node, mdl sld.Beam1D, mm MassModel) (*Beam, error) {
	if err := mdl.Validate(); err != nil {
		return nil, err
	}

	ln, err := newLine(ni, nj)
	if err != nil {
		return nil, err
	}

	o := &Beam{line: ln, Meta: ele.NewMeta(name), mdl: mdl, mm: mm}
	o.r = make([]float64, 12)
	o.recomputeK()
	o.recomputeM()
	o.StaticCondensation() // no releases set: K*, M*, r* == K, M, r
	return o, nil
}

// recomputeK fills the local 12x12 stiffness, the standard 3D
// Euler-Bernoulli beam matrix in the {ux,uy,uz,rx,ry,rz}_i,j ordering.
// K stays in the local frame; the assembler applies T.
func (o *Beam) recomputeK() {
	kl := la.MatAlloc(12, 12)

	l := o.L
	ll := l * l
	lll := l * ll

	EA := o.mdl.E * o.mdl.A
	EI3 := o.mdl.E * o.mdl.I3
	EI2 := o.mdl.E * o.mdl.I2
	GJ := o.mdl.G() * o.mdl.J

	// axial
	kl[0][0] = EA / l
	kl[0][6] = -EA / l
	kl[6][0] = -EA / l
	kl[6][6] = EA / l

	// bending about local 3 (uy, rz)
	kl[1][1] = 12.0 * EI3 / lll
	kl[1][5] = 6.0 * EI3 / ll
	kl[1][7] = -12.0 * EI3 / lll
	kl[1][11] = 6.0 * EI3 / ll

	kl[5][1] = 6.0 * EI3 / ll
	kl[5][5] = 4.0 * EI3 / l
	kl[5][7] = -6.0 * EI3 / ll
	kl[5][11] = 2.0 * EI3 / l

	kl[7][1] = -12.0 * EI3 / lll
	kl[7][5] = -6.0 * EI3 / ll
	kl[7][7] = 12.0 * EI3 / lll
	kl[7][11] = -6.0 * EI3 / ll

	kl[11][1] = 6.0 * EI3 / ll
	kl[11][5] = 2.0 * EI3 / l
	kl[11][7] = -6.0 * EI3 / ll
	kl[11][11] = 4.0 * EI3 / l

	// bending about local 2 (uz, ry); coupling terms carry the opposite
	// sign of the local-3 pattern
	kl[2][2] = 12.0 * EI2 / lll
	kl[2][4] = -6.0 * EI2 / ll
	kl[2][8] = -12.0 * EI2 / lll
	kl[2][10] = -6.0 * EI2 / ll

	kl[4][2] = -6.0 * EI2 / ll
	kl[4][4] = 4.0 * EI2 / l
	kl[4][8] = 6.0 * EI2 / ll
	kl[4][10] = 2.0 * EI2 / l

	kl[8][2] = -12.0 * EI2 / lll
	kl[8][4] = 6.0 * EI2 / ll
	kl[8][8] = 12.0 * EI2 / lll
	kl[8][10] = 6.0 * EI2 / ll

	kl[10][2] = -6.0 * EI2 / ll
	kl[10][4] = 2.0 * EI2 / l
	kl[10][8] = 6.0 * EI2 / ll
	kl[10][10] = 4.0 * EI2 / l

	// torsion
	kl[3][3] = GJ / l
	kl[3][9] = -GJ / l
	kl[9][3] = -GJ / l
	kl[9][9] = GJ / l

	o.k = kl
}

// recomputeM fills the local 12x12 mass matrix, lumped or consistent.
func (o *Beam) recomputeM() {
	ml := la.MatAlloc(12, 12)
	l := o.L
	ρAL := o.mdl.Rho * o.mdl.A * l

	if o.mm == Lumped {
		for i := 0; i < 12; i++ {
			ml[i][i] = ρAL / 2.0
		}
	} else {
		c := ρAL / 420.0
		ll := l * l
		ml[0][0] = 140 * c
		ml[6][6] = 140 * c
		ml[0][6] = 70 * c
		ml[6][0] = 70 * c

		set := func(i, j int, v float64) {
			ml[i][j] = v
			ml[j][i] = v
		}
		// translational/rotational coupling about local 3 (uy,rz)
		set(1, 1, 156*c)
		set(1, 5, 22*l*c)
		set(1, 7, 54*c)
		set(1, 11, -13*l*c)
		set(5, 5, 4*ll*c)
		set(5, 7, 13*l*c)
		set(5, 11, -3*ll*c)
		set(7, 7, 156*c)
		set(7, 11, -22*l*c)
		set(11, 11, 4*ll*c)

		// translational/rotational coupling about local 2 (uz,ry)
		set(2, 2, 156*c)
		set(2, 4, -22*l*c)
		set(2, 8, 54*c)
		set(2, 10, 13*l*c)
		set(4, 4, 4*ll*c)
		set(4, 8, -13*l*c)
		set(4, 10, -3*ll*c)
		set(8, 8, 156*c)
		set(8, 10, 22*l*c)
		set(10, 10, 4*ll*c)

		// torsion: the axial 140/70 pattern scaled by J/A (ρJL/3, ρJL/6)
		τ := o.mdl.Rho * o.mdl.J * l / 6.0
		ml[3][3] = 2 * τ
		ml[9][9] = 2 * τ
		ml[3][9] = τ
		ml[9][3] = τ
	}

	o.m = ml
}

// SetNodalForce sets the uncondensed local nodal-force vector; len(f) must
// be 12.
func (o *Beam) SetNodalForce(f []float64) error {
	if len(f) != 12 {
		return ele.ErrInvalidParameter("beam: nodal force must have length 12, got %v", len(f))
	}
	copy(o.r, f)
	o.StaticCondensation()
	return nil
}

// SetReleases sets the 12 end-DOF release flags (end i's local DOFs in
// positions 0..5, end j's in 6..11) and re-derives the condensed artifacts
// K*, M*, r*. A release whose pivot K[p,p] is below tolerance is rejected
// with SINGULAR_CONDENSATION and the previous flags are kept.
func (o *Beam) SetReleases(flags [12]bool) error {
	old := o.releases
	o.releases = flags
	if err := o.condense(); err != nil {
		o.releases = old
		return err
	}
	return nil
}

// StaticCondensation recomputes K*, M*, r* from the uncondensed K, M, r for
// the current release flags. The flags were validated when set, so the
// pivot check cannot fire here.
func (o *Beam) StaticCondensation() {
	o.condense()
}

// condense derives K*, M*, r* by applying, for each released DOF p in index
// order (end i's flags 0..5 first, then end j's 6..11), the rank-1 pivot
// subtraction that zeros row/column p while leaving K*[p,p] at its
// pre-condensation value. The uncondensed K, M, r are never touched, and
// the condensed artifacts are replaced only when every pivot is sound.
func (o *Beam) condense() error {
	kStar := copyMat(o.k)
	mStar := copyMat(o.m)
	rStar := append([]float64(nil), o.r...)

	for p := 0; p < 12; p++ {
		if !o.releases[p] {
			continue
		}
		pivot := kStar[p][p]
		if math.Abs(pivot) < condensTol {
			return ele.ErrSingularCondensation("beam: released DOF %d has pivot %v below tolerance", p, pivot)
		}
		mPivot := mStar[p][p]
		rp := rStar[p]
		for i := 0; i < 12; i++ {
			rStar[i] -= rp * kStar[p][i] / pivot
		}
		for i := 0; i < 12; i++ {
			if i == p {
				continue
			}
			for j := 0; j < 12; j++ {
				if j == p {
					continue
				}
				kStar[i][j] -= kStar[i][p] * kStar[p][j] / pivot
				mStar[i][j] -= mStar[i][p] * mStar[p][j] / mPivot
			}
		}
		for i := 0; i < 12; i++ {
			if i == p {
				continue
			}
			kStar[i][p] = 0
			kStar[p][i] = 0
			mStar[i][p] = 0
			mStar[p][i] = 0
		}
	}

	o.kStar, o.mStar, o.rStar = kStar, mStar, rStar
	return nil
}

// ElementForce computes f_e = K_e*·u_e + r_e* using the cached condensed
// artifacts; it does not recompute condensation.
func (o *Beam) ElementForce(ue []float64) ([]float64, error) {
	if len(ue) != 12 {
		return nil, ele.ErrInvalidParameter("beam: displacement vector must have length 12, got %v", len(ue))
	}
	f := make([]float64, 12)
	for i := 0; i < 12; i++ {
		f[i] = o.rStar[i]
		for j := 0; j < 12; j++ {
			f[i] += o.kStar[i][j] * ue[j]
		}
	}
	return f, nil
}

func copyMat(a [][]float64) [][]float64 {
	b := la.MatAlloc(len(a), len(a))
	for i := range a {
		copy(b[i], a[i])
	}
	return b
}

// Dimension reports the geometric dimension: line elements are 1D.
func (o *Beam) Dimension() int { return 1 }

// Dof reports the total exposed DOF count.
func (o *Beam) Dof() int { return 12 }

// Nodes returns the ordered node list.
func (o *Beam) Nodes() []ele.Node { return []ele.Node{o.nodeI, o.nodeJ} }

// Transform returns the 12x12 block-diagonal rotation.
func (o *Beam) Transform() *la.Triplet { return ele.ToTriplet(o.transformDense()) }

// Stiffness returns the condensed 12x12 element stiffness matrix.
func (o *Beam) Stiffness() *la.Triplet { return ele.ToTriplet(o.kStar) }

// Mass returns the condensed 12x12 element mass matrix.
func (o *Beam) Mass() *la.Triplet { return ele.ToTriplet(o.mStar) }

// NodalForce returns the condensed 12x1 nodal force vector.
func (o *Beam) NodalForce() []float64 { return append([]float64(nil), o.rStar...) }

// TotalMass returns ρ·A·L.
func (o *Beam) TotalMass() float64 { return o.mdl.Rho * o.mdl.A * o.L }
