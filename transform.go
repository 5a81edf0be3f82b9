// seehuhn.de/go/cellgrid - integer scan conversion on a cell grid
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cellgrid

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// OpKind identifies an elementary affine transformation.
type OpKind int

// These are the supported elementary transformations.
const (
	OpTranslate OpKind = iota // move by (X, Y)
	OpScale                   // scale by X horizontally and Y vertically
	OpRotate                  // rotate counter-clockwise by X degrees
	OpMirror                  // point reflection at the origin
)

func (k OpKind) String() string {
	switch k {
	case OpTranslate:
		return "translate"
	case OpScale:
		return "scale"
	case OpRotate:
		return "rotate"
	case OpMirror:
		return "mirror"
	default:
		return "unknown"
	}
}

// Op is an elementary affine transformation.
type Op struct {
	Kind OpKind
	X, Y float64
}

// Matrix returns the matrix of the elementary transformation.
func (op Op) Matrix() matrix.Matrix {
	switch op.Kind {
	case OpTranslate:
		return matrix.Matrix{1, 0, 0, 1, op.X, op.Y}
	case OpScale:
		return matrix.Scale(op.X, op.Y)
	case OpRotate:
		return matrix.RotateDeg(op.X)
	case OpMirror:
		return matrix.Scale(-1, -1)
	default:
		return matrix.Identity
	}
}

// Transform is a sequence of elementary transformations.
//
// The operations are composed the way a model matrix is built up by
// successive right-multiplication: the operation added last is the first
// one applied to the vertices.  For example, after
//
//	t.Translate(5, 0).Rotate(90)
//
// a vertex is first rotated about the origin and then moved to the right.
//
// The zero value is the identity transformation.
type Transform struct {
	Ops []Op
}

// Translate appends a translation by (dx, dy).
func (t *Transform) Translate(dx, dy float64) *Transform {
	t.Ops = append(t.Ops, Op{Kind: OpTranslate, X: dx, Y: dy})
	return t
}

// Scale appends a scaling by sx horizontally and sy vertically.
func (t *Transform) Scale(sx, sy float64) *Transform {
	t.Ops = append(t.Ops, Op{Kind: OpScale, X: sx, Y: sy})
	return t
}

// Rotate appends a counter-clockwise rotation by deg degrees.
func (t *Transform) Rotate(deg float64) *Transform {
	t.Ops = append(t.Ops, Op{Kind: OpRotate, X: deg})
	return t
}

// Mirror appends a reflection at the origin.
func (t *Transform) Mirror() *Transform {
	t.Ops = append(t.Ops, Op{Kind: OpMirror})
	return t
}

// Matrix returns the combined transformation matrix.
func (t *Transform) Matrix() matrix.Matrix {
	M := matrix.Identity
	for _, op := range t.Ops {
		M = op.Matrix().Mul(M)
	}
	return M
}

// applyMatrix maps v through M.
func applyMatrix(M matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: M[0]*v.X + M[2]*v.Y + M[4],
		Y: M[1]*v.X + M[3]*v.Y + M[5],
	}
}

// toCell rounds v to the nearest cell, halves away from zero.
func toCell(v vec.Vec2) Point {
	return Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// transformPoint maps the cell p through M and rounds the result.
func transformPoint(M matrix.Matrix, p Point) Point {
	return toCell(applyMatrix(M, vec.Vec2{X: float64(p.X), Y: float64(p.Y)}))
}

// transformRadius scales r by the square root of the area scaling of M.
func transformRadius(M matrix.Matrix, r int) int {
	det := M[0]*M[3] - M[1]*M[2]
	return int(math.Round(float64(r) * math.Sqrt(math.Abs(det))))
}

// Apply maps p through the transformation and rounds the result to the
// nearest cell.
func (t *Transform) Apply(p Point) Point {
	return transformPoint(t.Matrix(), p)
}
