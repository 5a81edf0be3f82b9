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
	"testing"

	"seehuhn.de/go/geom/matrix"
)

func TestTransformApply(t *testing.T) {
	cases := []struct {
		name string
		t    *Transform
		in   Point
		want Point
	}{
		{"identity", &Transform{}, Point{3, -4}, Point{3, -4}},
		{"translate", new(Transform).Translate(3, -2), Point{1, 1}, Point{4, -1}},
		{"scale", new(Transform).Scale(2, -3), Point{1, 1}, Point{2, -3}},
		{"rotate", new(Transform).Rotate(90), Point{2, 0}, Point{0, 2}},
		{"rotate_negative", new(Transform).Rotate(-90), Point{2, 0}, Point{0, -2}},
		{"mirror", new(Transform).Mirror(), Point{3, -5}, Point{-3, 5}},
		{"round_half_away", new(Transform).Translate(0.5, -0.5), Point{0, 0}, Point{1, -1}},
		{"rotate_45", new(Transform).Rotate(45), Point{4, 0}, Point{3, 3}},

		// the operation added last is applied first
		{"translate_rotate", new(Transform).Translate(8, 0).Rotate(90), Point{1, 0}, Point{8, 1}},
		{"rotate_translate", new(Transform).Rotate(90).Translate(8, 0), Point{1, 0}, Point{0, 9}},
		{"scale_translate", new(Transform).Scale(2, 2).Translate(1, 1), Point{1, 1}, Point{4, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.t.Apply(tc.in); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTransformMatrix(t *testing.T) {
	var tr Transform
	if M := tr.Matrix(); M != matrix.Identity {
		t.Errorf("zero transform: got %v", M)
	}

	tr.Scale(2, 3)
	if M, want := tr.Matrix(), (matrix.Matrix{2, 0, 0, 3, 0, 0}); M != want {
		t.Errorf("scale: got %v, want %v", M, want)
	}

	tr.Translate(1, -1)
	if M, want := tr.Matrix(), (matrix.Matrix{2, 0, 0, 3, 2, -3}); M != want {
		t.Errorf("scale after translate: got %v, want %v", M, want)
	}
}

func TestTransformRadius(t *testing.T) {
	cases := []struct {
		t    *Transform
		r    int
		want int
	}{
		{&Transform{}, 5, 5},
		{new(Transform).Scale(2, 2), 5, 10},
		{new(Transform).Scale(2, 0.5), 5, 5},
		{new(Transform).Rotate(33).Translate(4, 4), 7, 7},
		{new(Transform).Mirror(), 3, 3},
	}
	for i, tc := range cases {
		if got := transformRadius(tc.t.Matrix(), tc.r); got != tc.want {
			t.Errorf("%d: got %d, want %d", i, got, tc.want)
		}
	}
}

func TestOpKindString(t *testing.T) {
	for k, want := range map[OpKind]string{
		OpTranslate: "translate",
		OpScale:     "scale",
		OpRotate:    "rotate",
		OpMirror:    "mirror",
		OpKind(99):  "unknown",
	} {
		if got := k.String(); got != want {
			t.Errorf("%d: got %q, want %q", int(k), got, want)
		}
	}
}
