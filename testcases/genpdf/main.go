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

// Command genpdf writes one PDF file per test case, showing the rasterized
// cells as filled unit squares on top of the cell grid.
package main

import (
	"fmt"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/cellgrid/testcases"
)

const (
	outDir = "testdata/pdf"

	// cellSize is the size of one cell in PDF points.
	cellSize = 8
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	scene := tc.Scene()
	cells, err := scene.Cells()
	if err != nil {
		return err
	}

	bounds := scene.Grid.Bounds()
	size := (bounds.URx - bounds.LLx) * cellSize
	paper := &pdf.Rectangle{
		URx: size,
		URy: size,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Cell coordinates have the origin in the centre of the page and
	// y pointing up, like PDF user space.
	page.Transform(matrix.Matrix{cellSize, 0, 0, cellSize, size / 2, size / 2})

	// light grid lines between the cells
	page.SetStrokeColor(pdfcolor.DeviceGray(0.85))
	page.SetLineWidth(0.05)
	page.SetLineCap(graphics.LineCapButt)
	for v := bounds.LLx; v <= bounds.URx; v++ {
		page.MoveTo(v, bounds.LLy)
		page.LineTo(v, bounds.URy)
		page.MoveTo(bounds.LLx, v)
		page.LineTo(bounds.URx, v)
	}
	page.Stroke()

	// axes
	page.SetStrokeColor(pdfcolor.DeviceGray(0))
	page.SetLineWidth(0.1)
	page.SetLineCap(graphics.LineCapSquare)
	page.MoveTo(bounds.LLx, 0)
	page.LineTo(bounds.URx, 0)
	page.MoveTo(0, bounds.LLy)
	page.LineTo(0, bounds.URy)
	page.Stroke()

	// one filled square per cell, one fill operation per run of cells
	// with the same colour
	for i := 0; i < len(cells); {
		c := cells[i].Color
		page.SetFillColor(pdfcolor.DeviceGray(gray(c)))
		for i < len(cells) && cells[i].Color == c {
			x, y := float64(cells[i].X), float64(cells[i].Y)
			page.Rectangle(x-0.5, y-0.5, 1, 1)
			i++
		}
		page.Fill()
	}

	return page.Close()
}

// gray converts c to a gray level between 0 (black) and 1 (white).
func gray(c color.Color) float64 {
	g := color.GrayModel.Convert(c).(color.Gray)
	return float64(g.Y) / 255
}
