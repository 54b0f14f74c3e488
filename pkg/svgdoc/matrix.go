package svgdoc

import (
	"fmt"
	"math"
	"strings"

	"planedit/pkg/geometry"
)

// Matrix is a 2D affine transform in SVG's column convention:
//
//	⎡ A C E ⎤
//	⎣ B D F ⎦
type Matrix struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

func Identity() Matrix {
	return Matrix{
		A: 1, C: 0, E: 0,
		B: 0, D: 1, F: 0,
	}
}

func Translation(x, y float64) Matrix {
	return Matrix{
		A: 1, C: 0, E: x,
		B: 0, D: 1, F: y,
	}
}

func Scaling(sx, sy float64) Matrix {
	return Matrix{
		A: sx, C: 0, E: 0,
		B: 0, D: sy, F: 0,
	}
}

// Rotation returns a rotation about the origin by the given angle in radians.
func Rotation(rad float64) Matrix {
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return Matrix{
		A: cos, C: -sin, E: 0,
		B: sin, D: cos, F: 0,
	}
}

func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

func (m Matrix) transformX(x, y float64) float64 {
	return m.A*x + m.C*y + m.E
}

func (m Matrix) transformY(x, y float64) float64 {
	return m.B*x + m.D*y + m.F
}

func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.transformX(x, y), m.transformY(x, y)
}

func (m Matrix) Transform(p geometry.Point) geometry.Point {
	x, y := m.TransformPoint(p.X, p.Y)
	return geometry.Point{X: x, Y: y}
}

// String serializes the matrix as an SVG transform attribute value.
func (m Matrix) String() string {
	vals := []float64{m.A, m.B, m.C, m.D, m.E, m.F}
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = FormatNumber(v)
	}
	return "matrix(" + strings.Join(strs, " ") + ")"
}

// ParseTransform parses an SVG transform attribute into a single matrix.
// An empty attribute yields the identity.
func ParseTransform(transform string) (Matrix, error) {
	m := Identity()
	if transform == "" {
		return m, nil
	}

	functions, err := parseFunctions(transform)
	if err != nil {
		return m, fmt.Errorf("parse transform: %w", err)
	}

	for _, function := range functions {
		switch function.Name {
		case "matrix":
			if len(function.Args) != 6 {
				return m, fmt.Errorf("6 args required for matrix transform, got %v", function.Args)
			}
			m = m.Multiply(Matrix{
				A: function.Args[0], C: function.Args[2], E: function.Args[4],
				B: function.Args[1], D: function.Args[3], F: function.Args[5],
			})
		case "translate":
			if len(function.Args) != 2 && len(function.Args) != 1 {
				return m, fmt.Errorf("1 or 2 args required for translate transform, got %v", function.Args)
			}
			y := 0.0
			if len(function.Args) == 2 {
				y = function.Args[1]
			}
			m = m.Multiply(Translation(function.Args[0], y))
		case "scale":
			if len(function.Args) != 2 && len(function.Args) != 1 {
				return m, fmt.Errorf("1 or 2 args required for scale transform, got %v", function.Args)
			}
			sy := function.Args[0]
			if len(function.Args) == 2 {
				sy = function.Args[1]
			}
			m = m.Multiply(Scaling(function.Args[0], sy))
		case "rotate":
			switch len(function.Args) {
			case 1:
				m = m.Multiply(Rotation(function.Args[0] * math.Pi / 180))
			case 3:
				x, y := function.Args[1], function.Args[2]
				m = m.Multiply(Translation(x, y)).
					Multiply(Rotation(function.Args[0] * math.Pi / 180)).
					Multiply(Translation(-x, -y))
			default:
				return m, fmt.Errorf("1 or 3 args required for rotate transform, got %v", function.Args)
			}
		default:
			return m, fmt.Errorf("unknown transform function %q %v", function.Name, function.Args)
		}
	}

	return m, nil
}
