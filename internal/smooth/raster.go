package smooth

import "fmt"

// Connectivity selects the neighborhood graph used for patch sizing.
type Connectivity int

const (
	// Connectivity4 links orthogonal neighbors only.
	Connectivity4 Connectivity = 4
	// Connectivity8 links orthogonal and diagonal neighbors.
	Connectivity8 Connectivity = 8
)

var offsets4 = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

var offsets8 = [][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

func (c Connectivity) offsets() ([][2]int, error) {
	switch c {
	case Connectivity4:
		return offsets4, nil
	case Connectivity8:
		return offsets8, nil
	default:
		return nil, fmt.Errorf("connectivity must be 4 or 8, got %d", int(c))
	}
}

// Raster is a row-major 2-D grid of class labels.
type Raster struct {
	Width  int
	Height int
	Labels []int
}

func NewRaster(width, height int, labels []int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster dimensions must be positive, got %dx%d", width, height)
	}
	if len(labels) != width*height {
		return nil, fmt.Errorf("raster %dx%d needs %d labels, got %d", width, height, width*height, len(labels))
	}
	return &Raster{Width: width, Height: height, Labels: labels}, nil
}

func (r *Raster) index(x, y int) int {
	return y*r.Width + x
}

func (r *Raster) At(x, y int) int {
	return r.Labels[r.index(x, y)]
}

func (r *Raster) inBounds(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}
