package smooth

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
)

// ComponentSizes computes, for every cell, the size of its maximal same-label
// connected patch under the given connectivity. One flood fill per patch with
// an explicit stack; the size annotation is transient and consumed by the
// smoothing merge.
func ComponentSizes(r *Raster, conn Connectivity) ([]int, error) {
	offsets, err := conn.offsets()
	if err != nil {
		return nil, err
	}

	sizes := make([]int, len(r.Labels))
	visited := make([]bool, len(r.Labels))
	var stack []int
	var patch []int

	progressBar := progressbar.Default(int64(r.Height), "Sizing patches")

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			start := r.index(x, y)
			if visited[start] {
				continue
			}

			label := r.Labels[start]
			stack = append(stack[:0], start)
			patch = patch[:0]
			visited[start] = true

			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				patch = append(patch, cur)

				cx := cur % r.Width
				cy := cur / r.Width
				for _, off := range offsets {
					nx, ny := cx+off[0], cy+off[1]
					if !r.inBounds(nx, ny) {
						continue
					}
					next := r.index(nx, ny)
					if visited[next] || r.Labels[next] != label {
						continue
					}
					visited[next] = true
					stack = append(stack, next)
				}
			}

			for _, cell := range patch {
				sizes[cell] = len(patch)
			}
		}
		progressBar.Add(1)
	}
	fmt.Println()

	return sizes, nil
}
