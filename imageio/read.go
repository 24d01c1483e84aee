package imageio

import (
	"bufio"
	"fmt"
	"io"
)

// ReadPPMIntegers parses a "P3" PPM stream back into its raw 0-255
// integer triples (row-major, top row first), for round-trip testing
// against what WritePPM emitted. It does not reconstruct a Framebuffer
// since the tone map is lossy.
func ReadPPMIntegers(r io.Reader) (width, height int, triples [][3]int, err error) {
	br := bufio.NewReader(r)
	var magic string
	var maxVal int
	if _, err = fmt.Fscan(br, &magic, &width, &height, &maxVal); err != nil {
		return 0, 0, nil, err
	}
	if magic != "P3" {
		return 0, 0, nil, fmt.Errorf("imageio: unsupported PPM magic %q", magic)
	}

	triples = make([][3]int, width*height)
	for i := range triples {
		var r, g, b int
		if _, err = fmt.Fscan(br, &r, &g, &b); err != nil {
			return 0, 0, nil, fmt.Errorf("imageio: pixel %d: %w", i, err)
		}
		triples[i] = [3]int{r, g, b}
	}
	return width, height, triples, nil
}
