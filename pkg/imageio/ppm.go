package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrBadPPM is returned when a file is not a well-formed plain (P3) PPM
var ErrBadPPM = errors.New("imageio: malformed P3 pixmap")

// WritePPM serializes fb as plain-text P3, top row first
func WritePPM(w io.Writer, fb *Framebuffer, tone ToneMapping) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "P3\n%d %d\n%d\n", fb.Width(), fb.Height(), MaxValue)
	for y := fb.Height() - 1; y >= 0; y-- {
		for x := 0; x < fb.Width(); x++ {
			r, g, b := quantizeColor(fb.At(x, y), tone)
			fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write pixmap: %w", err)
	}
	return nil
}

// SavePPM writes fb to path, truncating any existing file
func SavePPM(path string, fb *Framebuffer, tone ToneMapping) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WritePPM(file, fb, tone); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// PPMImage is a decoded P3 pixmap. Pixels are stored top row first.
type PPMImage struct {
	Width    int
	Height   int
	MaxValue int
	Pixels   [][3]int
}

// At returns the triple at column x of row y, counting rows from the top
func (p *PPMImage) At(x, y int) [3]int {
	return p.Pixels[y*p.Width+x]
}

// ReadPPM parses a plain (P3) pixmap. Comments starting with '#' are skipped.
func ReadPPM(r io.Reader) (*PPMImage, error) {
	scanner := bufio.NewScanner(r)
	var pending []string

	next := func() (string, error) {
		for len(pending) == 0 {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return "", err
				}
				return "", io.ErrUnexpectedEOF
			}
			line := scanner.Text()
			if i := strings.IndexByte(line, '#'); i >= 0 {
				line = line[:i]
			}
			pending = strings.Fields(line)
		}
		word := pending[0]
		pending = pending[1:]
		return word, nil
	}
	nextInt := func(what string) (int, error) {
		word, err := next()
		if err != nil {
			return 0, fmt.Errorf("%w: reading %s: %v", ErrBadPPM, what, err)
		}
		v, err := strconv.Atoi(word)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("%w: invalid %s %q", ErrBadPPM, what, word)
		}
		return v, nil
	}

	magic, err := next()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header: %v", ErrBadPPM, err)
	}
	if magic != "P3" {
		return nil, fmt.Errorf("%w: unexpected magic %q", ErrBadPPM, magic)
	}

	img := &PPMImage{}
	if img.Width, err = nextInt("width"); err != nil {
		return nil, err
	}
	if img.Height, err = nextInt("height"); err != nil {
		return nil, err
	}
	if img.MaxValue, err = nextInt("max value"); err != nil {
		return nil, err
	}

	img.Pixels = make([][3]int, img.Width*img.Height)
	for i := range img.Pixels {
		for c := 0; c < 3; c++ {
			v, err := nextInt("channel")
			if err != nil {
				return nil, fmt.Errorf("pixel %d: %w", i, err)
			}
			if v > img.MaxValue {
				return nil, fmt.Errorf("%w: pixel %d channel %d exceeds max value %d", ErrBadPPM, i, v, img.MaxValue)
			}
			img.Pixels[i][c] = v
		}
	}

	return img, nil
}

// LoadPPM reads a P3 pixmap from path
func LoadPPM(path string) (*PPMImage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pixmap: %w", err)
	}
	defer file.Close()
	return ReadPPM(file)
}
