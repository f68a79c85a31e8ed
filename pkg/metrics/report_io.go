package metrics

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/meshload/pkg/accumulator"
	da "github.com/lintang-b-s/meshload/pkg/datastructure"
)

var (
	ErrInvalidReportFormat = errors.New("metrics: invalid report format")
)

// WriteToFile stores the loads as "from to load" lines after a count header.
// Paths ending in .bz2 are bzip2 compressed.
func (r *Report) WriteToFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	var out io.WriteCloser = nopCloser{f}
	if strings.HasSuffix(filename, ".bz2") {
		out, err = bzip2.NewWriter(f, &bzip2.WriterConfig{})
		if err != nil {
			f.Close()
			return err
		}
	}

	if err := writeLoads(out, r.loads); err != nil {
		out.Close()
		f.Close()
		return err
	}
	if err := out.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// maxPreallocLoads bounds the capacity taken from a report header.
const maxPreallocLoads = 1 << 16

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func writeLoads(out io.Writer, loads []accumulator.EdgeLoad) error {
	w := bufio.NewWriter(out)
	if _, err := fmt.Fprintf(w, "%d\n", len(loads)); err != nil {
		return err
	}
	for _, el := range loads {
		loadF := strconv.FormatFloat(el.Load, 'f', -1, 64)
		if _, err := fmt.Fprintf(w, "%s %s %s\n", el.Edge.From, el.Edge.To, loadF); err != nil {
			return err
		}
	}
	return w.Flush()
}

func ReadFromFile(filename string) ([]accumulator.EdgeLoad, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var in io.Reader = f
	if strings.HasSuffix(filename, ".bz2") {
		bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		in = bz
	}

	br := bufio.NewReader(in)
	readLine := func() (string, error) {
		line, err := br.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	line, err := readLine()
	if err != nil {
		return nil, err
	}
	numLoads, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || numLoads < 0 {
		return nil, fmt.Errorf("%w: header %q", ErrInvalidReportFormat, line)
	}

	loads := make([]accumulator.EdgeLoad, 0, min(numLoads, maxPreallocLoads))
	for i := 0; i < numLoads; i++ {
		line, err = readLine()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: header announces %d loads, found %d", ErrInvalidReportFormat, numLoads, i)
		}
		if err != nil {
			return nil, err
		}
		parts := strings.Fields(line)
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidReportFormat, i+2)
		}
		from, err := da.ParseNode(parts[0])
		if err != nil {
			return nil, err
		}
		to, err := da.ParseNode(parts[1])
		if err != nil {
			return nil, err
		}
		load, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, err
		}
		loads = append(loads, accumulator.EdgeLoad{Edge: da.NewEdge(from, to), Load: load})
	}
	return loads, nil
}
