package codecutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/saasukit/saasu/schema"
	"github.com/saasukit/saasu/xmlcodec"
	"golang.org/x/sync/errgroup"
)

// ScanResult lists the undeclared fields found in a document.
type ScanResult struct {
	Path  string
	Type  string
	Extra []string
}

// Scan decodes the given files concurrently, running at most jobs decoders at a time,
// and returns the undeclared fields found in each of them, in the order of paths.
// If d is nil, the type of each document is detected from its root element.
// The first file that cannot be read or decoded stops the scan.
func Scan(ctx context.Context, paths []string, jobs int, reg *schema.Registry, d *schema.Descriptor, dec *xmlcodec.Decoder) ([]ScanResult, error) {
	if jobs <= 0 {
		jobs = 1
	}

	results := make([]ScanResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return errors.WithStack(err)
			}

			e, err := decode(data, reg, d, dec)
			if err != nil {
				return errors.Wrapf(err, "%s", path)
			}

			results[i] = ScanResult{
				Path:  path,
				Type:  e.Descriptor().TypeName(),
				Extra: e.Extra().Names(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// PrintScanResults writes one line per result.
func PrintScanResults(w io.Writer, results []ScanResult) error {
	for _, r := range results {
		extra := "no extra data"
		if len(r.Extra) > 0 {
			extra = strings.Join(r.Extra, ", ")
		}

		if _, err := fmt.Fprintf(w, "%s (%s): %s\n", r.Path, r.Type, extra); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
