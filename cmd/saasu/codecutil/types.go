package codecutil

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/saasukit/saasu/schema"
)

// ListTypes writes the registered types, their identifier placement and their number of fields.
func ListTypes(w io.Writer, reg *schema.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "TYPE\tPLACEMENT\tFIELDS")
	for _, d := range reg.Descriptors() {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", d.Name(), d.Placement(), d.NumField())
	}

	return errors.WithStack(tw.Flush())
}
