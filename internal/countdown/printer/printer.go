// Package printer emits the tab-separated <integer>\t<text> result
// lines common to both the numbers and letters commands.
package printer

import (
	"fmt"
	"io"
)

// Line writes one "<value>\t<text>" record.
func Line(w io.Writer, value fmt.Stringer, text string) {
	fmt.Fprintf(w, "%s\t%s\n", value, text)
}

// Int writes one "<value>\t<text>" record for a plain int value, used
// by the letters command where the value is a word length rather than
// an arbitrary-precision integer.
func Int(w io.Writer, value int, text string) {
	fmt.Fprintf(w, "%d\t%s\n", value, text)
}
