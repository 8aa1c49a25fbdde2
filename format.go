package vector

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// SafeFormat implements redact.SafeFormatter. Each live value is printed
// followed by a single space, so three values render as "a b c ".
// Values are treated as unsafe and are redacted unless T says otherwise.
func (v *Vector[T]) SafeFormat(s redact.SafePrinter, _ rune) {
	for i := 0; i < v.Len(); i++ {
		s.Print(v.buf[i])
		s.SafeRune(' ')
	}
}

// String returns the values in index order, each followed by a space. Values
// are printed as fmt.Print would, with no redaction markers or escaping.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	for i := 0; i < v.Len(); i++ {
		fmt.Fprint(&sb, v.buf[i])
		sb.WriteByte(' ')
	}
	return sb.String()
}

// WriteTo implements io.WriterTo with the same text as String.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())
	return int64(n), errors.Wrap(err, "write vector")
}
