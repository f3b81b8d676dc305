// Package answer renders a solved move sequence into the contest's
// answer byte stream: rotation digits, then one block per operation
// naming its selected cell and swap chain, every logical line
// terminated by CRLF.
//
// Grounded on original_source/src/kaitou.rs's ans() function, which
// builds the same four-part structure (rotations, selection count, per-
// operation select+movement blocks) but emits the literal four
// characters "/r/n" instead of a real carriage-return/newline pair —
// spec.md §6.2's worked example (Scenario E) confirms the line
// terminator is meant to be actual CRLF, so Encode fixes that here
// rather than porting the typo.
package answer

import (
	"bytes"
	"fmt"

	"github.com/tilecraft/fragsolve/basis"
)

const crlf = "\r\n"

// Encode renders rotations (one per cell, row-major over a rows x cols
// board) followed by ops into the contest answer format described by
// spec.md §6.2. Panics if len(rotations) != rows*cols.
func Encode(rotations []basis.Rot, rows, cols uint8, ops []basis.Operation) []byte {
	if len(rotations) != int(rows)*int(cols) {
		panic("answer: rotations does not match rows*cols")
	}
	var buf bytes.Buffer

	for _, r := range rotations {
		fmt.Fprintf(&buf, "%d", r.AsNum())
	}
	buf.WriteString(crlf)

	fmt.Fprintf(&buf, "%d%s", len(ops), crlf)

	for _, op := range ops {
		fmt.Fprintf(&buf, "%x%x%s", op.Select[0], op.Select[1], crlf)
		fmt.Fprintf(&buf, "%d%s", len(op.Movements), crlf)
		for _, m := range op.Movements {
			buf.WriteString(m.String())
		}
		buf.WriteString(crlf)
	}

	return buf.Bytes()
}
