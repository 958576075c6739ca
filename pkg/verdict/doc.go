// Package verdict decodes the free-form text a model returns into a typed
// parity verdict.
//
// Decoding never fails with a Go error; it always yields one of three outcomes:
//
//   - Ok: valid JSON object with isEven (bool), confidence (number) and
//     reasoning (string), plus vibe (string) when the schema requires it.
//   - SyntaxInvalid: the text is not JSON. Callers may recover from this.
//   - StructureInvalid: the text is JSON but has the wrong shape. This also
//     implements error, because it is not recoverable.
//
// Example:
//
//	switch out := verdict.Decode(content, verdict.Schema{}).(type) {
//	case verdict.Ok:
//	    use(out.Reply)
//	case verdict.SyntaxInvalid:
//	    fallback()
//	case verdict.StructureInvalid:
//	    return out
//	}
package verdict
