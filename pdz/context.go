// SPDX-License-Identifier: MIT

package pdz

// decodeContext tracks the cursor while walking one record's bytes. The
// underlying slice is a read-only view over the file buffer and is never
// mutated or copied.
type decodeContext struct {
	data   []byte
	offset int
}

func newDecodeContext(data []byte) *decodeContext {
	return &decodeContext{data: data}
}

func (ctx *decodeContext) remaining() int {
	return len(ctx.data) - ctx.offset
}

func (ctx *decodeContext) done() bool {
	return ctx.offset >= len(ctx.data)
}

// read returns the next n bytes and advances the cursor. The returned slice
// aliases the record buffer.
func (ctx *decodeContext) read(field string, n int) ([]byte, error) {
	if ctx.offset+n > len(ctx.data) {
		return nil, &InsufficientBytesError{
			Field:     field,
			Required:  n,
			Available: ctx.remaining(),
		}
	}
	out := ctx.data[ctx.offset : ctx.offset+n]
	ctx.offset += n
	return out, nil
}
