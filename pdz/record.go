// SPDX-License-Identifier: MIT

package pdz

import "go.uber.org/zap"

// decodeRecord decodes one framed record against the dialect's schema
// table. A record type without a schema entry decodes to an empty field
// map, which is still a successful decode. Fields are walked in declaration
// order with a running offset; decoding stops without failing as soon as
// the cursor reaches the end of the payload or a field reports a bounds
// failure, and the fields decoded before the stopping point are kept.
func decodeRecord(rec RawRecord, table map[uint16]RecordSchema, log *zap.Logger) *Fields {
	result := NewFields()

	schema, ok := table[rec.Type]
	if !ok {
		return result
	}

	ctx := newDecodeContext(rec.Data)
	for _, field := range schema.Fields {
		if ctx.done() {
			log.Debug("reached end of record data",
				zap.String("record", schema.Name),
				zap.String("field", field.Name))
			break
		}

		if field.Kind == KindGroup {
			items, complete := decodeGroup(field, ctx, result, log)
			if len(items) > 0 {
				result.Set(field.Name, items)
			}
			if !complete {
				break
			}
			continue
		}

		value, err := decodeField(field, ctx, result)
		if err != nil {
			log.Debug("stopping record decode",
				zap.String("record", schema.Name),
				zap.Error(err))
			break
		}
		if value != nil {
			result.Set(field.Name, value)
		}
	}

	return result
}
