// SPDX-License-Identifier: MIT

package pdz

import "go.uber.org/zap"

// decodeGroup decodes a repeatable group at the context cursor. The repeat
// count is resolved against the parent record's decoded siblings; a count
// of 0 yields no iterations and consumes nothing. Each iteration decodes
// the sub-schema into a fresh Fields so dynamic lengths resolve within that
// iteration only. A sub-field failure drops the partial iteration and ends
// the group; completed iterations are kept along with the bytes they
// consumed. The second return reports whether the group ran to completion.
func decodeGroup(field FieldSchema, ctx *decodeContext, parent *Fields, log *zap.Logger) ([]*Fields, bool) {
	count := field.Repeat.resolve(parent)
	if count == 0 {
		log.Debug("skipping repeatable block with zero repeats",
			zap.String("field", field.Name))
		return nil, true
	}

	items := make([]*Fields, 0, count)
	for i := 0; i < count; i++ {
		iteration := NewFields()
		for _, sub := range field.Fields {
			value, err := decodeField(sub, ctx, iteration)
			if err != nil {
				log.Debug("stopping repeatable block",
					zap.String("field", field.Name),
					zap.Int("iteration", i),
					zap.Error(err))
				return items, false
			}
			if value != nil {
				iteration.Set(sub.Name, value)
			}
		}
		items = append(items, iteration)
	}
	return items, true
}
