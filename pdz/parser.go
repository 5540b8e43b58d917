// SPDX-License-Identifier: MIT

package pdz

import "go.uber.org/zap"

// Parser decodes one in-memory PDZ file. It is single-threaded and holds no
// shared mutable state; parsing distinct files from separate Parsers may
// run concurrently since the schema tables are immutable.
type Parser struct {
	data    []byte
	dialect Dialect
	table   map[uint16]RecordSchema
	records []RawRecord
	log     *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger attaches a logger for framing and decode diagnostics. The
// default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// NewParser detects the file's dialect and frames its records. Dialect
// detection is the only hard failure; everything downstream degrades to
// partial output.
func NewParser(data []byte, opts ...Option) (*Parser, error) {
	p := &Parser{data: data, log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}

	dialect, err := DetectDialect(data)
	if err != nil {
		return nil, err
	}
	p.dialect = dialect
	p.table = tableFor(dialect)
	p.records = frameRecords(dialect, data, p.table, p.log)
	return p, nil
}

// Dialect returns the detected container dialect.
func (p *Parser) Dialect() Dialect {
	return p.dialect
}

// Records returns the framed records in file order.
func (p *Parser) Records() []RawRecord {
	return p.records
}

// RecordNames returns the framed record names in file order, including
// synthesized names for unrecognized types.
func (p *Parser) RecordNames() []string {
	names := make([]string, len(p.records))
	for i, rec := range p.records {
		names[i] = rec.Name
	}
	return names
}

// Parse decodes every framed record and returns the document. A partially
// decodable file still produces a document; record names that recur appear
// as ordered sequences. A second call rebuilds the document from scratch.
func (p *Parser) Parse() *Document {
	doc := NewDocument()
	for _, rec := range p.records {
		p.log.Debug("parsing record",
			zap.Uint16("type", rec.Type),
			zap.String("name", rec.Name))
		doc.Add(rec.Name, decodeRecord(rec, p.table, p.log))
	}
	return doc
}
