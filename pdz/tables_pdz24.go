// SPDX-License-Identifier: MIT

package pdz

// Record-type ids assigned by the positional pdz24 framer. The legacy
// format has no type tags on disk.
const (
	pdz24FileHeaderType uint16 = 0
	pdz24SpectrumType   uint16 = 1
)

// pdz24Records is the record schema table of the legacy pdz24 dialect. The
// vendor never documented this layout; the table covers the 6-byte
// positional file header and a conservative reconstruction of the spectrum
// block: the num_channels count, a handful of acquisition scalars and skip
// regions for the undocumented remainder. Samples are signed 4-byte
// integers, unlike pdz25.
var pdz24Records = map[uint16]RecordSchema{
	pdz24FileHeaderType: {Name: "File Header", Fields: []FieldSchema{
		U16("version"),
		U32("data_length"),
	}},
	pdz24SpectrumType: {Name: "XRF Spectrum", Fields: []FieldSchema{
		U16("num_channels"),
		F64("ev_per_channel"),
		Skip(10), // undocumented acquisition configuration
		F32("live_time"),
		F32("raw_counts"),
		F32("valid_counts"),
		F32("tube_voltage"),
		F32("tube_current"),
		Skip(26), // undocumented region preceding the sample array
		SignedSamples("spectrum_data", "num_channels"),
	}},
}
