// SPDX-License-Identifier: MIT

package pdz

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
)

// spectrumRecordData builds a complete XRF Spectrum (type 3) payload with
// the given samples, laid out field for field against the pdz25 schema.
func spectrumRecordData(samples []uint32) []byte {
	p := (&payload{}).
		u32(1).    // phase_number
		u32(100).  // raw_counts
		u32(90).   // valid_counts
		u32(80).   // valid_counts_in_range
		u32(2).    // reset_counts
		f32(1.5).  // time_since_trigger
		f32(2.5).  // total_packet_time
		f32(0.25). // total_dead
		f32(0.5).  // total_reset
		f32(2.25). // total_live
		f32(40).   // tube_voltage
		f32(10).   // tube_current
		// filters, three fixed iterations
		i16(13).i16(100).
		i16(29).i16(25).
		i16(22).i16(0).
		i16(1).     // filter_wheel_number
		f32(-25).   // detector_temp
		f32(21.5).  // ambient_temp
		i32(-3).    // vacuum
		f32(20).    // ev_per_channel
		i16(1).     // gain_drift_algorithm
		f32(0).     // channel_start
		systime(2024, 3, 2, 5, 7, 8, 9, 123).
		f32(101.5). // atmospheric_pressure
		i16(int16(len(samples))). // channels
		i16(30).    // nose_temp
		i16(1).     // environment
		u32(3).     // illumination_length
		wstr("Air").
		i16(0) // normal_packet_start
	for _, s := range samples {
		p.u32(s)
	}
	return p.bytes()
}

func TestDecodeRecordXRFSpectrum(t *testing.T) {
	rec := RawRecord{Type: 3, Name: "XRF Spectrum", Data: spectrumRecordData([]uint32{10, 20, 30, 40})}

	fields := decodeRecord(rec, pdz25Records, zap.NewNop())

	if got := fields.Int("channels"); got != 4 {
		t.Errorf("channels = %d, want 4", got)
	}
	spectrum, _ := fields.Get("spectrum_data")
	if !reflect.DeepEqual(spectrum, []uint32{10, 20, 30, 40}) {
		t.Errorf("spectrum_data = %v, want [10 20 30 40]", spectrum)
	}
	if got := fields.Text("acquisition_date_time"); got != "2024-03-05 07:08:09" {
		t.Errorf("acquisition_date_time = %q", got)
	}
	if got := fields.Text("illumination"); got != "Air" {
		t.Errorf("illumination = %q", got)
	}
	filters := fields.Groups("filters")
	if len(filters) != 3 {
		t.Fatalf("len(filters) = %d, want 3", len(filters))
	}
	if filters[0].Int("filter_element") != 13 {
		t.Errorf("filters[0].filter_element = %d, want 13", filters[0].Int("filter_element"))
	}
	if got := fields.Float64("tube_voltage"); got != 40 {
		t.Errorf("tube_voltage = %v, want 40", got)
	}
	if v, _ := fields.Get("vacuum"); v != int64(-3) {
		t.Errorf("vacuum = %v, want -3", v)
	}
}

func TestDecodeRecordFieldOrder(t *testing.T) {
	rec := RawRecord{Type: 138, Name: "GPS Details",
		Data: (&payload{}).i32(1).f64(52.3676).f64(4.9041).f32(11).bytes()}

	fields := decodeRecord(rec, pdz25Records, zap.NewNop())

	want := []string{"gps_valid", "latitude", "longitude", "altitude"}
	if !reflect.DeepEqual(fields.Names(), want) {
		t.Errorf("Names() = %v, want %v", fields.Names(), want)
	}
	if got := fields.Float64("latitude"); got != 52.3676 {
		t.Errorf("latitude = %v, want 52.3676", got)
	}
}

func TestDecodeRecordUnknownType(t *testing.T) {
	rec := RawRecord{Type: 31337, Name: "Unknown Record Type 31337", Data: []byte{1, 2, 3}}

	fields := decodeRecord(rec, pdz25Records, zap.NewNop())
	if fields == nil || fields.Len() != 0 {
		t.Errorf("decodeRecord() = %v, want empty fields", fields)
	}
}

func TestDecodeRecordKeepsPartialOnTruncation(t *testing.T) {
	// GPS record cut short after latitude: decoded fields survive, the
	// rest are absent, nothing fails.
	rec := RawRecord{Type: 138, Name: "GPS Details",
		Data: (&payload{}).i32(1).f64(52.3676).bytes()}

	fields := decodeRecord(rec, pdz25Records, zap.NewNop())

	if v, _ := fields.Get("gps_valid"); v != int64(1) {
		t.Errorf("gps_valid = %v, want 1", v)
	}
	if got := fields.Float64("latitude"); got != 52.3676 {
		t.Errorf("latitude = %v, want 52.3676", got)
	}
	if _, ok := fields.Get("longitude"); ok {
		t.Error("longitude present, want absent")
	}
	if _, ok := fields.Get("altitude"); ok {
		t.Error("altitude present, want absent")
	}
}

func TestDecodeRecordZeroRepeatOmitsGroup(t *testing.T) {
	rec := RawRecord{Type: 9, Name: "User Custom Fields",
		Data: (&payload{}).i16(0).bytes()}

	fields := decodeRecord(rec, pdz25Records, zap.NewNop())

	if fields.Int("num_fields") != 0 {
		t.Errorf("num_fields = %d, want 0", fields.Int("num_fields"))
	}
	if _, ok := fields.Get("fields"); ok {
		t.Error("fields group present, want omitted")
	}
}

func TestDecodeRecordLibsGradeIDQuirk(t *testing.T) {
	// Record 1002's grade_ids group references num_elements, which its own
	// schema never decodes: the group resolves to 0 iterations and the
	// following fields decode at the unchanged offset.
	rec := RawRecord{Type: 1002, Name: "Libs Grade ID Results",
		Data: (&payload{}).
			u16(2).     // num_grade_ids (not the group's reference)
			f32(0.75).  // match_spread_threshold
			u16(0).     // num_grade_libs
			bytes()}

	fields := decodeRecord(rec, pdz25Records, zap.NewNop())

	if fields.Int("num_grade_ids") != 2 {
		t.Errorf("num_grade_ids = %d, want 2", fields.Int("num_grade_ids"))
	}
	if _, ok := fields.Get("grade_ids"); ok {
		t.Error("grade_ids present, want omitted")
	}
	if got := fields.Float64("match_spread_threshold"); got != 0.75 {
		t.Errorf("match_spread_threshold = %v, want 0.75", got)
	}
}

func TestDecodeRecordUserCustomFields(t *testing.T) {
	rec := RawRecord{Type: 9, Name: "User Custom Fields",
		Data: (&payload{}).
			i16(2).
			u32(4).wstr("site").
			u32(5).wstr("north").
			u32(8).wstr("operator").
			u32(2).wstr("jd").
			bytes()}

	fields := decodeRecord(rec, pdz25Records, zap.NewNop())

	custom := fields.Groups("fields")
	if len(custom) != 2 {
		t.Fatalf("len(fields) = %d, want 2", len(custom))
	}
	if custom[0].Text("field_name") != "site" || custom[0].Text("field_value") != "north" {
		t.Errorf("custom[0] = %q=%q", custom[0].Text("field_name"), custom[0].Text("field_value"))
	}
	if custom[1].Text("field_name") != "operator" || custom[1].Text("field_value") != "jd" {
		t.Errorf("custom[1] = %q=%q", custom[1].Text("field_name"), custom[1].Text("field_value"))
	}
}

func TestDecodeRecordImageDetails(t *testing.T) {
	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00}
	rec := RawRecord{Type: 137, Name: "Image Details",
		Data: (&payload{}).
			i32(1).
			u32(uint32(len(jpeg))).raw(jpeg...).
			u32(640).u32(480).
			u32(4).wstr("spot").
			bytes()}

	fields := decodeRecord(rec, pdz25Records, zap.NewNop())

	images := fields.Groups("images")
	if len(images) != 1 {
		t.Fatalf("len(images) = %d, want 1", len(images))
	}
	if !reflect.DeepEqual(images[0].Bytes("image"), jpeg) {
		t.Errorf("image = %v, want %v", images[0].Bytes("image"), jpeg)
	}
	if images[0].Int("x_dimension") != 640 || images[0].Int("y_dimension") != 480 {
		t.Errorf("dimensions = %dx%d, want 640x480",
			images[0].Int("x_dimension"), images[0].Int("y_dimension"))
	}
	if images[0].Text("annotation") != "spot" {
		t.Errorf("annotation = %q", images[0].Text("annotation"))
	}
}
