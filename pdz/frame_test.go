// SPDX-License-Identifier: MIT

package pdz

import (
	"testing"

	"go.uber.org/zap"
)

func TestFrameBlocks(t *testing.T) {
	file := pdz25File(
		fileHeaderBlock(),
		block(138, (&payload{}).i32(1).f64(52.1).f64(4.9).f32(11).bytes()),
		block(900, (&payload{}).u32(0).bytes()),
	)

	records := frameBlocks(file, pdz25Records, zap.NewNop())
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	if records[0].Type != 25 || records[0].Name != "File Header" {
		t.Errorf("records[0] = %d %q", records[0].Type, records[0].Name)
	}
	if records[1].Name != "GPS Details" || len(records[1].Data) != 24 {
		t.Errorf("records[1] = %q len %d, want GPS Details len 24", records[1].Name, len(records[1].Data))
	}

	// Framing never reads past the buffer: headers plus payloads fit the
	// file exactly.
	total := 0
	for _, rec := range records {
		total += blockHeaderSize + len(rec.Data)
	}
	if total > len(file) {
		t.Errorf("framed %d bytes from a %d byte file", total, len(file))
	}
}

func TestFrameBlocksUnknownType(t *testing.T) {
	file := block(31337, []byte{1, 2, 3})

	records := frameBlocks(file, pdz25Records, zap.NewNop())
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].Name != "Unknown Record Type 31337" {
		t.Errorf("Name = %q", records[0].Name)
	}
	if len(records[0].Data) != 3 {
		t.Errorf("len(Data) = %d, want 3", len(records[0].Data))
	}
}

func TestFrameBlocksShortHeader(t *testing.T) {
	// A trailing fragment too small for a header stops framing quietly.
	file := append(block(900, (&payload{}).u32(0).bytes()), 0x03, 0x00, 0x04)

	records := frameBlocks(file, pdz25Records, zap.NewNop())
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
}

func TestFrameBlocksZeroLength(t *testing.T) {
	// A zero data length stops framing; the malformed block is discarded
	// and anything after it is unreachable.
	file := pdz25File(
		block(900, (&payload{}).u32(0).bytes()),
		(&payload{}).u16(3).u32(0).bytes(),
		block(900, (&payload{}).u32(0).bytes()),
	)

	records := frameBlocks(file, pdz25Records, zap.NewNop())
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
}

func TestFrameBlocksLengthExceedsFile(t *testing.T) {
	file := (&payload{}).u16(3).u32(1 << 20).bytes()

	records := frameBlocks(file, pdz25Records, zap.NewNop())
	if len(records) != 0 {
		t.Fatalf("len(records) = %d, want 0", len(records))
	}
}

func TestFrameBlocksTruncatedPayload(t *testing.T) {
	// The declared length fits the file total but not the remaining bytes:
	// framing stops, previously framed records survive.
	file := pdz25File(
		block(900, (&payload{}).u32(0).bytes()),
		(&payload{}).u16(3).u32(8).raw(1, 2, 3).bytes(),
	)

	records := frameBlocks(file, pdz25Records, zap.NewNop())
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].Name != "Trace Log" {
		t.Errorf("records[0].Name = %q", records[0].Name)
	}
}

func TestFramePositional(t *testing.T) {
	tests := []struct {
		name     string
		fileSize int
		want     int
	}{
		{"empty", 0, 0},
		{"below header size", 5, 0},
		{"header only", 6, 1},
		{"header and spectrum", 90, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := framePositional(make([]byte, tt.fileSize), pdz24Records, zap.NewNop())
			if len(records) != tt.want {
				t.Fatalf("len(records) = %d, want %d", len(records), tt.want)
			}
			if tt.want >= 1 {
				if records[0].Name != "File Header" || len(records[0].Data) != 6 {
					t.Errorf("records[0] = %q len %d", records[0].Name, len(records[0].Data))
				}
			}
			if tt.want == 2 {
				if records[1].Name != "XRF Spectrum" || len(records[1].Data) != tt.fileSize-6 {
					t.Errorf("records[1] = %q len %d", records[1].Name, len(records[1].Data))
				}
			}
		})
	}
}
