// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"pdztool/pdz"
)

// CSVOptions selects the records and columns of a CSV export.
type CSVOptions struct {
	// RecordNames are the records whose fields are merged into the output,
	// in order. Defaults to ["XRF Spectrum"].
	RecordNames []string

	// Suffix overrides the filename suffix before ".csv". When empty it
	// derives from the record names: "_xrf_spectrum" for a single record,
	// "_multiple_records" otherwise.
	Suffix string

	// ChannelStartKeV adds a calculated keV column to the spectrum rows,
	// derived from the channel_start and ev_per_channel fields.
	ChannelStartKeV bool
}

func (o *CSVOptions) records() []string {
	if len(o.RecordNames) == 0 {
		return []string{"XRF Spectrum"}
	}
	return o.RecordNames
}

func (o *CSVOptions) suffix() string {
	if o.Suffix != "" {
		return o.Suffix
	}
	names := o.records()
	if len(names) == 1 {
		return "_" + strings.ToLower(strings.ReplaceAll(names[0], " ", "_"))
	}
	return "_multiple_records"
}

// WriteCSV writes the selected records to <dir>/<baseName><suffix>.csv as
// key/value rows, with spectrum_data expanded into per-channel rows at the
// end. Records that recur per phase contribute their final phase. A selected
// record name absent from the document is an error. Returns the written
// path.
func WriteCSV(doc *pdz.Document, dir, baseName string, opts CSVOptions) (string, error) {
	merged := pdz.NewFields()
	for _, name := range opts.records() {
		phases := doc.Phases(name)
		if len(phases) == 0 {
			return "", errors.Errorf("record %q not found in document", name)
		}
		for fieldName, value := range phases[len(phases)-1].All() {
			merged.Set(fieldName, value)
		}
	}

	path := filepath.Join(dir, baseName+opts.suffix()+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for name, value := range merged.All() {
		if name == "spectrum_data" {
			continue // expanded into channel rows below
		}
		if err := w.Write([]string{name, cellValue(value)}); err != nil {
			return "", errors.Wrapf(err, "writing %s", path)
		}
	}
	if err := writeSpectrumRows(w, merged, opts.ChannelStartKeV); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	return path, nil
}

func writeSpectrumRows(w *csv.Writer, merged *pdz.Fields, includeKeV bool) error {
	raw, ok := merged.Get("spectrum_data")
	if !ok {
		return nil
	}
	counts := spectrumCounts(raw)

	if includeKeV {
		if err := w.Write([]string{"channel_number", "channel_start_kev (calculated)", "channel_count"}); err != nil {
			return err
		}
		startKeV := merged.Float64("channel_start") / 1000
		kevPerChannel := merged.Float64("ev_per_channel") / 1000
		for i, count := range counts {
			row := []string{
				strconv.Itoa(i + 1),
				strconv.FormatFloat(startKeV+float64(i)*kevPerChannel, 'g', -1, 64),
				count,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	if err := w.Write([]string{"channel_number", "channel_count"}); err != nil {
		return err
	}
	for i, count := range counts {
		if err := w.Write([]string{strconv.Itoa(i + 1), count}); err != nil {
			return err
		}
	}
	return nil
}

// spectrumCounts renders each sample of a spectrum array as a cell. The
// three array kinds cover both dialects' sample types and the float arrays
// of Libs records.
func spectrumCounts(raw any) []string {
	switch samples := raw.(type) {
	case []uint32:
		out := make([]string, len(samples))
		for i, s := range samples {
			out[i] = strconv.FormatUint(uint64(s), 10)
		}
		return out
	case []int32:
		out := make([]string, len(samples))
		for i, s := range samples {
			out[i] = strconv.FormatInt(int64(s), 10)
		}
		return out
	case []float32:
		out := make([]string, len(samples))
		for i, s := range samples {
			out[i] = strconv.FormatFloat(float64(s), 'g', -1, 32)
		}
		return out
	default:
		return nil
	}
}

// cellValue renders one decoded value as a CSV cell. Scalars render plainly;
// arrays and groups render as compact JSON.
func cellValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case uint64:
		return strconv.FormatUint(v, 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		out, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(out)
	}
}
