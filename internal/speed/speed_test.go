package speed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatZeroRate(t *testing.T) {
	assert.Equal(t, "0.00 bps", Format(0, BitsMetric))
	assert.Equal(t, "0.00 bps", Format(0, BitsBinary))
	assert.Equal(t, "0.00 B/s", Format(0, BytesMetric))
	assert.Equal(t, "0.00 B/s", Format(0, BytesBinary))
}

func TestFormatThresholdsInclusive(t *testing.T) {
	tests := []struct {
		name        string
		bytesPerSec float64
		unit        Unit
		want        string
	}{
		// bits-metric: thresholds at 10^3 / 10^6 / 10^9 bits
		{"just below Kbps", 124.875, BitsMetric, "999.00 bps"},
		{"exactly Kbps", 125, BitsMetric, "1.00 Kbps"},
		{"exactly Mbps", 125000, BitsMetric, "1.00 Mbps"},
		{"exactly Gbps", 125000000, BitsMetric, "1.00 Gbps"},
		{"one million bits per second", 1000.0 * 125, BitsMetric, "1.00 Mbps"},
		// bits-binary: thresholds at 2^10 / 2^20 / 2^30 bits
		{"just below Kibps", 127.875, BitsBinary, "1023.00 bps"},
		{"exactly Kibps", 128, BitsBinary, "1.00 Kibps"},
		{"exactly Mibps", 1 << 20 / 8, BitsBinary, "1.00 Mibps"},
		{"exactly Gibps", 1 << 30 / 8, BitsBinary, "1.00 Gibps"},
		// bytes-metric: powers of 1000
		{"just below KB/s", 999, BytesMetric, "999.00 B/s"},
		{"exactly KB/s", 1000, BytesMetric, "1.00 KB/s"},
		{"exactly MB/s", 1e6, BytesMetric, "1.00 MB/s"},
		{"exactly GB/s", 1e9, BytesMetric, "1.00 GB/s"},
		{"exactly TB/s", 1e12, BytesMetric, "1.00 TB/s"},
		// bytes-binary: powers of 1024
		{"just below KiB/s", 1023, BytesBinary, "1023.00 B/s"},
		{"exactly KiB/s", 1024, BytesBinary, "1.00 KiB/s"},
		{"exactly MiB/s", 1 << 20, BytesBinary, "1.00 MiB/s"},
		{"exactly GiB/s", 1 << 30, BytesBinary, "1.00 GiB/s"},
		// 10 MB/s link reads ~9.54 on the binary scale
		{"ten MB per second binary", 10e6, BytesBinary, "9.54 MiB/s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.bytesPerSec, tt.unit))
		})
	}
}

func TestFormatIsPure(t *testing.T) {
	for _, unit := range []Unit{BitsMetric, BitsBinary, BytesMetric, BytesBinary} {
		first := Format(123456.789, unit)
		second := Format(123456.789, unit)
		assert.Equal(t, first, second)
	}
}

func TestParseUnit(t *testing.T) {
	assert.Equal(t, BitsMetric, ParseUnit("bits-metric"))
	assert.Equal(t, BitsBinary, ParseUnit("bits-binary"))
	assert.Equal(t, BytesMetric, ParseUnit("bytes-metric"))
	assert.Equal(t, BytesBinary, ParseUnit("BYTES-BINARY"))
	assert.Equal(t, BitsMetric, ParseUnit("nonsense"))
	assert.Equal(t, BitsMetric, ParseUnit(""))
}

func TestUnitString(t *testing.T) {
	for _, unit := range []Unit{BitsMetric, BitsBinary, BytesMetric, BytesBinary} {
		assert.Equal(t, unit, ParseUnit(unit.String()))
	}
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.50 KB", FormatBytes(1536))
	assert.Equal(t, "100.00 MB", FormatBytes(100*1024*1024))
}
