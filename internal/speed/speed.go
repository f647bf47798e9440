package speed

import (
	"fmt"
	"strings"
)

// Unit selects how a bytes/second rate is rendered: bits or bytes, with
// metric (powers of 1000) or binary (powers of 1024) thresholds.
type Unit int

const (
	BitsMetric Unit = iota
	BitsBinary
	BytesMetric
	BytesBinary
)

func ParseUnit(s string) Unit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bits-binary":
		return BitsBinary
	case "bytes-metric":
		return BytesMetric
	case "bytes-binary":
		return BytesBinary
	default:
		return BitsMetric
	}
}

func (u Unit) String() string {
	switch u {
	case BitsBinary:
		return "bits-binary"
	case BytesMetric:
		return "bytes-metric"
	case BytesBinary:
		return "bytes-binary"
	default:
		return "bits-metric"
	}
}

// Format renders a bytes/second rate under the given unit convention.
// Threshold comparisons are inclusive, so exactly 1000 bits/s reads as
// "1.00 Kbps" rather than "1000.00 bps", and likewise at every boundary.
func Format(bytesPerSec float64, unit Unit) string {
	switch unit {
	case BitsBinary:
		bits := bytesPerSec * 8
		switch {
		case bits >= 1<<30:
			return fmt.Sprintf("%.2f Gibps", bits/(1<<30))
		case bits >= 1<<20:
			return fmt.Sprintf("%.2f Mibps", bits/(1<<20))
		case bits >= 1<<10:
			return fmt.Sprintf("%.2f Kibps", bits/(1<<10))
		default:
			return fmt.Sprintf("%.2f bps", bits)
		}
	case BytesMetric:
		switch {
		case bytesPerSec >= 1e12:
			return fmt.Sprintf("%.2f TB/s", bytesPerSec/1e12)
		case bytesPerSec >= 1e9:
			return fmt.Sprintf("%.2f GB/s", bytesPerSec/1e9)
		case bytesPerSec >= 1e6:
			return fmt.Sprintf("%.2f MB/s", bytesPerSec/1e6)
		case bytesPerSec >= 1e3:
			return fmt.Sprintf("%.2f KB/s", bytesPerSec/1e3)
		default:
			return fmt.Sprintf("%.2f B/s", bytesPerSec)
		}
	case BytesBinary:
		switch {
		case bytesPerSec >= 1<<40:
			return fmt.Sprintf("%.2f TiB/s", bytesPerSec/(1<<40))
		case bytesPerSec >= 1<<30:
			return fmt.Sprintf("%.2f GiB/s", bytesPerSec/(1<<30))
		case bytesPerSec >= 1<<20:
			return fmt.Sprintf("%.2f MiB/s", bytesPerSec/(1<<20))
		case bytesPerSec >= 1<<10:
			return fmt.Sprintf("%.2f KiB/s", bytesPerSec/(1<<10))
		default:
			return fmt.Sprintf("%.2f B/s", bytesPerSec)
		}
	default:
		bits := bytesPerSec * 8
		switch {
		case bits >= 1e9:
			return fmt.Sprintf("%.2f Gbps", bits/1e9)
		case bits >= 1e6:
			return fmt.Sprintf("%.2f Mbps", bits/1e6)
		case bits >= 1e3:
			return fmt.Sprintf("%.2f Kbps", bits/1e3)
		default:
			return fmt.Sprintf("%.2f bps", bits)
		}
	}
}

// FormatBytes converts an absolute byte count to human-readable form.
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
