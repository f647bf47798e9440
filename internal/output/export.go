package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coryzibell/speedrun/internal/downloader"
)

// Format selects how a result record is rendered for the caller.
type Format int

const (
	FormatHuman Format = iota
	FormatJSON
	FormatJSONCompact
	FormatCSV
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "json-compact", "compact":
		return FormatJSONCompact
	case "csv":
		return FormatCSV
	default:
		return FormatHuman
	}
}

type serverInfo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type speedInfo struct {
	Mbps float64 `json:"mbps"`
	MBs  float64 `json:"mb_s"`
}

type jsonResults struct {
	StatusCode      int       `json:"status_code"`
	BytesDownloaded int64     `json:"bytes_downloaded"`
	TotalTime       float64   `json:"total_time"`
	ConnectTime     float64   `json:"connect_time"`
	TTFB            float64   `json:"ttfb"`
	Speed           speedInfo `json:"speed"`
}

type jsonEnvelope struct {
	RunID     string      `json:"run_id"`
	Timestamp string      `json:"timestamp"`
	Server    serverInfo  `json:"server"`
	Results   jsonResults `json:"results"`
}

// WriteJSON renders a result as a JSON envelope with a run id, UTC
// timestamp and derived speed figures.
func WriteJSON(w io.Writer, res *downloader.Result, serverName, serverURL string, compact bool) error {
	envelope := jsonEnvelope{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Server:    serverInfo{Name: serverName, URL: serverURL},
		Results: jsonResults{
			StatusCode:      res.StatusCode,
			BytesDownloaded: res.BytesDownloaded,
			TotalTime:       res.TotalTime,
			ConnectTime:     res.ConnectTime,
			TTFB:            res.TTFB,
			Speed: speedInfo{
				Mbps: (float64(res.BytesDownloaded) * 8 / res.TotalTime) / 1e6,
				MBs:  (float64(res.BytesDownloaded) / res.TotalTime) / 1e6,
			},
		},
	}
	encoder := json.NewEncoder(w)
	if !compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(envelope)
}

// WriteCSV renders a result as one CSV row, optionally preceded by the
// header row.
func WriteCSV(w io.Writer, res *downloader.Result, serverName, serverURL string, includeHeader bool) error {
	writer := csv.NewWriter(w)
	if includeHeader {
		header := []string{"timestamp", "run_id", "server_name", "server_url", "bytes_downloaded", "total_time", "connect_time", "ttfb", "speed_mbps", "status_code"}
		if err := writer.Write(header); err != nil {
			return err
		}
	}
	mbps := (float64(res.BytesDownloaded) * 8 / res.TotalTime) / 1e6
	row := []string{
		time.Now().UTC().Format(time.RFC3339),
		uuid.NewString(),
		serverName,
		serverURL,
		strconv.FormatInt(res.BytesDownloaded, 10),
		fmt.Sprintf("%.3f", res.TotalTime),
		fmt.Sprintf("%.3f", res.ConnectTime),
		fmt.Sprintf("%.3f", res.TTFB),
		fmt.Sprintf("%.2f", mbps),
		strconv.Itoa(res.StatusCode),
	}
	if err := writer.Write(row); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
