package downloader

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/coryzibell/speedrun/internal/progress"
	"github.com/coryzibell/speedrun/internal/speed"
	"github.com/coryzibell/speedrun/internal/utils"
)

const bufferSize = 64 * 1024

// Result holds the measurements of one completed transfer. It is fully
// populated before return and never mutated afterwards.
//
// TTFB is measured from the instant response headers were received to the
// first body byte, not from request start: ConnectTime and TTFB are
// sibling components of TotalTime, not cumulative with each other. If the
// body is empty no first-byte latency exists and TTFB carries the connect
// latency instead.
type Result struct {
	StatusCode      int     `json:"status_code"`
	ConnectTime     float64 `json:"connect_time"`
	TTFB            float64 `json:"ttfb"`
	TotalTime       float64 `json:"total_time"`
	BytesDownloaded int64   `json:"bytes_downloaded"`
}

type Options struct {
	URL       string
	SavePath  string // empty means discard the payload
	UserAgent string

	// Unit affects only the live progress text, not the Result fields.
	Unit         speed.Unit
	ShowProgress bool
	ProgressOut  io.Writer // defaults to stdout

	// Client overrides the transfer client; the default has no request
	// timeout so slow links run to completion.
	Client *http.Client
}

// Download performs one measured GET transfer: one request, four timing
// checkpoints, optional tee to a save file, and a final Result. Any
// failure aborts the whole operation with no retry; a partially written
// save file is left on disk as-is.
func Download(opts Options) (*Result, error) {
	log := utils.GetLogger("downloader")
	client := opts.Client
	if client == nil {
		client = utils.NewClient(utils.ClientConfig{})
	}

	req, err := http.NewRequest(http.MethodGet, opts.URL, nil)
	if err != nil {
		return nil, &Error{Phase: PhaseConnect, Err: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	log.Debug().Str("url", opts.URL).Str("savePath", opts.SavePath).Msg("Starting measured download")
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{Phase: PhaseConnect, Err: err}
	}
	defer resp.Body.Close()
	connectTime := time.Since(start).Seconds()

	totalSize := resp.ContentLength
	if totalSize < 0 {
		totalSize = 0 // unknown; progress falls back to a spinner
	}
	ttfbStart := time.Now()

	var outFile *os.File
	if opts.SavePath != "" {
		outFile, err = os.Create(opts.SavePath)
		if err != nil {
			return nil, &Error{Phase: PhaseFile, Err: err}
		}
		defer outFile.Close()
	}

	var tracker *progress.Tracker
	if opts.ShowProgress {
		tracker = progress.NewTracker(totalSize, opts.Unit, opts.ProgressOut)
		defer tracker.Finish()
	}

	var downloaded int64
	var ttfb float64
	gotFirstByte := false
	buffer := make([]byte, bufferSize)
	for {
		bytesRead, readErr := resp.Body.Read(buffer)
		if bytesRead > 0 {
			if !gotFirstByte {
				ttfb = time.Since(ttfbStart).Seconds()
				gotFirstByte = true
			}
			downloaded += int64(bytesRead)
			if outFile != nil {
				if _, writeErr := outFile.Write(buffer[:bytesRead]); writeErr != nil {
					return nil, &Error{Phase: PhaseFile, Err: writeErr}
				}
			}
			if tracker != nil {
				tracker.Add(int64(bytesRead))
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return nil, &Error{Phase: PhaseTransfer, Err: readErr}
		}
	}
	totalTime := time.Since(start).Seconds()
	if !gotFirstByte {
		ttfb = connectTime
	}

	log.Debug().
		Int("statusCode", resp.StatusCode).
		Int64("bytesDownloaded", downloaded).
		Float64("totalTime", totalTime).
		Msg("Download completed")
	return &Result{
		StatusCode:      resp.StatusCode,
		ConnectTime:     connectTime,
		TTFB:            ttfb,
		TotalTime:       totalTime,
		BytesDownloaded: downloaded,
	}, nil
}
