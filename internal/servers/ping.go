package servers

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/coryzibell/speedrun/internal/utils"
)

// ProbeResult holds the latency check outcome for one server.
type ProbeResult struct {
	Server  Metadata
	Latency time.Duration
	Err     error
}

// Probe checks header latency for each server with a bounded number of
// concurrent HEAD requests. Results are positional; failures are carried
// per entry rather than aborting the sweep.
func Probe(ctx context.Context, list []Metadata, concurrency int) []ProbeResult {
	log := utils.GetLogger("servers")
	if concurrency <= 0 {
		concurrency = 4
	}
	client := utils.NewClient(utils.ClientConfig{Timeout: fetchTimeout})
	results := make([]ProbeResult, len(list))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for i, server := range list {
		group.Go(func() error {
			results[i] = ProbeResult{Server: server}
			req, err := http.NewRequestWithContext(ctx, http.MethodHead, server.URL, nil)
			if err != nil {
				results[i].Err = err
				return nil
			}
			req.Header.Set("User-Agent", "speedrun")
			start := time.Now()
			resp, err := client.Do(req)
			if err != nil {
				results[i].Err = err
				return nil
			}
			resp.Body.Close()
			results[i].Latency = time.Since(start)
			log.Debug().Str("server", server.Name).Dur("latency", results[i].Latency).Msg("Probe completed")
			return nil
		})
	}
	group.Wait()
	return results
}
