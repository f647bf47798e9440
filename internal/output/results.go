package output

import (
	"fmt"

	"github.com/coryzibell/speedrun/internal/downloader"
)

// PrintResults renders the full human-readable result block for a
// completed transfer.
func PrintResults(res *downloader.Result, savePath string) {
	sizeMB := float64(res.BytesDownloaded) / 1048576.0
	mbs := (float64(res.BytesDownloaded) / res.TotalTime) / 1048576.0
	mbps := (float64(res.BytesDownloaded) * 8 / res.TotalTime) / 1e6

	fmt.Println()
	if res.StatusCode == 200 {
		fmt.Printf("Status:  %s\n", FSuccess(fmt.Sprintf("%d (OK)", res.StatusCode)))
	} else {
		fmt.Printf("Status:  %s\n", FError(fmt.Sprintf("%d (Error/Redirect)", res.StatusCode)))
	}

	fmt.Printf("Connect: %.3fs\n", res.ConnectTime)
	fmt.Printf("TTFB:    %.3fs\n", res.TTFB)
	fmt.Printf("Total:   %.3fs\n", res.TotalTime)
	fmt.Println("----------------")
	fmt.Printf("Size:    %.2f MB\n", sizeMB)
	if sizeMB < 10.0 {
		PrintWarning("WARNING: File is very small (<10MB). Speed result may be inaccurate.")
	}
	fmt.Println("----------------")

	if res.StatusCode == 200 {
		fmt.Printf("Speed:   %s\n", FSuccess(fmt.Sprintf("%.2f MB/s  (%.2f Mbps)", mbs, mbps)))
		if savePath != "" {
			fmt.Println()
			PrintInfo(fmt.Sprintf("File saved successfully: %s", savePath))
		}
	} else {
		fmt.Printf("Speed:   %s\n", FDebug(fmt.Sprintf("%.2f MB/s  (%.2f Mbps) - (Invalid due to Error)", mbs, mbps)))
	}
}

// PrintSpeedOnly renders the single-line summary used outside interactive
// mode.
func PrintSpeedOnly(res *downloader.Result) {
	mbs := (float64(res.BytesDownloaded) / res.TotalTime) / 1048576.0
	mbps := (float64(res.BytesDownloaded) * 8 / res.TotalTime) / 1e6
	if res.StatusCode == 200 {
		fmt.Printf("%.2f MB/s  (%.2f Mbps)\n", mbs, mbps)
	} else {
		fmt.Printf("%.2f MB/s  (%.2f Mbps) - (Error: status %d)\n", mbs, mbps, res.StatusCode)
	}
}

// PrintDownloadHeader announces an interactive-mode test before it starts.
func PrintDownloadHeader(name, savePath string) {
	fmt.Println()
	PrintWarning(fmt.Sprintf("Testing against %s...", name))
	if savePath != "" {
		PrintDebug(fmt.Sprintf("(Saving to: %s)", savePath))
	} else {
		PrintDebug("(Discarding Data)")
	}
	fmt.Println("Please wait...")
	fmt.Println()
}
