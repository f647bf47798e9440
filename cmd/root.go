package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/coryzibell/speedrun/internal/banner"
	"github.com/coryzibell/speedrun/internal/config"
	"github.com/coryzibell/speedrun/internal/downloader"
	"github.com/coryzibell/speedrun/internal/menu"
	"github.com/coryzibell/speedrun/internal/output"
	"github.com/coryzibell/speedrun/internal/servers"
	"github.com/coryzibell/speedrun/internal/speed"
	"github.com/coryzibell/speedrun/internal/utils"
)

var (
	speedUnitFlag  string
	formatFlag     string
	jsonFlag       bool
	compactFlag    bool
	interactive    bool
	nonInteractive bool
	userAgent      string
	updateServers  bool
	debug          bool
)

var SpeedrunVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "speedrun [URL]",
	Short:   "A fast network speed test tool",
	Version: SpeedrunVersion,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
		cfg := config.Load()

		if updateServers {
			if err := runServersUpdate(); err != nil {
				os.Exit(1)
			}
			return
		}

		data := servers.LoadLocal()
		refreshStaleCache(data)

		unitName := cfg.SpeedUnit
		if speedUnitFlag != "" {
			unitName = speedUnitFlag
		}
		unit := speed.ParseUnit(unitName)
		outputFormat := resolveFormat()

		if userAgent == "" {
			userAgent = cfg.UserAgent
		} else if userAgent == "randomize" {
			userAgent = utils.RandomUserAgent()
		}

		if len(args) == 1 {
			runURL(args[0], unit, outputFormat)
			return
		}

		interactiveMode := cfg.Interactive
		if nonInteractive {
			interactiveMode = false
		} else if interactive {
			interactiveMode = true
		}
		if interactiveMode {
			runInteractive(data, unit, outputFormat)
		} else {
			runDefault(data, unit, outputFormat)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// refreshStaleCache updates the remote server list best-effort; a failed
// fetch keeps whatever was cached.
func refreshStaleCache(data *servers.LocalData) {
	if !data.Stale() {
		return
	}
	list, err := servers.Fetch()
	if err != nil {
		return
	}
	data.RemoteList = list
	data.CacheTimestamp = time.Now().UTC()
	if err := servers.SaveLocal(data); err != nil {
		logger := utils.GetLogger("servers")
		logger.Debug().Err(err).Msg("Failed to save server cache")
	}
}

func resolveFormat() output.Format {
	if jsonFlag {
		if compactFlag {
			return output.FormatJSONCompact
		}
		return output.FormatJSON
	}
	if formatFlag != "" {
		return output.ParseFormat(formatFlag)
	}
	return output.FormatHuman
}

func printResult(res *downloader.Result, name, url, savePath string, format output.Format, speedOnly bool) {
	switch format {
	case output.FormatJSON:
		output.WriteJSON(os.Stdout, res, name, url, false)
	case output.FormatJSONCompact:
		output.WriteJSON(os.Stdout, res, name, url, true)
	case output.FormatCSV:
		output.WriteCSV(os.Stdout, res, name, url, true)
	default:
		if speedOnly {
			output.PrintSpeedOnly(res)
			if res.StatusCode == 200 && savePath != "" {
				fmt.Printf("Saved: %s\n", savePath)
			}
		} else {
			output.PrintResults(res, savePath)
		}
	}
}

// runURL downloads a caller-supplied URL, saving the payload to the
// working directory.
func runURL(url string, unit speed.Unit, format output.Format) {
	url = utils.NormalizeURL(url)
	savePath := utils.ExtractFilename(url)
	result, err := downloader.Download(downloader.Options{
		URL:          url,
		SavePath:     savePath,
		UserAgent:    userAgent,
		Unit:         unit,
		ShowProgress: format == output.FormatHuman,
	})
	if err != nil {
		output.PrintError(fmt.Sprintf("Download failed: %v", err))
		os.Exit(1)
	}
	printResult(result, "Custom URL", url, savePath, format, true)
}

// runDefault runs one quick test against the first catalog server.
func runDefault(data *servers.LocalData, unit speed.Unit, format output.Format) {
	list := data.Merged()
	if len(list) == 0 {
		output.PrintError("No servers available")
		os.Exit(1)
	}
	server := list[0]
	result, err := downloader.Download(downloader.Options{
		URL:          server.URL,
		UserAgent:    userAgent,
		Unit:         unit,
		ShowProgress: format == output.FormatHuman,
	})
	if err != nil {
		output.PrintError(fmt.Sprintf("Download failed: %v", err))
		os.Exit(1)
	}
	recordHealth(data, server.URL, result)
	printResult(result, server.Name, server.URL, "", format, true)
}

func runInteractive(data *servers.LocalData, unit speed.Unit, format output.Format) {
	for {
		selection, err := menu.Show(os.Stdin, data.Merged(), banner.Render(SpeedrunVersion))
		if err != nil || selection.Quit {
			fmt.Println("Exiting...")
			return
		}
		output.PrintDownloadHeader(selection.Name, selection.SavePath)
		result, err := downloader.Download(downloader.Options{
			URL:          selection.URL,
			SavePath:     selection.SavePath,
			UserAgent:    userAgent,
			Unit:         unit,
			ShowProgress: true,
		})
		if err != nil {
			output.PrintError(fmt.Sprintf("Download failed: %v", err))
			data.RecordResult(selection.URL, false, 0, 0)
			servers.SaveLocal(data)
			menu.WaitForContinue(os.Stdin)
			continue
		}
		recordHealth(data, selection.URL, result)
		printResult(result, selection.Name, selection.URL, selection.SavePath, format, false)
		fmt.Println()
		menu.WaitForContinue(os.Stdin)
	}
}

func recordHealth(data *servers.LocalData, url string, res *downloader.Result) {
	ok := res.StatusCode >= 200 && res.StatusCode < 300
	mbps := 0.0
	if res.TotalTime > 0 {
		mbps = (float64(res.BytesDownloaded) * 8 / res.TotalTime) / 1e6
	}
	data.RecordResult(url, ok, mbps, res.ConnectTime*1000)
	if err := servers.SaveLocal(data); err != nil {
		logger := utils.GetLogger("servers")
		logger.Debug().Err(err).Msg("Failed to save server health")
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run in interactive mode (show menu)")
	rootCmd.Flags().BoolVarP(&nonInteractive, "non-interactive", "n", false, "Run in non-interactive mode (quick test)")
	rootCmd.Flags().StringVarP(&speedUnitFlag, "speed-unit", "u", "", "Speed unit format: bits-metric, bits-binary, bytes-metric, bytes-binary")
	rootCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: json, csv, or human (default)")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "Output JSON format (shorthand for --format json)")
	rootCmd.Flags().BoolVar(&compactFlag, "compact", false, "Use compact JSON output (no pretty printing)")
	rootCmd.Flags().StringVarP(&userAgent, "user-agent", "a", "", "User agent ('randomize' picks a browser agent)")
	rootCmd.Flags().BoolVar(&updateServers, "update-servers", false, "Update remote server list")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newServersCmd())
}
