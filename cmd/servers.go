package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/coryzibell/speedrun/internal/output"
	"github.com/coryzibell/speedrun/internal/servers"
	"github.com/coryzibell/speedrun/internal/utils"
)

func newServersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "servers",
		Short: "Manage the speed test server catalog",
	}
	cmd.AddCommand(newServersListCmd(), newServersUpdateCmd(), newServersPingCmd())
	return cmd
}

func newServersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available speed test servers",
		Run: func(cmd *cobra.Command, args []string) {
			utils.InitLogger(debug)
			data := servers.LoadLocal()
			table := output.NewTable([]string{"#", "Name", "Provider", "URL", "Avg Speed", "Success"})
			for i, server := range data.Merged() {
				avgSpeed, successRate := "-", "-"
				if health, ok := data.Health[server.URL]; ok && health.TotalChecks > 0 {
					avgSpeed = fmt.Sprintf("%.2f Mbps", health.AvgSpeedMbps)
					successRate = fmt.Sprintf("%.0f%%", health.SuccessRate*100)
				}
				table.AddRow(fmt.Sprint(i+1), server.Name, server.Provider, server.URL, avgSpeed, successRate)
			}
			fmt.Println(table.String())
		},
	}
}

func newServersUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update the remote server list",
		RunE: func(cmd *cobra.Command, args []string) error {
			utils.InitLogger(debug)
			return runServersUpdate()
		},
	}
}

func runServersUpdate() error {
	output.PrintWarning("Fetching remote server list...")
	list, err := servers.Fetch()
	if err != nil {
		output.PrintError(fmt.Sprintf("%s Failed to fetch server list: %v", output.StyleSymbols["fail"], err))
		output.PrintWarning("Using embedded fallback servers")
		return err
	}
	output.PrintSuccess(fmt.Sprintf("%s Downloaded %d servers (version %s)", output.StyleSymbols["pass"], len(list.Servers), list.Version))
	data := servers.LoadLocal()
	data.RemoteList = list
	data.CacheTimestamp = time.Now().UTC()
	if err := servers.SaveLocal(data); err != nil {
		output.PrintError(fmt.Sprintf("Warning: Failed to save server list: %v", err))
		return nil
	}
	output.PrintSuccess(fmt.Sprintf("%s Server list cached successfully", output.StyleSymbols["pass"]))
	return nil
}

func newServersPingCmd() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check header latency for every server",
		Run: func(cmd *cobra.Command, args []string) {
			utils.InitLogger(debug)
			data := servers.LoadLocal()
			list := data.Merged()
			output.PrintWarning(fmt.Sprintf("Probing %d servers...", len(list)))
			results := servers.Probe(context.Background(), list, concurrency)
			table := output.NewTable([]string{"Name", "Latency", "Status"})
			for _, probe := range results {
				if probe.Err != nil {
					table.AddRow(probe.Server.Name, "-", output.FError(output.StyleSymbols["fail"]))
					data.RecordResult(probe.Server.URL, false, 0, 0)
					continue
				}
				latencyMs := float64(probe.Latency) / float64(time.Millisecond)
				table.AddRow(probe.Server.Name, fmt.Sprintf("%.0f ms", latencyMs), output.FSuccess(output.StyleSymbols["pass"]))
				data.RecordResult(probe.Server.URL, true, -1, latencyMs)
			}
			fmt.Println(table.String())
			if err := servers.SaveLocal(data); err != nil {
				output.PrintError(fmt.Sprintf("Warning: Failed to save server health: %v", err))
			}
		},
	}

	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 4, "Number of concurrent probes")
	return cmd
}
