package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(tournamentsCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(headToHeadCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Get the tournament and player counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/stats")
	},
}

var tournamentsCmd = &cobra.Command{
	Use:   "tournaments",
	Short: "List all tournaments, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/tournaments")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List aggregated player totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/players")
	},
}

var playerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Get a player's cumulative record and tournament history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/player?id=" + url.QueryEscape(args[0]))
	},
}

var headToHeadCmd = &cobra.Command{
	Use:   "head-to-head <id>",
	Short: "Get a player's per-opponent records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/head-to-head?id=" + url.QueryEscape(args[0]))
	},
	Args: cobra.ExactArgs(1),
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Get the placement-points leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/leaderboard")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
