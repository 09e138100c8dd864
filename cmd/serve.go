package cmd

import (
	"log"
	"os"

	"github.com/rudrakos/finsms/api"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP API server",
	Long:  `Starts the HTTP API server that accepts notification text and returns parsed transactions as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure logging for server mode
		log.SetOutput(os.Stdout)
		log.SetFlags(log.Ltime | log.Lmsgprefix)

		// Create API server with configuration
		cfg := api.DefaultConfig()
		if servePort != "" {
			cfg.Port = ":" + servePort
		} else if port := viper.GetString("server.port"); port != "" {
			cfg.Port = ":" + port
		}
		cfg.LogPrefix = "SERVER: "

		server := api.New(cfg, buildRegistry())
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to run the API server on (default from config, 8080)")
}
