package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rezonia/zatca-egs/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP relay server",
	Long: `Start the HTTP endpoint the Manager relay extension posts to.

The API provides:
  - POST /api/v1/relay/map  - Map a relay payload to an invoice document
  - GET  /health            - Health check

Examples:
  # Start server on default port
  zatca-egs serve

  # Start on custom port in debug mode
  zatca-egs serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 30*time.Second, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env is optional; flags and real env vars win
	_ = godotenv.Load()

	if serverAddr == ":8080" {
		if addr := os.Getenv("ZATCA_EGS_ADDRESS"); addr != "" {
			serverAddr = addr
		}
	}

	config := &server.Config{
		Address:      serverAddr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}

	srv := server.NewServer(config)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down server")
		os.Exit(0)
	}()

	log.WithField("address", serverAddr).Info("starting relay server")
	return srv.Run()
}
