package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/efoerster/texlab/internal/server"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// Version will be set during the build process using ldflags
var Version = "(dev) v0.0.0"

var (
	logfileFlag   string
	verbosityFlag int
	websocketFlag string
	metricsFlag   string
	versionFlag   bool
)

var rootCmd = &cobra.Command{
	Use:           "texlab",
	Short:         "LaTeX and BibTeX language server",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServer,
}

func init() {
	rootCmd.Flags().StringVar(&logfileFlag, "logfile", "", "Path to log file")
	rootCmd.Flags().CountVarP(&verbosityFlag, "verbose", "v", "Increase log verbosity")
	rootCmd.Flags().StringVar(&websocketFlag, "websocket", "", "Serve LSP over WebSocket on this address instead of stdio")
	rootCmd.Flags().StringVar(&metricsFlag, "metrics", "", "Expose Prometheus metrics on this address")
	rootCmd.Flags().BoolVar(&versionFlag, "version", false, "Print the version of the program")
	rootCmd.AddCommand(dumpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	if versionFlag {
		fmt.Printf("texlab LSP server version %s\n", Version)
		return nil
	}

	// Logging
	if logfileFlag != "" {
		logFile, err := os.OpenFile(logfileFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		log.Println("Starting texlab LSP server...")
		commonlog.Configure(2+verbosityFlag, &logfileFlag)
	} else {
		log.SetOutput(io.Discard)
		commonlog.Configure(verbosityFlag, nil)
	}

	server.Version = Version
	srv := server.NewServer()

	if metricsFlag != "" {
		go serveMetrics(metricsFlag)
	}

	if websocketFlag != "" {
		return serveWebSocket(websocketFlag, srv)
	}
	return srv.RunStdio()
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Printf("metrics on http://%s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("metrics server: %v", err)
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// serveWebSocket accepts LSP clients over WebSocket, one session per
// connection.
func serveWebSocket(addr string, srv interface{ ServeWebSocket(*websocket.Conn) }) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("websocket upgrade: %v", err)
			return
		}
		defer conn.Close()
		log.Printf("client connected from %s", r.RemoteAddr)
		srv.ServeWebSocket(conn)
		log.Printf("client %s disconnected", r.RemoteAddr)
	})
	log.Printf("listening for websocket clients on %s", addr)
	return http.ListenAndServe(addr, mux)
}
