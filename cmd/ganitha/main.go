// Package main provides the CLI entrypoint for Ganitha.
package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ayusman/ganitha/internal/config"
	"github.com/ayusman/ganitha/internal/game"
	"github.com/ayusman/ganitha/internal/quiz"
	"github.com/ayusman/ganitha/internal/server"
	"github.com/ayusman/ganitha/internal/store"
	"github.com/ayusman/ganitha/internal/tray"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var (
	flagConfig   string
	flagDB       string
	flagMode     string
	flagCamera   int
	flagAddr     string
	flagHeadless bool

	statsLast int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "ganitha",
		Short:        "Hand gesture math quiz",
		SilenceUsage: true,
		RunE:         runPlayCmd,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.ganitha/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database (default: ~/.ganitha/ganitha.db)")
	rootCmd.Flags().StringVar(&flagMode, "mode", "", "quiz mode: comparison or arithmetic")
	rootCmd.Flags().IntVar(&flagCamera, "camera", 0, "camera device ID")
	rootCmd.Flags().StringVar(&flagAddr, "addr", "", "HTTP listen address (default: :8080)")
	rootCmd.Flags().BoolVar(&flagHeadless, "headless", false, "run without the system tray")

	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig reads the config file and overlays command line flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("mode") {
		cfg.Mode = flagMode
	}
	if cmd.Flags().Changed("camera") {
		cfg.CameraID = flagCamera
	}
	if cmd.Flags().Changed("addr") {
		cfg.HTTPAddr = flagAddr
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath = flagDB
	}

	return cfg, nil
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	kind, err := quiz.ParseKind(cfg.Mode)
	if err != nil {
		return err
	}

	fmt.Println("Ganitha - Hand Gesture Math Quiz")

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	st, err := store.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer st.Close()

	g := game.New(game.Config{
		Store:        st,
		PluginDir:    cfg.PluginDir,
		CameraID:     cfg.CameraID,
		MotionThresh: cfg.MotionThreshold,
		Mode:         kind,
	})

	if err := g.DiscoverPlugins(); err != nil {
		log.Printf("Plugin discovery failed: %v", err)
	}

	if err := g.Start(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	defer g.Stop()

	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = findWebDir()
	}
	if staticDir != "" {
		fmt.Printf("Serving static files from: %s\n", staticDir)
	}

	srv := server.New(server.Config{
		StaticDir: staticDir,
		Store:     st,
		Camera:    g.Camera(),
		Game:      g,
	})

	fmt.Printf("Starting server on %s\n", cfg.HTTPAddr)
	go func() {
		if err := srv.ListenAndServe(cfg.HTTPAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if flagHeadless {
		waitForSignal()
		return nil
	}

	runTray(g, kind, cfg.HTTPAddr)
	return nil
}

// waitForSignal blocks until SIGINT or SIGTERM.
func waitForSignal() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("Shutting down")
}

// runTray wires the game into the system tray menu and blocks until the
// user quits.
func runTray(g *game.Game, kind quiz.Kind, addr string) {
	t := tray.New()
	t.SetMode(string(kind))

	t.OnToggle(func(enabled bool) {
		g.SetEnabled(enabled)
	})
	t.OnRestart(func() {
		g.Restart()
	})
	t.OnOverlay(func() {
		openBrowser(overlayURL(addr))
	})
	t.OnQuit(func() {
		fmt.Println("Shutting down")
	})

	g.OnAnswer = func(correct bool, score int) {
		t.SetScore(score)
	}

	t.Run()
}

// overlayURL converts a listen address into a browsable URL.
func overlayURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// findWebDir searches for the overlay web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.ganitha/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	webDir := filepath.Join(config.Dir(), "web")
	if info, err := os.Stat(webDir); err == nil && info.IsDir() {
		return webDir
	}

	return ""
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show session history and accuracy",
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, err := store.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	sessions, err := st.Sessions().List()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if statsLast > 0 && len(sessions) > statsLast {
		sessions = sessions[:statsLast]
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	// Header.
	fmt.Printf("%-19s  %-10s  %-5s  %-6s  %-8s\n",
		"Started", "Mode", "Score", "Rounds", "Accuracy")
	fmt.Println(strings.Repeat("─", 58))

	var totalRounds, totalCorrect int
	for _, sess := range sessions {
		total, correct, err := st.Rounds().CountBySession(sess.ID)
		if err != nil {
			return fmt.Errorf("failed to count rounds: %w", err)
		}
		totalRounds += total
		totalCorrect += correct

		fmt.Printf("%-19s  %-10s  %-5d  %-6d  %-8s\n",
			sess.StartedAt.Local().Format("2006-01-02 15:04:05"),
			sess.Mode,
			sess.Score,
			total,
			accuracy(correct, total),
		)
	}

	fmt.Println(strings.Repeat("─", 58))
	fmt.Printf("%d sessions, %d rounds, overall accuracy %s\n",
		len(sessions), totalRounds, accuracy(totalCorrect, totalRounds))

	return nil
}

// accuracy formats correct/total as a percentage, or "-" with no rounds.
func accuracy(correct, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", float64(correct)/float64(total)*100)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("ganitha", version)
		},
	}
}
