package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yourusername/clust/internal/app"
	"k8s.io/klog/v2"
)

var (
	// Version will be set by build flags
	Version = "dev"

	// Global flags
	configFile  string
	kubeconfig  string
	kubeContext string
	simulated   bool
	verbose     bool
	locale      string
)

var rootCmd = &cobra.Command{
	Use:   "clust",
	Short: "A terminal dashboard for cluster pods and contexts",
	Long: `clust shows the state of a cluster in the terminal.

Type :pods, :ctx or :help and press Enter to switch views; press q to quit.
Settings are read from clust.toml in the user config directory, which is
created with defaults on first run.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runConsole,
}

func init() {
	// client-go logs through klog to stderr, which would corrupt the TUI
	klog.InitFlags(nil)
	flag.Set("logtostderr", "false")
	flag.Set("alsologtostderr", "false")
	flag.Set("stderrthreshold", "FATAL")
	flag.Set("v", "0")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (default: <user config dir>/clust.toml)")
	rootCmd.Flags().StringVarP(&kubeconfig, "kubeconfig", "k", "", "kubeconfig used for context metadata (default: $HOME/.kube/config)")
	rootCmd.Flags().StringVarP(&kubeContext, "context", "c", "", "context reported by the real client")
	rootCmd.Flags().BoolVarP(&simulated, "simulated", "s", false, "use the simulated cluster client")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "enable verbose logging")
	rootCmd.Flags().StringVarP(&locale, "locale", "l", "en", "interface language (en, zh)")
}

func runConsole(cmd *cobra.Command, args []string) error {
	config, err := app.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	if cmd.Flags().Changed("simulated") {
		config.Simulated = simulated
	}
	if kubeconfig != "" {
		config.Kubeconfig = kubeconfig
	}
	if kubeContext != "" {
		config.Context = kubeContext
	}
	if cmd.Flags().Changed("locale") {
		config.Locale = locale
	}
	if verbose {
		config.LogLevel = "debug"
	}

	application, err := app.New(config, Version)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer func() {
		if err := application.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		return fmt.Errorf("application error: %w", err)
	}
	return nil
}

func main() {
	err := rootCmd.Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
