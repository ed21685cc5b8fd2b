// Package cli provides the command-line interface for the cidr subnet
// calculator. The root command resolves terse address specifiers into
// networks and prints one stanza per network; subcommands cover
// configuration inspection.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nwaddell/cidr/internal/cidr"
	"github.com/nwaddell/cidr/internal/config"
	"github.com/nwaddell/cidr/internal/errors"
	"github.com/nwaddell/cidr/internal/expand"
	"github.com/nwaddell/cidr/internal/logging"
	"github.com/nwaddell/cidr/internal/render"
)

var (
	cfgFile    string
	verbose    bool
	maskFlag   string
	outputFlag string
	noColor    bool
)

// Build information - these will be set by ldflags during build.
var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

// rootCmd represents the base command. Unlike most cobra tools the root
// command does the real work: it takes address specifiers directly.
var rootCmd = &cobra.Command{
	Use:   "cidr [flags] ADDRESS...",
	Short: "Pretty-print CIDR info for one or more addresses",
	Long: `cidr computes and displays IPv4 subnet information: network and
broadcast addresses, netmask, usable host range, and address counts.

Specifiers may be full ("10.0.0.1/24"), prefix-only ("/16", inheriting
the most recently seen address, defaulting to 192.168.1.1), or explicit
overrides ("/10.0.0.1/24"). An explicit --mask replaces the prefix of
every specifier.`,
	Example: `  cidr 10.10.10.1/16
  cidr 10.0.0.1/24 /16 /8
  cidr /172.16.0.1/12 /30
  cidr 10.1.2.3 --mask 255.255.248.0
  cidr 192.168.1.0/24 --output json`,
	Version: getVersion(),
	Args:    cobra.MinimumNArgs(1),
	Run:     runNetworks,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().StringVarP(&maskFlag, "mask", "m", "", "explicit network mask (e.g. 255.255.248.0)")
	addOutputFlags(rootCmd.Flags())

	// Bind flags to viper
	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind verbose flag: %v\n", err)
	}
}

// addOutputFlags registers the output-shaping flags on a flag set so
// the root command and tests share one definition.
func addOutputFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&outputFlag, "output", "o", "pretty", "Output format (pretty, plain, table, json)")
	fs.BoolVar(&noColor, "no-color", false, "Disable colorized output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.AutomaticEnv()
	viper.SetEnvPrefix("CIDR")

	// Set defaults for common configuration
	setConfigDefaults()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}

	// Initialize structured logging after config is loaded
	initLogging()
}

// setConfigDefaults sets default values for configuration.
func setConfigDefaults() {
	// Output configuration
	viper.SetDefault("output.format", "pretty")
	viper.SetDefault("output.color", "auto")

	// Logging configuration
	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.output", "stderr")
}

// getConfigFilePath returns the config file path in use.
func getConfigFilePath() string {
	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}
	return "config.yaml"
}

// getVersion returns the version string.
func getVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime)
}

// SetVersion sets the version information (called from main).
func SetVersion(v, c, bt string) {
	version = v
	commit = c
	buildTime = bt
	rootCmd.Version = getVersion()
}

// initLogging initializes structured logging based on configuration.
func initLogging() {
	cfg, err := config.Load(getConfigFilePath())
	if err != nil {
		// If config loading fails, use default logging
		logger := logging.NewDefault()
		logging.SetDefault(logger)
		return
	}

	logConfig := cfg.GetLoggingConfig()
	if verbose {
		logConfig.Level = logging.LevelDebug
	}

	logger, err := logging.New(logConfig)
	if err != nil {
		// Fall back to default if creation fails
		logger = logging.NewDefault()
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	logging.SetDefault(logger)
}

// runNetworks handles the root command.
func runNetworks(cmd *cobra.Command, args []string) {
	if err := executeNetworks(cmd, os.Stdout, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// executeNetworks resolves all specifiers and writes the rendered
// output. Any parse failure aborts before a single stanza is written.
func executeNetworks(cmd *cobra.Command, w io.Writer, args []string) error {
	nets, err := resolveNetworks(args, maskFlag)
	if err != nil {
		logging.ErrorParse("Failed to resolve specifiers", "", err)
		return err
	}

	format := outputFlag
	if cmd != nil && !cmd.Flags().Changed("output") {
		format = viper.GetString("output.format")
	}
	applyColorMode()

	return renderNetworks(w, nets, format)
}

// resolveNetworks expands the raw tokens and parses each resolved
// specifier into a network. The optional mask applies to every
// specifier, mirroring the global --mask flag.
func resolveNetworks(tokens []string, mask string) ([]cidr.Network, error) {
	specs, err := expand.Expand(tokens)
	if err != nil {
		return nil, err
	}

	nets := make([]cidr.Network, 0, len(specs))
	for _, spec := range specs {
		n, err := cidr.ParseNetwork(spec, mask)
		if err != nil {
			return nil, err
		}
		logging.InfoNetwork("Resolved network", n.String(), "prefix", n.Prefix())
		nets = append(nets, n)
	}
	return nets, nil
}

// renderNetworks writes all networks in the requested format.
func renderNetworks(w io.Writer, nets []cidr.Network, format string) error {
	switch format {
	case "table":
		return render.Table(w, nets)
	case "json":
		return render.JSON(w, nets)
	case "plain":
		_, err := fmt.Fprint(w, render.RenderAll(render.Plain{}, nets))
		return err
	case "pretty", "":
		_, err := fmt.Fprint(w, render.RenderAll(render.Pretty{}, nets))
		return err
	default:
		return errors.ErrConfigInvalid("output.format", format)
	}
}

// applyColorMode resolves the color setting from the --no-color flag
// and the output.color config key. "auto" leaves detection to the
// color package.
func applyColorMode() {
	switch {
	case noColor, viper.GetString("output.color") == "never":
		color.NoColor = true
	case viper.GetString("output.color") == "always":
		color.NoColor = false
	}
}
