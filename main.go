package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/backend"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/bindings"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/config"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/logging"
)

var (
	circuitFile string
	srsFile     string
	vkFile      string
	proofFile   string

	onChain   bool
	lowMemory bool

	configFile string
	logLevel   string
)

// set up by the root command before any subcommand runs
var (
	cfg          *config.Config
	logger       zerolog.Logger
	plonkBackend *backend.PlonkBackend
	bridge       *bindings.Bridge
)

func init() {
	flags := noirbridgeCmd.PersistentFlags()
	flags.StringVar(&circuitFile, "circuit-file", "", "The circuit manifest (JSON with base64 bytecode and ABI).")
	flags.StringVar(&srsFile, "srs-file", "", "The SRS file, the development SRS is used when empty.")
	flags.StringVar(&vkFile, "vk-file", "", "The verification key file.")
	flags.StringVar(&proofFile, "proof-file", "", "The combined proof file.")
	flags.BoolVar(&onChain, "on-chain", true, "Use the Keccak transcript verifiable on chain.")
	flags.BoolVar(&lowMemory, "low-memory", false, "Do not keep proving keys cached between operations.")
	flags.StringVar(&configFile, "config", "", "Optional config file (json, yaml or toml).")
	flags.StringVar(&logLevel, "log-level", "", "Log level, one of debug/info/warn/error.")
}

var noirbridgeCmd = &cobra.Command{
	Use:           "noirbridge",
	Short:         "Prove and verify Noir-style circuits and handle combined proof blobs",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupEnvironment(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

func setupEnvironment(cmd *cobra.Command) error {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	flags := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		"log_level":  "log-level",
		"srs_path":   "srs-file",
		"on_chain":   "on-chain",
		"low_memory": "low-memory",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}

	var err error
	if cfg, err = config.Load(v, configFile); err != nil {
		return err
	}
	if logger, err = logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		return err
	}

	bridge, plonkBackend, err = bindings.NewFromConfig(cfg, logger)
	return err
}

// srsPath is nil when no SRS was configured, selecting the development SRS.
func srsPath() *string {
	if cfg == nil || cfg.SRSPath == "" {
		return nil
	}
	path := cfg.SRSPath
	return &path
}

func requireFlag(name, value string) error {
	if value == "" {
		return fmt.Errorf("--%s is required", name)
	}
	return nil
}

func main() {
	if err := noirbridgeCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
