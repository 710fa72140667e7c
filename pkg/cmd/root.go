package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/c9s/novaex/pkg/cmd/cmdutil"
	"github.com/c9s/novaex/pkg/envvar"
)

var RootCmd = &cobra.Command{
	Use:   "novactl",
	Short: "novaexchange api client",
	Long:  "command line client for the NovaExchange remote api v2",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadDotenv(viper.GetString("dotenv"))
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("dotenv", ".env.local", "the dotenv file you want to load")
	RootCmd.PersistentFlags().String("log-file", "log/novactl.log", "log file path used in production")

	// A flag can be 'persistent' meaning that this flag will be available to
	// the command it's assigned to as well as every command under that command.
	cmdutil.PersistentFlags(RootCmd.PersistentFlags())
}

// loadDotenv loads the dotenv file if it exists, a missing file is not an error.
func loadDotenv(dotenvFile string) error {
	if len(dotenvFile) == 0 {
		return nil
	}

	if _, err := os.Stat(dotenvFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Wrapf(err, "unable to stat dotenv file %s", dotenvFile)
	}

	if err := godotenv.Load(dotenvFile); err != nil {
		return errors.Wrapf(err, "error loading dotenv file %s", dotenvFile)
	}

	log.Debugf("loaded dotenv file %s", dotenvFile)
	return nil
}

func setupLogger() {
	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()
	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	environment, _ := envvar.String("NOVA_ENV", "development")
	switch environment {
	case "production", "prod":
		maxSize, _ := envvar.Int("NOVA_LOG_MAX_SIZE", 100)
		maxBackups, _ := envvar.Int("NOVA_LOG_MAX_BACKUPS", 7)
		maxAge, _ := envvar.Int("NOVA_LOG_MAX_AGE", 30)
		compress, _ := envvar.Bool("NOVA_LOG_COMPRESS")

		writer := &lumberjack.Logger{
			Filename:   viper.GetString("log-file"),
			MaxSize:    maxSize, // megabytes
			MaxBackups: maxBackups,
			MaxAge:     maxAge, // days
			Compress:   compress,
		}

		logger.AddHook(&writerHook{
			writer:    writer,
			formatter: &log.JSONFormatter{},
		})
	}
}

func Execute() {
	viper.SetEnvKeyReplacer(cmdutil.EnvKeyReplacer)

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}

	cobra.OnInitialize(setupLogger)

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
