package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rudrakos/finsms/parser"
	"github.com/rudrakos/finsms/parser/bank"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Embedded default configuration, used when no .finsms.yaml is found.
const defaultConfigYAML = `
server:
  port: "8080"
database:
  url: ""
output:
  pretty: false
parser:
  # Per-institution currency overrides, applied when the registry is built.
  # Keys are institution names as listed by 'finsms banks'.
  currency_overrides: {}
`

var (
	cfgFile string
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "finsms [message]",
		Short: "Parse bank notification messages into transactions",
		Long: `finsms turns bank and wallet SMS/push notification text into
structured transaction records. The sender id selects an institution
and that institution's rules extract the fields.`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) >= 1 && parseSender != "" {
				viper.Set("message", strings.Join(args, " "))
				parseHandler(parseCmd, []string{})
				return
			}
			cmd.Help()
		},
	}
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default is ./.finsms.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&parseSender, "sender", "s", "", "notification sender id")
}

func initLogging() {
	if !verbose {
		log.SetOutput(io.Discard)
	} else {
		log.SetFlags(log.Ltime | log.Lmsgprefix)
		log.SetPrefix("INFO: ")
	}
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory and home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".finsms")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found, use embedded default configuration
			if err := viper.ReadConfig(bytes.NewBufferString(defaultConfigYAML)); err != nil {
				fmt.Printf("Error loading embedded configuration: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Printf("Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}

// buildRegistry constructs the dispatch registry with any configured
// per-institution currency overrides applied.
func buildRegistry() *parser.Registry {
	registry := bank.NewRegistry()

	overrides := viper.GetStringMapString("parser.currency_overrides")
	if len(overrides) == 0 {
		return registry
	}
	for _, rs := range registry.RuleSets() {
		if code, ok := overrides[strings.ToLower(rs.Bank)]; ok && code != "" {
			log.Printf("currency override: %s -> %s", rs.Bank, strings.ToUpper(code))
			rs.Currency = strings.ToUpper(code)
		}
	}
	return registry
}
