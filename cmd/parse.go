package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	parseSender    string
	parseTimestamp int64
	parseMandate   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [message]",
	Short: "Parse a single notification message",
	Long: `Parses one notification message and prints the result as JSON.
The message is taken from the arguments, or from stdin when no
argument is given. The sender id (-s) selects the institution.`,
	Run: parseHandler,
}

func parseHandler(cmd *cobra.Command, args []string) {
	message := viper.GetString("message")
	if message == "" && len(args) > 0 {
		message = strings.Join(args, " ")
	}
	if message == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: could not read stdin: %v\n", err)
			os.Exit(1)
		}
		message = strings.TrimSpace(string(data))
	}
	if message == "" {
		fmt.Fprintln(os.Stderr, "error: no message given")
		os.Exit(1)
	}
	if parseSender == "" {
		fmt.Fprintln(os.Stderr, "error: --sender/-s is required")
		os.Exit(1)
	}

	timestamp := parseTimestamp
	if timestamp == 0 {
		timestamp = time.Now().UnixMilli()
	}

	registry := buildRegistry()

	enc := json.NewEncoder(os.Stdout)
	if viper.GetBool("output.pretty") {
		enc.SetIndent("", "  ")
	}

	rs, found := registry.Resolve(parseSender)
	if !found {
		enc.Encode(map[string]any{"parsed": false, "reason": "unknown sender"})
		os.Exit(1)
	}

	if parseMandate {
		info, detected := rs.TryParseMandate(message)
		if !detected {
			enc.Encode(map[string]any{"detected": false, "bank": rs.Bank})
			os.Exit(1)
		}
		enc.Encode(map[string]any{"detected": true, "bank": rs.Bank, "mandate": info})
		return
	}

	tx, parsed := rs.Parse(message, parseSender, timestamp)
	if !parsed {
		enc.Encode(map[string]any{"parsed": false, "bank": rs.Bank})
		os.Exit(1)
	}
	enc.Encode(map[string]any{"parsed": true, "bank": rs.Bank, "transaction": tx})
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().Int64VarP(&parseTimestamp, "timestamp", "t", 0, "delivery time in Unix milliseconds (default now)")
	parseCmd.Flags().BoolVarP(&parseMandate, "mandate", "m", false, "check for a mandate/future debit instead of a transaction")
	parseCmd.Flags().Bool("pretty", false, "pretty-print JSON output")
	viper.BindPFlag("output.pretty", parseCmd.Flags().Lookup("pretty"))
}
