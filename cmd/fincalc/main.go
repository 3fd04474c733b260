// fincalc — Indian personal-finance calculation engines.
//
// Every calculation is exposed as a named operation taking JSON parameters
// and emitting a JSON result, so the CLI doubles as a scripting surface.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nivesh/fincalc/internal/calculation"
	"github.com/nivesh/fincalc/internal/config"
	"github.com/nivesh/fincalc/internal/marketdata"
	"github.com/nivesh/fincalc/internal/ops"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

var (
	cfg      *config.Config
	registry *ops.Registry
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fincalc",
	Short: "Indian personal-finance calculators",
	Long: `fincalc computes Indian income tax (old vs new regime, deductions,
capital gains), SIP and EPF projections, retirement and goal planning,
age-based asset allocation with live portfolio valuation, and loan
affordability.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg = config.Default()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		provider := marketdata.NewYahooClient(
			marketdata.WithBaseURL(cfg.MarketData.BaseURL),
			marketdata.WithTimeout(time.Duration(cfg.MarketData.TimeoutSeconds)*time.Second),
		)

		var logger calculation.Logger = calculation.NopLogger{}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger = stderrLogger{}
		}

		registry = ops.DefaultRegistry(cfg, provider, logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (YAML)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log calculation diagnostics to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(opsCmd)
	rootCmd.AddCommand(runCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fincalc %s (%s)\n", version, commit)
	},
}

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List available operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		infos := registry.Operations()

		if asJSON {
			return emit(infos)
		}
		for _, info := range infos {
			fmt.Printf("%-30s %s\n", info.Name, info.Description)
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <operation>",
	Short: "Run one operation with JSON or YAML parameters",
	Long: `Run one operation by name. Parameters come from --params-json or a
JSON/YAML file via --params. Example:

  fincalc run tax.compare_regimes --params-json '{"gross_income": 1500000}'
  fincalc run invest.project_sip --params sip.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := readParams(cmd)
		if err != nil {
			return err
		}

		result, err := registry.Dispatch(cmd.Context(), args[0], params)
		if err != nil {
			return err
		}
		return emit(result)
	},
}

func init() {
	opsCmd.Flags().Bool("json", false, "emit the operation list as JSON")
	runCmd.Flags().String("params", "", "path to a JSON or YAML parameters file")
	runCmd.Flags().String("params-json", "", "inline JSON parameters")
}

func readParams(cmd *cobra.Command) (json.RawMessage, error) {
	inline, _ := cmd.Flags().GetString("params-json")
	file, _ := cmd.Flags().GetString("params")

	if inline != "" && file != "" {
		return nil, fmt.Errorf("--params and --params-json are mutually exclusive")
	}
	if inline != "" {
		return json.RawMessage(inline), nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read params file: %w", err)
		}
		if strings.HasSuffix(file, ".yaml") || strings.HasSuffix(file, ".yml") {
			return yamlToJSON(data)
		}
		return json.RawMessage(data), nil
	}
	return nil, nil
}

func yamlToJSON(data []byte) (json.RawMessage, error) {
	var params map[string]any
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML params: %w", err)
	}
	out, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML params: %w", err)
	}
	return out, nil
}

func emit(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// stderrLogger writes calculation diagnostics to stderr, keeping stdout
// clean for JSON output.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { logf("DEBUG", format, args...) }
func (stderrLogger) Infof(format string, args ...any)  { logf("INFO", format, args...) }
func (stderrLogger) Warnf(format string, args ...any)  { logf("WARN", format, args...) }
func (stderrLogger) Errorf(format string, args ...any) { logf("ERROR", format, args...) }

func logf(level, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}
