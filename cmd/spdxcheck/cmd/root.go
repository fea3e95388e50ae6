// Package cmd implements the spdxcheck command-line tree: a cobra.Command
// tree with shared persistent flags and one file per subcommand.
package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/gospdx/expr"
	"github.com/gospdx/expr/internal/log"
	"github.com/gospdx/expr/policy"
)

// errUnsatisfied signals a clean exit-code-1 condition (a policy that
// doesn't satisfy an expression), as opposed to an operational failure.
var errUnsatisfied = errors.New("policy does not satisfy expression")

// displayForCLI renders a single requirement leaf for terminal output,
// reusing the same display rules as a full Expression's Display form.
func displayForCLI(req spdxexpr.LicenseReq) string {
	return spdxexpr.DisplayRequirement(req)
}

// New builds the root spdxcheck command.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:   "spdxcheck",
		Short: "Evaluate SPDX license expressions against an acceptance policy",
		Long: "spdxcheck parses SPDX license expressions and CycloneDX SBOM " +
			"component licenses and checks them against a YAML acceptance policy.",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("policy", "", "path to a policy YAML file (required)")
	root.PersistentFlags().String("log-level", string(log.DefaultLevel), "log level: trace|debug|info|warn|error")
	_ = root.MarkPersistentFlagRequired("policy")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newMinCmd())
	root.AddCommand(newSBOMCmd())
	return root
}

func loggerFromFlags(cmd *cobra.Command) *log.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return log.New(log.ParseLevel(level))
}

func loadPolicyFromFlags(cmd *cobra.Command) (*policy.Policy, error) {
	path, err := cmd.Flags().GetString("policy")
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return policy.Load(f)
}
