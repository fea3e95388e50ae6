package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gospdx/expr"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <expression>",
		Short: "Check whether a policy satisfies an SPDX expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pol, err := loadPolicyFromFlags(cmd)
			if err != nil {
				return fmt.Errorf("loading policy: %w", err)
			}
			logger := loggerFromFlags(cmd)

			expression := args[0]
			expr, err := spdxexpr.Parse(expression, pol.Mode)
			if err != nil {
				return fmt.Errorf("parsing expression: %w", err)
			}

			satisfied, unmet := expr.EvaluateWithFailures(pol.Predicate())
			logger.Info("checked expression",
				"expression", expression,
				"policy_mode", pol.Mode,
				"satisfied", satisfied,
			)

			if satisfied {
				fmt.Println("SATISFIED")
				return nil
			}

			fmt.Println("UNSATISFIED")
			for _, req := range unmet {
				fmt.Printf("  unmet: %s\n", displayForCLI(req))
			}
			return errUnsatisfied
		},
	}
}
