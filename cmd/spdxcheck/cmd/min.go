package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gospdx/expr"
)

func newMinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "min <expression>",
		Short: "Print the smallest subexpression a policy satisfies",
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

			minimized, err := expr.MinimizedRequirements(pol.Accepted)
			var mismatch *spdxexpr.RequirementsMismatch
			if errors.As(err, &mismatch) {
				logger.Info("minimization failed", "expression", expression, "policy_mode", pol.Mode)
				fmt.Println("UNSATISFIED")
				return errUnsatisfied
			}
			if err != nil {
				return fmt.Errorf("minimizing expression: %w", err)
			}

			logger.Info("minimized expression", "expression", expression, "policy_mode", pol.Mode, "result", minimized)
			fmt.Println(minimized)
			return nil
		},
	}
}
