package cmd

import (
	"fmt"
	"os"

	cyclonedx "github.com/CycloneDX/cyclonedx-go"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gospdx/expr"
	"github.com/gospdx/expr/policy"
)

func newSBOMCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sbom <bom.json>",
		Short: "Evaluate a CycloneDX SBOM's component licenses against a policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pol, err := loadPolicyFromFlags(cmd)
			if err != nil {
				return fmt.Errorf("loading policy: %w", err)
			}
			logger := loggerFromFlags(cmd)

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening sbom: %w", err)
			}
			defer f.Close()

			var bom cyclonedx.BOM
			if err := cyclonedx.NewBOMDecoder(f, cyclonedx.BOMFileFormatJSON).Decode(&bom); err != nil {
				return fmt.Errorf("decoding sbom: %w", err)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Component", "License", "Result"})
			table.SetBorders(tablewriter.Border{Left: true, Top: true, Right: true, Bottom: true})
			table.SetRowSeparator("-")
			table.SetCenterSeparator("|")
			table.SetAlignment(tablewriter.ALIGN_LEFT)

			allSatisfied := true
			if bom.Components != nil {
				for _, c := range *bom.Components {
					licenseStr, ok := licenseExpressionOf(c)
					if !ok {
						continue
					}
					result := evaluateComponentLicense(licenseStr, pol)
					if result != "PASS" {
						allSatisfied = false
					}
					table.Append([]string{c.Name, licenseStr, result})
				}
			}
			table.Render()

			logger.Info("sbom checked", "file", args[0], "policy_mode", pol.Mode, "all_satisfied", allSatisfied)
			if !allSatisfied {
				return errUnsatisfied
			}
			return nil
		},
	}
}

func evaluateComponentLicense(licenseStr string, pol *policy.Policy) string {
	expr, err := spdxexpr.Parse(licenseStr, pol.Mode)
	if err != nil {
		return "ERROR: " + err.Error()
	}
	if expr.Evaluate(pol.Predicate()) {
		return "PASS"
	}
	return "FAIL"
}

// licenseExpressionOf returns the first usable license expression or
// license name/ID on a component's license choices.
func licenseExpressionOf(c cyclonedx.Component) (string, bool) {
	if c.Licenses == nil {
		return "", false
	}
	for _, lc := range *c.Licenses {
		if lc.Expression != "" {
			return lc.Expression, true
		}
		if lc.License != nil {
			if lc.License.ID != "" {
				return lc.License.ID, true
			}
			if lc.License.Name != "" {
				return lc.License.Name, true
			}
		}
	}
	return "", false
}
