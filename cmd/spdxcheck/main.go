// Command spdxcheck evaluates SPDX license expressions and CycloneDX SBOM
// component licenses against a YAML acceptance policy.
package main

import (
	"fmt"
	"os"

	"github.com/gospdx/expr/cmd/spdxcheck/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
