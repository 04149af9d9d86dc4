package cli

import (
	"fmt"
	"os"

	"github.com/aretw0/fabula/internal/validator"
)

// RunValidate loads the story file and reports authoring mistakes: a missing
// root and nodes unreachable from it. Returns an error if the story is not
// playable so the command can exit non-zero.
func RunValidate(opts RunOptions) error {
	tree, err := loadTree(opts)
	if err != nil {
		return err
	}

	report := validator.Validate(tree)
	if report.OK() {
		fmt.Fprintf(os.Stdout, "OK: %d nodes, all reachable from the root.\n", report.Reachable)
		return nil
	}

	if !report.HasRoot {
		fmt.Fprintln(os.Stdout, "No root designated; the story cannot start.")
	}
	for _, id := range report.Unreachable {
		fmt.Fprintf(os.Stdout, "Unreachable node: %s\n", id)
	}
	return fmt.Errorf("story validation failed")
}
