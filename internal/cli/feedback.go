package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var feedbackIDs string

var feedbackCmd = &cobra.Command{
	Use:   "feedback <+1|-1> [context]",
	Short: "Record an outcome signal",
	Long: "Apply feedback to specific entries (--ids) or to the five most recently\n" +
		"touched unresolved entries. Positive feedback reinforces; negative feedback\n" +
		"penalizes harder than positive rewards, and counts as a correction.",
	Args: cobra.RangeArgs(1, 2),
	RunE: runFeedback,
}

func init() {
	feedbackCmd.Flags().StringVar(&feedbackIDs, "ids", "", "Comma-separated entry ids to target")
}

func runFeedback(cmd *cobra.Command, args []string) error {
	direction, err := strconv.Atoi(args[0])
	if err != nil || direction == 0 {
		fmt.Printf("Failed (direction must be +1 or -1, got %q)\n", args[0])
		return nil
	}

	context := ""
	if len(args) > 1 {
		context = args[1]
	}

	var ids []string
	if feedbackIDs != "" {
		for _, id := range strings.Split(feedbackIDs, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	eng, err := openEngine()
	if err != nil {
		return err
	}

	n, err := eng.Feedback(direction, context, ids)
	if err != nil {
		return err
	}

	sign := ""
	if direction > 0 {
		sign = "+"
	}
	fmt.Printf("Feedback (%s%d) applied to %d entries\n", sign, direction, n)
	return nil
}
