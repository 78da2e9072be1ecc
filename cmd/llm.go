package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/mathquest/internal/llm"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the tutor's journalled model calls",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent model calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		failed, _ := cmd.Flags().GetBool("failed")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		rows := callRows(events, purpose, failed)
		if len(rows) == 0 {
			fmt.Println("No model calls match.")
			return nil
		}
		fmt.Println(renderTable(
			[]string{"ID", "When", "Purpose", "Model", "Tokens", "Ms", "OK"},
			rows, 0, 4, 5,
		))
		return nil
	},
}

// callRows filters events by purpose (empty matches all) and, when
// failedOnly is set, keeps unsuccessful calls only.
func callRows(events []store.LLMRequestEventRecord, purpose string, failedOnly bool) [][]string {
	var rows [][]string
	for _, e := range events {
		if purpose != "" && e.Purpose != purpose {
			continue
		}
		if failedOnly && e.Success {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.Timestamp.Local().Format("01-02 15:04:05"),
			e.Purpose,
			truncate(e.Model, 28),
			fmt.Sprintf("%d/%d", e.InputTokens, e.OutputTokens),
			strconv.FormatInt(e.LatencyMs, 10),
			checkMark(e.Success),
		})
	}
	return rows
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and reply of one model call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		fmt.Print(describeCall(*e))
		return nil
	},
}

func describeCall(e store.LLMRequestEventRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s via %s/%s at %s\n", e.ID, e.Purpose, e.Provider, e.Model,
		e.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "%d in, %d out, %dms, ok=%v\n", e.InputTokens, e.OutputTokens, e.LatencyMs, e.Success)
	if e.ErrorMessage != "" {
		fmt.Fprintf(&b, "error: %s\n", e.ErrorMessage)
	}

	section := func(title, body string) {
		fmt.Fprintf(&b, "\n── %s ──\n", title)
		if body == "" {
			body = "(not captured)"
		}
		b.WriteString(strings.TrimRight(body, "\n"))
		b.WriteByte('\n')
	}
	section("prompt", e.RequestBody)
	section("reply", prettyJSON(e.ResponseBody))
	return b.String()
}

// prettyJSON indents body when it is JSON and returns it untouched otherwise.
func prettyJSON(body string) string {
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(body), "", "  "); err != nil {
		return body
	}
	return out.String()
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise token usage and estimated spend",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No model calls recorded yet.")
			return nil
		}

		var purposeRows [][]string
		for _, st := range byPurpose {
			purposeRows = append(purposeRows, []string{
				st.Purpose,
				strconv.Itoa(st.Calls),
				strconv.Itoa(st.InputTokens),
				strconv.Itoa(st.OutputTokens),
				strconv.FormatInt(st.AvgLatencyMs, 10),
			})
		}
		fmt.Println(renderTable([]string{"Purpose", "Calls", "In", "Out", "Avg ms"}, purposeRows, 1, 2, 3, 4))

		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		rows, total, unpriced := spendRows(byModel)
		label := "total"
		if len(unpriced) > 0 {
			label = "total (partial)"
		}
		rows = append(rows, []string{label, "", "", formatCost(total)})
		fmt.Println(renderTable([]string{"Model", "Calls", "Tokens", "USD"}, rows, 1, 2, 3))
		if len(unpriced) > 0 {
			fmt.Printf("No price on file for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

// spendRows prices each model's usage. Models without a known price show
// "?" and are left out of total.
func spendRows(usage []store.LLMModelUsage) (rows [][]string, total float64, unpriced []string) {
	for _, mu := range usage {
		spend := "?"
		if price, ok := llm.PriceFor(mu.Model); ok {
			c := price.Cost(llm.Usage{Input: mu.InputTokens, Output: mu.OutputTokens})
			total += c
			spend = formatCost(c)
		} else {
			unpriced = append(unpriced, mu.Model)
		}
		rows = append(rows, []string{
			truncate(mu.Model, 32),
			strconv.Itoa(mu.Calls),
			fmt.Sprintf("%d/%d", mu.InputTokens, mu.OutputTokens),
			spend,
		})
	}
	return rows, total, unpriced
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only calls made for this purpose (e.g. explain)")
	llmListCmd.Flags().Bool("failed", false, "Only calls that failed")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
