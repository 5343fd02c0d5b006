package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	conjugador "github.com/cours-de-latin/conjugador"
	"github.com/cours-de-latin/conjugador/internal/logger"
)

var subjects = [conjugador.PersonCount]string{"eu", "tu", "ele", "nós", "vós", "eles"}

var conjugateCmd = &cobra.Command{
	Use:   "conjugate <verb>",
	Short: "Print the conjugation table of a verb",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, _ := cmd.Flags().GetString("variant")
		if variant == "" {
			variant = cfg.Defaults.Variant
		}
		mood, _ := cmd.Flags().GetString("mood")
		if mood == "" {
			mood = cfg.Defaults.Mood
		}
		pronouns, _ := cmd.Flags().GetStringArray("pronoun")
		tenseNames, _ := cmd.Flags().GetStringSlice("tense")
		asJSON, _ := cmd.Flags().GetBool("json")

		tenses, err := parseTenses(tenseNames)
		if err != nil {
			return err
		}
		opts, err := conjugador.ParseOptions(strings.ToLower(args[0]), variant, mood, pronouns...)
		if err != nil {
			return err
		}
		conj, err := conjugador.New(conjugador.WithLogger(logger.Desugar()))
		if err != nil {
			return err
		}
		vt, err := conj.ConjugateOptions(opts)
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(vt, tenses)
		}
		return printTables(vt, tenses)
	},
}

func init() {
	conjugateCmd.Flags().String("variant", "", "bp, bp-pre, ep or ep-pre (default from config)")
	conjugateCmd.Flags().String("mood", "", "regular, passive or progressive (default from config)")
	conjugateCmd.Flags().StringArray("pronoun", nil, "object pronoun to attach; repeat for indirect then direct")
	conjugateCmd.Flags().StringSlice("tense", nil, "only print these tenses")
	conjugateCmd.Flags().BoolP("json", "j", false, "print JSON")
}

// parseTenses returns the requested tenses, or all of them.
func parseTenses(names []string) ([]conjugador.Tense, error) {
	if len(names) == 0 {
		all := make([]conjugador.Tense, conjugador.TenseCount)
		for i := range all {
			all[i] = conjugador.Tense(i)
		}
		return all, nil
	}
	out := make([]conjugador.Tense, 0, len(names))
	for _, n := range names {
		t, err := conjugador.ParseTense(n)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func printTables(vt conjugador.VariantTable, tenses []conjugador.Tense) error {
	pterm.DefaultHeader.WithFullWidth().Printf("%s (%s)", vt.Verb.InfinitiveFor(vt.Variant), vt.Variant)
	for _, t := range tenses {
		row := vt.Rows[t]
		pterm.Println()
		pterm.Println(pterm.LightCyan(t.String()))

		data := pterm.TableData{}
		if t.SingleForm() {
			data = append(data, []string{"", formatCell(row, 0)})
		} else {
			for p, subject := range subjects {
				data = append(data, []string{subject, formatCell(row, p)})
			}
		}
		if err := pterm.DefaultTable.WithData(data).Render(); err != nil {
			return err
		}
	}
	return nil
}

func formatCell(row conjugador.Row, p int) string {
	if p >= len(row) || row[p].Absent() {
		return pterm.Gray("-")
	}
	return row[p].String()
}

func printJSON(vt conjugador.VariantTable, tenses []conjugador.Tense) error {
	out := make(map[string][]*string, len(tenses))
	for _, t := range tenses {
		out[t.String()] = vt.Rows[t].Forms()
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding json")
	}
	fmt.Println(string(b))
	return nil
}
