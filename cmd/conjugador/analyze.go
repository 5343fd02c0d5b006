package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	conjugador "github.com/cours-de-latin/conjugador"
	"github.com/cours-de-latin/conjugador/internal/logger"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <verb> <form>",
	Short: "Find where a form occurs in the conjugation of a verb",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conj, err := conjugador.New(conjugador.WithLogger(logger.Desugar()))
		if err != nil {
			return err
		}
		verb, err := conj.Verb(strings.ToLower(args[0]))
		if err != nil {
			return err
		}
		as, err := conj.Analyze(verb, args[1])
		if err != nil {
			return err
		}
		if len(as) == 0 {
			pterm.Warning.Printf("%q is not a form of %s\n", args[1], verb)
			return nil
		}
		data := pterm.TableData{{"tense", "person", "variant"}}
		for _, a := range as {
			person := ""
			if !a.Tense.SingleForm() {
				person = subjects[a.Person]
			}
			data = append(data, []string{a.Tense.String(), person, a.Variant.String()})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}
