package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	conjugador "github.com/cours-de-latin/conjugador"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <verb>",
	Short: "Show the spellings, flags and irregularity classes of a verb",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verb, err := conjugador.NewVerb(strings.ToLower(args[0]))
		if err != nil {
			return err
		}
		in, err := conjugador.Inspect(verb)
		if err != nil {
			return err
		}

		pterm.DefaultHeader.WithFullWidth().Printf("%s (-%s)", in.Infinitive, in.Ending)

		spellings := pterm.TableData{{"variant", "infinitive"}}
		for _, v := range conjugador.Variants {
			spellings = append(spellings, []string{v.String(), in.Spellings[v]})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(spellings).Render(); err != nil {
			return err
		}

		pterm.Println()
		f := in.Flags
		if f.Root != "" {
			pterm.Printf("%s %s\n", pterm.Yellow("conjugates like:"), f.Root)
		}
		pterm.Printf("%s %v\n", pterm.Yellow("third singular only:"), f.ThirdSingularOnly)
		pterm.Printf("%s %v\n", pterm.Yellow("third person only:"), f.ThirdPersonOnly)
		pterm.Printf("%s %v\n", pterm.Yellow("arrhizotonic only:"), f.ArrhizotonicOnly)
		pterm.Printf("%s %v\n", pterm.Yellow("no first singular:"), f.NoFirstSingular)

		pterm.Println()
		classes := pterm.TableData{{"family", "class"}}
		for i, p := range in.Patterns {
			classes = append(classes, []string{conjugador.Family(i).String(), string(p)})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(classes).Render()
	},
}

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("conjugador %s\n", Version)
		fmt.Printf("Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
