package main

import (
	"fmt"
	"os"

	"github.com/CrealityOfficial/stepfile/check"
	"github.com/CrealityOfficial/stepfile/step"
	"github.com/CrealityOfficial/stepfile/step/readdata"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var trace int
	var withArgs bool
	var charPage, recPage, argPage int

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Parse a STEP file and print its record graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			d := readdata.New(readdata.Limits{
				CharPageSize: charPage,
				RecPageSize:  recPage,
				ArgPageSize:  argPage,
			})
			d.SetTraceLevel(readdata.TraceLevel(trace))
			defer d.Clear(readdata.ClearAll)

			if err := step.Parse(source, args[0], d); err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			for rc := d.Records(); rc.Next(); {
				typ := rc.Type()
				if !rc.HasType() {
					typ = "?"
				}
				fmt.Printf("%4d %-12s %s (%d args)\n", rc.Num(), rc.Ident(), typ, rc.NbArgs())
				if !withArgs {
					continue
				}
				for ac := rc.Args(); ac.Next(); {
					fmt.Printf("       %-8s %s\n", ac.Kind(), ac.Value())
				}
			}

			c := check.New()
			if d.DrainErrors(c) {
				fmt.Printf("%d error(s):\n", c.NbFails())
				for _, msg := range c.Fails() {
					fmt.Println("  " + msg)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&trace, "trace", "t", 0, "trace level while building (0-2)")
	cmd.Flags().BoolVarP(&withArgs, "args", "a", false, "print arguments of each record")
	cmd.Flags().IntVar(&charPage, "char-page", 0, "characters per text page (0 = default)")
	cmd.Flags().IntVar(&recPage, "rec-page", 0, "records per page (0 = default)")
	cmd.Flags().IntVar(&argPage, "arg-page", 0, "arguments per page (0 = default)")

	return cmd
}
