package main

import (
	"fmt"
	"os"

	"github.com/CrealityOfficial/stepfile/step"
	"github.com/CrealityOfficial/stepfile/step/readdata"
	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <file>",
		Short: "Parse a STEP file and print its counters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			d := readdata.New(readdata.Limits{})
			defer d.Clear(readdata.ClearAll)

			if err := step.Parse(source, args[0], d); err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			fmt.Printf("records:        %d\n", d.NbRecords())
			fmt.Printf("header records: %d\n", d.NbHeaderRecords())
			fmt.Printf("body records:   %d\n", d.NbBodyRecords())
			fmt.Printf("arguments:      %d\n", d.NbParams())
			fmt.Printf("pages:          %d text, %d record, %d argument\n",
				d.NbCharPages(), d.NbRecPages(), d.NbArgPages())
			return nil
		},
	}
	return cmd
}
