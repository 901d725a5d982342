package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/einzigartigerName/bitwise-io/bitstream"
	"github.com/spf13/cobra"
)

var dumpLimit uint64

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "print a stream as binary digits",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().Uint64Var(&dumpLimit, "limit", 0, "max number of bits to print (0 for no limit)")
}

func runDump(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	reader, err := bitstream.NewReader(bitstream.NewSourceSize(file, int(cfg.BufSize)))
	if err != nil {
		return err
	}

	var out strings.Builder
	var numBits uint64
	for dumpLimit == 0 || numBits < dumpLimit {
		bit, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		out.WriteString(bit.String())
		numBits++

		if numBits%64 == 0 {
			out.WriteByte('\n')
		} else if numBits%8 == 0 {
			out.WriteByte(' ')
		}
	}

	fmt.Println(out.String())
	return nil
}
