package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/einzigartigerName/bitwise-io/persistence"
	"github.com/einzigartigerName/bitwise-io/shared"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statCmd = &cobra.Command{
	Use:   "stat [dir]",
	Short: "print a summary of the data files in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStat,
}

func runStat(cmd *cobra.Command, args []string) error {
	dir := cfg.DataDir
	if len(args) == 1 {
		dir = args[0]
	}

	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read data directory: %v", err)
	}

	data := make([][]string, 0)
	for _, file := range files {
		if file.IsDir() || strings.HasSuffix(file.Name(), persistence.MetadataSuffix) {
			continue
		}

		numItems := uint64(file.Size()) * 8 / uint64(cfg.ItemBitSize)
		data = append(data, []string{
			file.Name(),
			bytefmt.ByteSize(uint64(file.Size())),
			strconv.FormatUint(numItems, 10),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"file", "size", "items"})
	table.SetBorder(true)
	table.AppendBulk(data)
	table.Render()

	total, err := persistence.NumBytesWritten(dir, func(info os.FileInfo) bool {
		return !info.IsDir() && !strings.HasSuffix(info.Name(), persistence.MetadataSuffix)
	})
	if err != nil {
		return err
	}

	fmt.Printf("total: %v, available space: %v\n",
		bytefmt.ByteSize(total), bytefmt.ByteSize(shared.AvailableSpace(dir)))

	return nil
}
