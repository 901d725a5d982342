package main

import (
	"io"

	"github.com/einzigartigerName/bitwise-io/persistence"
	smlog "github.com/spacemeshos/smutil/log"
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <dir> <dest>",
	Short: "merge split data files back into one continuous stream",
	Args:  cobra.ExactArgs(2),
	RunE:  runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	dir, dstPath := args[0], args[1]

	readers, err := persistence.NewReadersFromDir(dir, cfg.ItemBitSize)
	if err != nil {
		return err
	}

	merged, err := persistence.Merge(readers)
	if err != nil {
		return err
	}
	defer merged.Close()

	width, err := merged.Width()
	if err != nil {
		return err
	}

	writer, err := persistence.NewFileWriter(dstPath, cfg.ItemBitSize)
	if err != nil {
		return err
	}
	writer.SetLogger(smlog.AppLog)

	var numItems uint64
	for {
		item, err := merged.ReadNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if err := writer.Write(item); err != nil {
			return err
		}
		numItems++
	}

	if _, err := writer.Close(); err != nil {
		return err
	}

	meta := &persistence.StreamMetadata{
		NumBits:     numItems * uint64(cfg.ItemBitSize),
		ItemBitSize: uint32(cfg.ItemBitSize),
		PadZero:     true,
	}
	if err := persistence.PersistMetadata(dstPath, meta); err != nil {
		return err
	}

	smlog.Info("merged %d/%d items: %v -> %v", numItems, width, dir, dstPath)
	return nil
}
