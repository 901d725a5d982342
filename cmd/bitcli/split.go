package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/einzigartigerName/bitwise-io/config"
	"github.com/einzigartigerName/bitwise-io/persistence"
	"github.com/einzigartigerName/bitwise-io/shared"
	smlog "github.com/spacemeshos/smutil/log"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split <source>",
	Short: "split a stream into data files in the datadir, item by item",
	Args:  cobra.ExactArgs(1),
	RunE:  runSplit,
}

func runSplit(cmd *cobra.Command, args []string) error {
	srcPath := args[0]

	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return err
	}

	// Only whole items are carried over; leftover bits beyond the last whole
	// item are dropped.
	numItems := uint64(srcInfo.Size()) * 8 / uint64(cfg.ItemBitSize)
	if numItems == 0 {
		return fmt.Errorf("source (%v) holds no whole item of %d bits", srcPath, cfg.ItemBitSize)
	}
	layout := config.DeriveFilesLayout(cfg, numItems)

	if err := os.MkdirAll(cfg.DataDir, shared.OwnerReadWriteExec); err != nil {
		return err
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	gsReader, err := shared.NewGranSpecificReader(bufio.NewReader(src), cfg.ItemBitSize)
	if err != nil {
		return err
	}

	for i := uint(0); i < layout.NumFiles; i++ {
		fileNumItems := layout.FileNumItems
		if i == layout.NumFiles-1 {
			fileNumItems = layout.LastFileNumItems
		}

		filename := filepath.Join(cfg.DataDir, fmt.Sprintf("blob-%d", i))
		writer, err := persistence.NewFileWriter(filename, cfg.ItemBitSize)
		if err != nil {
			return err
		}
		writer.SetLogger(smlog.AppLog)

		for j := uint64(0); j < fileNumItems; j++ {
			item, err := gsReader.ReadNext()
			if err != nil {
				return err
			}
			if err := writer.Write(item); err != nil {
				return err
			}
		}

		if _, err := writer.Close(); err != nil {
			return err
		}

		meta := &persistence.StreamMetadata{
			NumBits:     fileNumItems * uint64(cfg.ItemBitSize),
			ItemBitSize: uint32(cfg.ItemBitSize),
			PadZero:     true,
		}
		if err := persistence.PersistMetadata(filename, meta); err != nil {
			return err
		}
	}

	smlog.Info("split %d items into %d files: %v -> %v", numItems, layout.NumFiles, srcPath, cfg.DataDir)
	return nil
}
