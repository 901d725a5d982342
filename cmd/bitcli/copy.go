package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/bytefmt"
	"github.com/einzigartigerName/bitwise-io/bitstream"
	"github.com/einzigartigerName/bitwise-io/persistence"
	"github.com/einzigartigerName/bitwise-io/shared"
	smlog "github.com/spacemeshos/smutil/log"
	"github.com/spf13/cobra"
)

var discard bool

var copyCmd = &cobra.Command{
	Use:   "copy <source> <dest>",
	Short: "copy a stream bit by bit, padding or truncating the trailing partial byte",
	Args:  cobra.ExactArgs(2),
	RunE:  runCopy,
}

func init() {
	copyCmd.Flags().BoolVar(&discard, "discard", false, "truncate a trailing partial byte instead of padding it")
}

func runCopy(cmd *cobra.Command, args []string) error {
	srcPath, dstPath := args[0], args[1]

	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return err
	}

	dstDir := filepath.Dir(dstPath)
	if available := shared.AvailableSpace(dstDir); available < uint64(srcInfo.Size()) {
		return fmt.Errorf("not enough disk space. required: %v, available: %v",
			bytefmt.ByteSize(uint64(srcInfo.Size())), bytefmt.ByteSize(available))
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(dstPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, shared.OwnerReadWrite)
	if err != nil {
		return err
	}
	defer dst.Close()

	reader, err := bitstream.NewReader(bitstream.NewSourceSize(src, int(cfg.BufSize)))
	if err != nil {
		return err
	}
	writer := bitstream.NewWriterCapacity(int(cfg.BufSize), bitstream.NewSink(dst), cfg.PadZero)

	var numBits uint64
	for {
		bit, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if err := writer.Write(bit); err != nil {
			return err
		}
		numBits++
	}

	if discard {
		writer.DiscardNonByte()
		numBits -= numBits % 8
	}

	if err := writer.WriteBuf(); err != nil {
		return err
	}

	meta := &persistence.StreamMetadata{
		NumBits:     numBits,
		ItemBitSize: uint32(cfg.ItemBitSize),
		PadZero:     cfg.PadZero,
	}
	if err := persistence.PersistMetadata(dstPath, meta); err != nil {
		return err
	}

	smlog.Info("copied %d bits: %v -> %v", numBits, srcPath, dstPath)
	return nil
}
