package main

import (
	"fmt"
	"os"

	"github.com/einzigartigerName/bitwise-io/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfg     = config.DefaultConfig()
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "bitcli",
	Short: "inspect and copy bit-granularity streams",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return cfg.Validate()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&cfgFile, "config", "c", "", "path to configuration file")
	flags.StringVar(&cfg.DataDir, "datadir", cfg.DataDir, "filesystem datadir path")
	flags.UintVar(&cfg.BufSize, "bufsize", cfg.BufSize, "stream buffer size, in bytes")
	flags.UintVar(&cfg.ItemBitSize, "itemsize", cfg.ItemBitSize, "item size, in bits")
	flags.BoolVar(&cfg.PadZero, "padzero", cfg.PadZero, "pad an incomplete trailing byte with zero bits instead of one bits")
	flags.Uint64Var(&cfg.MaxFileSize, "maxfilesize", cfg.MaxFileSize, "max data file size, in bytes")

	rootCmd.AddCommand(copyCmd, statCmd, dumpCmd, splitCmd, mergeCmd)
}

// loadConfig reads the config file, if one was given, and overlays it with
// the flags set on the command line. CLI args are higher priority than the
// config file.
func loadConfig(cmd *cobra.Command) error {
	if cfgFile == "" {
		return nil
	}

	vip := viper.New()
	vip.SetConfigFile(cfgFile)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %v", err)
	}

	fileCfg := config.DefaultConfig()
	if err := vip.Unmarshal(fileCfg); err != nil {
		return fmt.Errorf("failed to parse config: %v", err)
	}

	flags := cmd.Flags()
	assignUnlessChanged(flags, "datadir", func() { cfg.DataDir = fileCfg.DataDir })
	assignUnlessChanged(flags, "bufsize", func() { cfg.BufSize = fileCfg.BufSize })
	assignUnlessChanged(flags, "itemsize", func() { cfg.ItemBitSize = fileCfg.ItemBitSize })
	assignUnlessChanged(flags, "padzero", func() { cfg.PadZero = fileCfg.PadZero })
	assignUnlessChanged(flags, "maxfilesize", func() { cfg.MaxFileSize = fileCfg.MaxFileSize })

	return nil
}

func assignUnlessChanged(flags *pflag.FlagSet, name string, assign func()) {
	if !flags.Changed(name) {
		assign()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
