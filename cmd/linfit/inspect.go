package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/linfit/session"
	"github.com/arloliu/linfit/snapshot"
)

func newInspectCmd(a *app) *cobra.Command {
	var showCurve bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the contents of a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read snapshot: %w", err)
			}

			info, err := snapshot.Inspect(data)
			if err != nil {
				return err
			}

			snap, err := snapshot.Decode(data)
			if err != nil {
				return err
			}

			a.logger.Debug("decoded snapshot", "path", args[0], "bytes", len(data))

			byteOrder := "little-endian"
			if info.Header.IsBigEndian() {
				byteOrder = "big-endian"
			}

			out := cmd.OutOrStdout()
			printf(out, "Snapshot v%d, %s, %s\n", info.Header.Version, byteOrder, info.Header.Compression)
			printf(out, "Payload: %d bytes (%d uncompressed, %.1f%% saved)\n",
				info.Stats.CompressedSize, info.Stats.OriginalSize, info.Stats.SpaceSavings())
			printf(out, "Checksum: %016x\n", info.Header.Checksum)
			printState(out, session.FromSnapshot(snap), showCurve)

			return nil
		},
	}
	cmd.Flags().BoolVar(&showCurve, "curve", false, "print every curve point")

	return cmd
}
