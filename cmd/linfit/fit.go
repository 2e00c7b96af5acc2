package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/linfit/regression"
	"github.com/arloliu/linfit/session"
	"github.com/arloliu/linfit/snapshot"
)

type fitFlags struct {
	inputFlags
	out         string
	step        float64
	noClamp     bool
	compression string
	bigEndian   bool
	showCurve   bool
}

func newFitCmd(a *app) *cobra.Command {
	f := &fitFlags{}

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a line and sample the approximation curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFit(cmd, f)
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write a snapshot to this file")
	cmd.Flags().Float64Var(&f.step, "step", regression.DefaultStep, "X distance between curve points")
	cmd.Flags().BoolVar(&f.noClamp, "no-clamp", false, "keep negative curve values")
	cmd.Flags().StringVar(&f.compression, "compression", "", "snapshot compression: none, zstd, s2, lz4")
	cmd.Flags().BoolVar(&f.bigEndian, "big-endian", false, "write the snapshot big-endian")
	cmd.Flags().BoolVar(&f.showCurve, "curve", false, "print every curve point")

	return cmd
}

func (a *app) runFit(cmd *cobra.Command, f *fitFlags) error {
	cfg := a.cfg
	if cmd.Flags().Changed("step") {
		cfg.Curve.Step = f.step
	}
	if cmd.Flags().Changed("no-clamp") {
		cfg.Curve.Clamp = !f.noClamp
	}
	if cmd.Flags().Changed("compression") {
		cfg.Snapshot.Compression = f.compression
	}
	if cmd.Flags().Changed("big-endian") {
		cfg.Snapshot.BigEndian = f.bigEndian
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	eng, err := session.NewEngine(
		session.WithLogger(a.logger),
		session.WithCurveOptions(cfg.CurveOptions()...),
	)
	if err != nil {
		return err
	}

	st := eng.Parse(session.NewState(f.x, f.y))
	if !st.HasError() {
		st = eng.Approximate(st)
	}
	if st.HasError() {
		return st.Err
	}

	out := cmd.OutOrStdout()
	printState(out, st, f.showCurve)

	if f.out == "" {
		return nil
	}

	opts, err := cfg.SnapshotOptions()
	if err != nil {
		return err
	}

	data, err := snapshot.Encode(st.Snapshot(), opts...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(f.out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	a.logger.Info("snapshot written", "path", f.out, "bytes", len(data), "compression", cfg.Snapshot.Compression)

	return nil
}

func printState(w io.Writer, st session.State, showCurve bool) {
	printf(w, "Points: %d", len(st.Points))
	if st.Dropped > 0 {
		printf(w, " (%d tokens ignored)", st.Dropped)
	}
	printf(w, "\n")
	for _, p := range st.Points {
		printf(w, "  (%g, %g)\n", p.X, p.Y)
	}

	if st.Line != nil {
		printf(w, "Line: %s\n", st.Line)
	}

	if len(st.Curve) == 0 {
		return
	}

	first, last := st.Curve[0], st.Curve[len(st.Curve)-1]
	printf(w, "Curve: %d points from x=%.4f to x=%.4f\n", len(st.Curve), first.X, last.X)
	if showCurve {
		for _, p := range st.Curve {
			printf(w, "  %.4f\t%.4f\n", p.X, p.Y)
		}
	}
}

// isInputError reports whether err came from the numbers the user typed.
func isInputError(err error) bool {
	return errors.Is(err, regression.ErrMismatchedLengths) ||
		errors.Is(err, regression.ErrInsufficientPoints) ||
		errors.Is(err, regression.ErrDegenerateInput)
}
