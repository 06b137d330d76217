package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/yyyoichi/stegosaurus"
)

// mode is one fully parsed invocation. Each variant carries the paths it
// operates on and nothing else.
type mode interface {
	run(a *app, cmd *cobra.Command) error
}

var (
	_ mode = encodeMode{}
	_ mode = decodeMode{}
	_ mode = inspectMode{}
)

type encodeMode struct {
	image, text, out string
}

func (m encodeMode) run(a *app, cmd *cobra.Command) error {
	buf, err := readInput(cmd, m.image)
	if err != nil {
		return err
	}
	text, err := readInput(cmd, m.text)
	if err != nil {
		return err
	}
	if a.cfg.Verbose {
		if err := printHeader(cmd, buf); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Input text is %d bytes\n", len(text))
	}

	encoded, err := a.stego.Encode(buf, text)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", m.image, err)
	}
	if err := os.WriteFile(m.out, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", m.out, err)
	}
	a.log.Info("payload hidden", "image", m.image, "output", m.out, "payload_bytes", len(text))
	return nil
}

type decodeMode struct {
	path, out string
}

func (m decodeMode) run(a *app, cmd *cobra.Command) error {
	buf, err := readInput(cmd, m.path)
	if err != nil {
		return err
	}
	if a.cfg.Verbose {
		if err := printHeader(cmd, buf); err != nil {
			return err
		}
	}

	payload, err := a.stego.Decode(buf)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", m.path, err)
	}
	if m.out != "" {
		if err := os.WriteFile(m.out, payload, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", m.out, err)
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(payload)
	return err
}

type inspectMode struct {
	path string
}

func (m inspectMode) run(a *app, cmd *cobra.Command) error {
	buf, err := readInput(cmd, m.path)
	if err != nil {
		return err
	}
	info, err := a.stego.Inspect(buf)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", m.path, err)
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "File length:     %s (%s bytes, header says %s)\n",
		humanize.IBytes(uint64(len(buf))), humanize.Comma(int64(len(buf))), humanize.Comma(int64(info.Header.FileSize)))
	fmt.Fprintf(&out, "Pixel offset:    %d\n", info.Header.PixelOffset)
	fmt.Fprintf(&out, "Dimensions:      %d x %d\n", info.Header.Width, info.Header.Height)
	if info.Config != nil {
		fmt.Fprintf(&out, "Decoded as:      %d x %d bitmap\n", info.Config.Width, info.Config.Height)
	} else {
		fmt.Fprintf(&out, "Decoded as:      unsupported by the bitmap decoder\n")
	}
	if info.Capacity < 0 {
		fmt.Fprintf(&out, "Capacity:        none, the pixel array is too small\n")
	} else {
		fmt.Fprintf(&out, "Capacity:        %s (%s bytes)\n",
			humanize.IBytes(uint64(info.Capacity)), humanize.Comma(int64(info.Capacity)))
	}
	fmt.Fprintf(&out, "LSB ones ratio:  %.4f\n", info.LSB.OnesRatio)
	fmt.Fprintf(&out, "Chi-square:      %.2f (df %d, p %.4f)\n",
		info.LSB.ChiSquare, info.LSB.DegreesOfFreedom, info.LSB.PValue)

	_, err = out.WriteTo(cmd.OutOrStdout())
	return err
}

// printHeader writes the advisory header fields to stderr.
func printHeader(cmd *cobra.Command, buf []byte) error {
	h, err := stegosaurus.ReadHeader(buf)
	if err != nil {
		return err
	}
	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "File length in bytes: %d\n", h.FileSize)
	fmt.Fprintf(w, "Image width in pixels: %d\n", h.Width)
	fmt.Fprintf(w, "Image height in pixels: %d\n", h.Height)
	return nil
}
