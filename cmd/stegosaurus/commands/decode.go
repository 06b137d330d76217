package commands

import (
	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "decode <image>",
		Short: "Recover the text hidden in a bitmap",
		Long: `Recover the text hidden in the pixel data of <image> and print it to stdout.

Fails when the image carries no hidden text.`,
		Example: `  stegosaurus decode cat-marked.bmp
  stegosaurus decode cat-marked.bmp --out secret.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, decodeMode{path: args[0], out: out})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the recovered text to a file instead of stdout")
	return cmd
}
