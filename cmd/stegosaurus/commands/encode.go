package commands

import (
	"github.com/spf13/cobra"
)

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <image> <text> <output>",
		Short: "Hide the contents of a text file in a bitmap",
		Long: `Hide the contents of <text> in the pixel data of the bitmap <image> and
write the result to <output>. Use "-" as <text> to read the payload from stdin.

<output> is only written when the payload fits.`,
		Example: `  stegosaurus encode cat.bmp secret.txt cat-marked.bmp
  echo -n "meet at noon" | stegosaurus encode cat.bmp - cat-marked.bmp`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, encodeMode{image: args[0], text: args[1], out: args[2]})
		},
	}
}
