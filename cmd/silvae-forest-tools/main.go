// Command silvae-forest-tools converts between a forest file and its
// constituent individual tree files, the Go equivalent of the original
// trainer's forest_tools assemble/disassemble commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wlattner/silvae/dataset"
	"github.com/wlattner/silvae/forest"
	"github.com/wlattner/silvae/internal/clierr"
	"github.com/wlattner/silvae/tree/silva"
)

func main() {
	var dataFile string

	root := &cobra.Command{
		Use:   "silvae-forest-tools",
		Short: "assemble/disassemble forest files",
	}
	root.PersistentFlags().StringVarP(&dataFile, "data", "d", "", "dataset CSV file (required)")
	root.MarkPersistentFlagRequired("data")

	var outFile string
	assemble := &cobra.Command{
		Use:   "assemble <tree-file>...",
		Short: "combine individual tree files into one forest file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDataset(dataFile)
			if err != nil {
				return err
			}

			f := &forest.Forest{}
			for _, path := range args {
				tf, err := os.Open(path)
				if err != nil {
					return err
				}
				t, err := silva.Load(tf, d)
				tf.Close()
				if err != nil {
					return err
				}
				f.Add(t)
			}

			out, err := os.Create(outFile)
			if err != nil {
				return err
			}
			defer out.Close()
			return forest.Save(out, f)
		},
	}
	assemble.Flags().StringVarP(&outFile, "output", "o", "forest.silva", "file to write the assembled forest to")

	var outPrefix string
	disassemble := &cobra.Command{
		Use:   "disassemble <forest-file>",
		Short: "split a forest file into individual tree files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDataset(dataFile)
			if err != nil {
				return err
			}

			ff, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer ff.Close()

			f, err := forest.Load(ff, d)
			if err != nil {
				return err
			}

			for i, t := range f.Trees {
				name := fmt.Sprintf("%s-%03d.silva", outPrefix, i)
				out, err := os.Create(name)
				if err != nil {
					return err
				}
				err = silva.Save(out, t)
				out.Close()
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	disassemble.Flags().StringVar(&outPrefix, "prefix", "tree", "filename prefix for the disassembled tree files")

	root.AddCommand(assemble, disassemble)

	if err := root.Execute(); err != nil {
		clierr.Fatal(err)
	}
}

func loadDataset(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.Load(f)
}
