// Command silvae-tree-similarity reports the fraction of a dataset's
// samples for which two trained trees produce the same classification,
// the Go equivalent of the original trainer's tree_similarity tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wlattner/silvae/dataset"
	"github.com/wlattner/silvae/internal/clierr"
	"github.com/wlattner/silvae/tree"
	"github.com/wlattner/silvae/tree/silva"
)

func main() {
	var dataFile, tree1File, tree2File string

	root := &cobra.Command{
		Use:   "silvae-tree-similarity",
		Short: "report the classification similarity between two trained trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := os.Open(dataFile)
			if err != nil {
				return err
			}
			defer df.Close()
			d, err := dataset.Load(df)
			if err != nil {
				return err
			}

			t1, err := loadTree(tree1File, d)
			if err != nil {
				return err
			}
			t2, err := loadTree(tree2File, d)
			if err != nil {
				return err
			}

			fmt.Printf("Similarity: %g\n", tree.Similarity(t1, t2, d))
			return nil
		},
	}

	flags := root.Flags()
	flags.StringVarP(&dataFile, "data", "d", "", "dataset CSV file (required)")
	flags.StringVar(&tree1File, "tree1", "", "first tree file (required)")
	flags.StringVar(&tree2File, "tree2", "", "second tree file (required)")
	root.MarkFlagRequired("data")
	root.MarkFlagRequired("tree1")
	root.MarkFlagRequired("tree2")

	if err := root.Execute(); err != nil {
		clierr.Fatal(err)
	}
}

func loadTree(path string, d *dataset.Dataset) (*tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return silva.Load(f, d)
}
