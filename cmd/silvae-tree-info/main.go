// Command silvae-tree-info reports descriptive statistics over a
// trained tree's leaves (height, sample count, entropy) and its
// per-feature split frequency, the Go equivalent of the original
// trainer's tree_info tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wlattner/silvae/dataset"
	"github.com/wlattner/silvae/internal/clierr"
	"github.com/wlattner/silvae/internal/stats"
	"github.com/wlattner/silvae/tree"
	"github.com/wlattner/silvae/tree/silva"
)

func main() {
	var dataFile, treeFile string

	root := &cobra.Command{
		Use:   "silvae-tree-info",
		Short: "report descriptive statistics about a trained tree",
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

			tf, err := os.Open(treeFile)
			if err != nil {
				return err
			}
			defer tf.Close()
			t, err := silva.Load(tf, d)
			if err != nil {
				return err
			}

			display(os.Stdout, t, d)
			return nil
		},
	}

	flags := root.Flags()
	flags.StringVarP(&dataFile, "data", "d", "", "dataset CSV file (required)")
	flags.StringVarP(&treeFile, "tree", "t", "", "trained tree file (required)")
	root.MarkFlagRequired("data")
	root.MarkFlagRequired("tree")

	if err := root.Execute(); err != nil {
		clierr.Fatal(err)
	}
}

func display(w *os.File, t *tree.Tree, d *dataset.Dataset) {
	leaves := tree.ReachableLeaves(t.Root)

	heights := make([]float64, len(leaves))
	counts := make([]float64, len(leaves))
	entropies := make([]float64, len(leaves))
	for i, l := range leaves {
		heights[i] = float64(l.Depth())
		counts[i] = float64(l.N())
		entropies[i] = l.Entropy()
	}

	freq := featureFrequencies(t.Root, d.NFeatures)

	fmt.Fprintf(w, "nodes: %d\n", tree.NReachableNodes(t.Root))
	fmt.Fprintf(w, "leaves: %d\n\n", len(leaves))

	printSummary(w, "leaf height", stats.Summarize(heights))
	printSummary(w, "leaf sample count", stats.Summarize(counts))
	printSummary(w, "leaf entropy", stats.Summarize(entropies))

	fmt.Fprintln(w, "\nfeature split frequency:")
	for i, f := range freq {
		fmt.Fprintf(w, "  x_%d: %d\n", i, f)
	}
}

func printSummary(w *os.File, label string, s stats.Summary) {
	fmt.Fprintf(w, "%s:\n", label)
	fmt.Fprintf(w, "  min: %.4g  q1: %.4g  median: %.4g  q3: %.4g  max: %.4g\n",
		s.Min, s.Q1, s.Median, s.Q3, s.Max)
	fmt.Fprintf(w, "  mean: %.4g  variance: %.4g\n\n", s.Mean, s.Variance)
}

// featureFrequencies counts how many SPLIT nodes in the subtree rooted
// at root use each feature.
func featureFrequencies(root *tree.Node, nFeatures int) []int {
	freq := make([]int, nFeatures)

	stack := []*tree.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.IsLeaf() {
			continue
		}
		freq[n.Feature]++
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
	}
	return freq
}
