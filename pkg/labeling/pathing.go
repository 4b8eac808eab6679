package labeling

import "path/filepath"

// HumanReviewDirName is the review subtree created under the fetch
// output directory.
const HumanReviewDirName = "HumanReview"

// HumanRootFromOutput returns the review root for a fetch output tree.
func HumanRootFromOutput(outDir string) string {
	return filepath.Join(outDir, HumanReviewDirName)
}

// DestDirFor builds <humanRoot>/<classFolder>/<label>/.
func DestDirFor(humanRoot, classFolder string, label Label) string {
	return filepath.Join(humanRoot, classFolder, string(label))
}
