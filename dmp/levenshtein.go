package dmp

// DiffLevenshtein computes the Levenshtein distance implied by a diff
// script: the number of inserted, deleted, or substituted characters. An
// adjacent delete+insert pair counts as one substitution, not two edits.
func DiffLevenshtein(diffs []Diff) int {
	levenshtein := 0
	insertions, deletions := 0, 0

	for _, d := range diffs {
		switch d.Type {
		case DiffInsert:
			insertions += len(d.Text)
		case DiffDelete:
			deletions += len(d.Text)
		case DiffEqual:
			levenshtein += max(insertions, deletions)
			insertions, deletions = 0, 0
		}
	}
	return levenshtein + max(insertions, deletions)
}
