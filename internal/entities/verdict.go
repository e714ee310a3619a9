package entities

// Verdict is the outcome of an eligibility resolution. When Eligible is
// true, Org and Repo name the first repository in scan order that lists
// the user as a contributor; otherwise both are empty.
type Verdict struct {
	Eligible bool
	Org      string
	Repo     string
}
