package taxonomy

import "strings"

// Version identifies the loaded catalog revision. Bumped whenever the seed
// tables change so stored weakness keys can be traced to the catalog that
// produced them.
const Version = 1

// Path is a fully resolved (subject, base branch, detailed branch) triple.
// A Path produced by Resolve is always valid: its detailed branch is a
// registered child of its base branch.
type Path struct {
	Subject        string
	BaseBranch     string
	DetailedBranch string
}

// Key returns the external weakness-key form
// "<Subject>/<BaseBranch>/<DetailedBranch>".
func (p Path) Key() string {
	return p.Subject + "/" + p.BaseBranch + "/" + p.DetailedBranch
}

// BaseBranch is a chapter-level category with its ordered topic children.
type BaseBranch struct {
	Name     string
	Children []string
}

// Subject is a per-subject catalog of base branches.
type Subject struct {
	Name     string
	Branches []BaseBranch
}

// fallbackChild is the single child of every "Others: <subject>" bucket.
const fallbackChild = "General"

// othersPrefix marks the generic bucket used when a base branch is unknown.
const othersPrefix = "Others: "

var (
	// subjectsByFold indexes catalogs by case-folded name, including aliases.
	subjectsByFold map[string]*Subject

	// branchesBySubject indexes base branches by case-folded name per subject.
	branchesBySubject map[string]map[string]*BaseBranch
)

func init() {
	subjectsByFold = make(map[string]*Subject, len(seedSubjects)+len(subjectAliases))
	branchesBySubject = make(map[string]map[string]*BaseBranch, len(seedSubjects))

	for i := range seedSubjects {
		s := &seedSubjects[i]
		subjectsByFold[fold(s.Name)] = s

		branches := make(map[string]*BaseBranch, len(s.Branches))
		for j := range s.Branches {
			b := &s.Branches[j]
			branches[fold(b.Name)] = b
		}
		branchesBySubject[s.Name] = branches
	}

	for alias, canonical := range subjectAliases {
		if s, ok := subjectsByFold[fold(canonical)]; ok {
			subjectsByFold[fold(alias)] = s
		}
	}
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CanonicalSubject normalizes a subject name through the alias table.
// Returns the registered name and true, or the trimmed input and false when
// the subject is not in the catalog.
func CanonicalSubject(name string) (string, bool) {
	if s, ok := subjectsByFold[fold(name)]; ok {
		return s.Name, true
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = "Unknown"
	}
	return trimmed, false
}

// Resolve maps a proposed classification onto a valid taxonomy path.
// It never fails: unknown subjects land in the "Others: <subject>" bucket,
// unknown base branches land in the canonical subject's bucket, and an
// unlisted detailed branch is replaced by the first registered child of its
// base branch. Identical input always yields the identical path, so repeated
// misclassifications cannot fragment the taxonomy.
func Resolve(subject, proposedBase, proposedDetailed string) Path {
	canonical, known := CanonicalSubject(subject)
	if !known {
		return Path{
			Subject:        canonical,
			BaseBranch:     othersPrefix + canonical,
			DetailedBranch: fallbackChild,
		}
	}

	branch := lookupBranch(canonical, proposedBase)
	if branch == nil || len(branch.Children) == 0 {
		return Path{
			Subject:        canonical,
			BaseBranch:     othersPrefix + canonical,
			DetailedBranch: fallbackChild,
		}
	}

	detailed := strings.TrimSpace(proposedDetailed)
	for _, child := range branch.Children {
		if strings.EqualFold(child, detailed) {
			return Path{Subject: canonical, BaseBranch: branch.Name, DetailedBranch: child}
		}
	}

	// Unlisted detailed branch: substitute the first registered child.
	return Path{Subject: canonical, BaseBranch: branch.Name, DetailedBranch: branch.Children[0]}
}

// IsValid reports whether the path's detailed branch is a registered child
// of its base branch. Fallback "Others" buckets are valid by construction.
func IsValid(p Path) bool {
	if p.BaseBranch == othersPrefix+p.Subject {
		return p.DetailedBranch == fallbackChild
	}
	branch := lookupBranch(p.Subject, p.BaseBranch)
	if branch == nil {
		return false
	}
	for _, child := range branch.Children {
		if child == p.DetailedBranch {
			return true
		}
	}
	return false
}

// Subjects returns the registered subject names in seed order.
func Subjects() []string {
	out := make([]string, 0, len(seedSubjects))
	for i := range seedSubjects {
		out = append(out, seedSubjects[i].Name)
	}
	return out
}

// Branches returns the base branches registered for a subject, or nil for
// an unknown subject.
func Branches(subject string) []BaseBranch {
	canonical, known := CanonicalSubject(subject)
	if !known {
		return nil
	}
	s := subjectsByFold[fold(canonical)]
	out := make([]BaseBranch, len(s.Branches))
	copy(out, s.Branches)
	return out
}

func lookupBranch(canonicalSubject, proposedBase string) *BaseBranch {
	branches, ok := branchesBySubject[canonicalSubject]
	if !ok {
		return nil
	}
	return branches[fold(proposedBase)]
}
