package portfolio

// ResolvedProject is a project together with the name of the company that
// owns it.
type ResolvedProject struct {
	Project     Project
	CompanyID   string
	CompanyName string
}

// FindProject scans companies and their projects in stored order and returns
// the first project whose id matches exactly. The boolean is false when no
// project has that id; callers treat that as "nothing to show".
func FindProject(companies []Company, projectID string) (ResolvedProject, bool) {
	for _, c := range companies {
		for _, p := range c.Projects {
			if p.ID == projectID {
				return ResolvedProject{Project: p, CompanyID: c.ID, CompanyName: c.Name}, true
			}
		}
	}
	return ResolvedProject{}, false
}

func (d *Dataset) FindProject(projectID string) (ResolvedProject, bool) {
	return FindProject(d.Professional.Companies, projectID)
}
