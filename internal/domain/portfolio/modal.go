package portfolio

// Facet is one labelled tech-stack group shown in the project overlay.
type Facet struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

// ProjectModal is the detail overlay for a single project.
type ProjectModal struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	CompanyName string  `json:"company_name"`
	Description string  `json:"description"`
	Facets      []Facet `json:"facets"`
}

// NewProjectModal builds the overlay for a resolved project. Facets without
// items are left out.
func NewProjectModal(rp ResolvedProject) ProjectModal {
	ts := rp.Project.TechStack
	all := []Facet{
		{Label: "Languages", Items: ts.Languages},
		{Label: "Libraries & Frameworks", Items: ts.LibrariesFrameworks},
		{Label: "Tools", Items: ts.Tools},
		{Label: "Deployment", Items: ts.Deployment},
		{Label: "Cloud Platforms", Items: ts.CloudPlatforms},
		{Label: "ML Models", Items: ts.MLModels},
	}
	facets := make([]Facet, 0, len(all))
	for _, f := range all {
		if len(f.Items) > 0 {
			facets = append(facets, f)
		}
	}
	return ProjectModal{
		ID:          rp.Project.ID,
		Title:       rp.Project.Title,
		CompanyName: rp.CompanyName,
		Description: rp.Project.Description,
		Facets:      facets,
	}
}

// OpenProject resolves id and builds its overlay. The boolean is false for an
// unknown id, in which case no overlay is shown.
func (d *Dataset) OpenProject(id string) (ProjectModal, bool) {
	if id == "" {
		return ProjectModal{}, false
	}
	rp, ok := d.FindProject(id)
	if !ok {
		return ProjectModal{}, false
	}
	return NewProjectModal(rp), true
}
