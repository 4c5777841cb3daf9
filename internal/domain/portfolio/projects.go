package portfolio

type ProjectCard struct {
	Project
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
}

// CompanyOptions lists the company filter options in stored order.
func (d *Dataset) CompanyOptions() []CategoryOption {
	opts := make([]CategoryOption, 0, len(d.Professional.Companies))
	for _, c := range d.Professional.Companies {
		opts = append(opts, CategoryOption{ID: c.ID, Name: c.Name})
	}
	return opts
}

// ProjectCards lists every project with its owning company.
func (d *Dataset) ProjectCards() []ProjectCard {
	var cards []ProjectCard
	for _, c := range d.Professional.Companies {
		for _, p := range c.Projects {
			cards = append(cards, ProjectCard{Project: p, CompanyID: c.ID, CompanyName: c.Name})
		}
	}
	return cards
}

// FilterProjects applies a company token to the project cards.
func (d *Dataset) FilterProjects(token string) []ProjectCard {
	return Filter(d.ProjectCards(), token, func(c ProjectCard) string { return c.CompanyID })
}
