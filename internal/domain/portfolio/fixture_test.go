package portfolio

func strPtr(s string) *string { return &s }

// newFixture builds two companies with two projects each, one ongoing role,
// one finished role and two degrees.
func newFixture() *Dataset {
	return &Dataset{
		Personal: PersonalData{
			BasicInfo: BasicInfo{
				FullName:     "Mira Okafor",
				Email:        "mira@example.com",
				Tagline:      "Backend engineer",
				ShortSummary: "Builds data platforms.",
			},
			Hobbies: []string{"climbing", "chess"},
			SocialProfiles: SocialProfiles{
				"twitter": {URL: "https://twitter.com/mira", Handle: "@mira"},
			},
			PersonalProfiles: SocialProfiles{
				"personal_blog": {URL: "https://mira.example.com"},
			},
		},
		Professional: Professional{
			Companies: []Company{
				{
					ID: "northwind", Name: "Northwind Labs", Location: "Lagos",
					Projects: []Project{
						{ID: "ledger", Title: "Ledger Sync", TechStack: TechStack{Languages: []string{"Go"}, Tools: []string{"Kafka"}}},
						{ID: "atlas", Title: "Atlas Search", TechStack: TechStack{Languages: []string{"Go"}, CloudPlatforms: []string{"GCP"}}},
					},
				},
				{
					ID: "bluepeak", Name: "Bluepeak", Location: "Berlin",
					Projects: []Project{
						{ID: "harbor", Title: "Harbor", TechStack: TechStack{Languages: []string{"Python"}}},
						{ID: "lumen", Title: "Lumen"},
					},
				},
			},
			Experience: []Experience{
				{CompanyID: "bluepeak", Designation: "Software Engineer", StartDate: "2019-02", EndDate: strPtr("2022-06")},
				{CompanyID: "northwind", Designation: "Senior Engineer", StartDate: "2022-07", EndDate: nil},
			},
		},
		Education: []Education{
			{Institution: "State University", Degree: "BSc Computer Science", StartYear: "2011", EndYear: "2015"},
			{Institution: "Tech Institute", Degree: "MSc Distributed Systems", StartYear: "2015", EndYear: "2017", Location: strPtr("Berlin")},
		},
		Skillset: Skillset{
			ID: "skills",
			Categories: []SkillCategory{
				{
					Name: "Programming Languages",
					Skills: []Skill{
						{ID: "go", Name: "Go", Rating: 5, UsedInProjects: []ProjectReference{{ID: "ledger", Title: "Ledger Sync"}, {ID: "ghost", Title: "Ghost"}}},
						{ID: "python", Name: "Python", Rating: 3, UsedInProjects: []ProjectReference{{ID: "harbor", Title: "Harbor"}}},
					},
				},
				{
					Name: "Cloud  Platforms",
					Skills: []Skill{
						{ID: "gcp", Name: "GCP", Rating: 4},
					},
				},
			},
		},
		Certifications: []Certification{
			{ID: "cka", Name: "CKA", IssueDate: "2021-03", ExpiryDate: strPtr("2024-03")},
			{ID: "ocp", Name: "OCP", IssueDate: "2016-05", ExpiryDate: nil, RelatedProjects: []ProjectReference{{ID: "atlas", Title: "Atlas Search"}}},
			{ID: "aws", Name: "AWS SAA", IssueDate: "2023-01", ExpiryDate: strPtr("2026-01")},
		},
	}
}
