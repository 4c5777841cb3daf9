package portfolio

import (
	"time"

	"github.com/khoahotran/portfolio/pkg/datefmt"
)

type CertificationStatus string

const (
	StatusLifetime CertificationStatus = "Lifetime"
	StatusActive   CertificationStatus = "Active"
	StatusExpired  CertificationStatus = "Expired"
)

// StatusAt reports whether the certification is valid at now. An expiry that
// cannot be parsed is treated as still active.
func (c Certification) StatusAt(now time.Time) CertificationStatus {
	if c.ExpiryDate == nil || datefmt.IsOngoing(*c.ExpiryDate) {
		return StatusLifetime
	}
	exp, ok := datefmt.Parse(*c.ExpiryDate)
	if ok && exp.Before(now) {
		return StatusExpired
	}
	return StatusActive
}

type CertificationCard struct {
	Certification
	Issued   string              `json:"issued"`
	Expires  string              `json:"expires"`
	Status   CertificationStatus `json:"status"`
	Projects []ProjectBadge      `json:"projects"`
}

// CertificationCards returns the certifications ordered by expiry, lifetime
// ones first, with display dates and status evaluated at now.
func (d *Dataset) CertificationCards(now time.Time) []CertificationCard {
	sorted := d.SortedCertifications()
	cards := make([]CertificationCard, 0, len(sorted))
	for _, c := range sorted {
		expires := "No expiry"
		if c.ExpiryDate != nil && !datefmt.IsOngoing(*c.ExpiryDate) {
			expires = datefmt.Format(*c.ExpiryDate)
		}
		cards = append(cards, CertificationCard{
			Certification: c,
			Issued:        datefmt.Format(c.IssueDate),
			Expires:       expires,
			Status:        c.StatusAt(now),
			Projects:      d.badges(c.RelatedProjects),
		})
	}
	return cards
}
