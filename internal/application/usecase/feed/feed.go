package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/datefmt"
	"github.com/khoahotran/portfolio/pkg/logger"
)

var tracer = otel.Tracer("feed_usecase")

type TimelineFeedUseCase struct {
	data    *portfolioUC.DataContext
	baseURL string
	logger  logger.Logger
	now     func() time.Time
}

func NewTimelineFeedUseCase(data *portfolioUC.DataContext, baseURL string, log logger.Logger) *TimelineFeedUseCase {
	return &TimelineFeedUseCase{
		data:    data,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  log,
		now:     time.Now,
	}
}

// Execute builds an RSS feed with one item per role and per certification,
// newest first by start or issue date.
func (uc *TimelineFeedUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	ctx, span := tracer.Start(ctx, "TimelineFeed")
	defer span.End()

	d, err := portfolioUC.LoadDataset(ctx, uc.data)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	info := d.Personal.BasicInfo
	feed := &feeds.Feed{
		Title:       info.FullName + " - Career Timeline",
		Link:        &feeds.Link{Href: uc.baseURL + "/"},
		Description: info.Tagline,
		Author:      &feeds.Author{Name: info.FullName, Email: info.Email},
		Created:     uc.now(),
	}

	for _, exp := range d.SortedExperience() {
		company, ok := d.Company(exp.CompanyID)
		if !ok {
			continue
		}
		created, _ := datefmt.Parse(exp.StartDate)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          fmt.Sprintf("experience:%s:%s", exp.CompanyID, exp.StartDate),
			Title:       fmt.Sprintf("%s at %s", exp.Designation, company.Name),
			Link:        &feeds.Link{Href: uc.baseURL + "/#timeline"},
			Description: fmt.Sprintf("%s - %s. %s", datefmt.Format(exp.StartDate), datefmt.FormatEnd(exp.EndDate), projectSummary(company)),
			Created:     created,
		})
	}

	for _, c := range d.Certifications {
		created, _ := datefmt.Parse(c.IssueDate)
		link := c.CredentialURL
		if link == "" {
			link = uc.baseURL + "/#certifications"
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          "certification:" + c.ID,
			Title:       fmt.Sprintf("Certified: %s", c.Name),
			Link:        &feeds.Link{Href: link},
			Description: c.Description,
			Created:     created,
		})
	}

	feed.Sort(func(a, b *feeds.Item) bool { return a.Created.After(b.Created) })

	uc.logger.Info("Timeline feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}

func projectSummary(c domain.Company) string {
	if len(c.Projects) == 0 {
		return ""
	}
	titles := make([]string, 0, len(c.Projects))
	for _, p := range c.Projects {
		titles = append(titles, p.Title)
	}
	return "Projects: " + strings.Join(titles, ", ")
}
