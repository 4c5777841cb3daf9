package resume

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type stubRepo struct{ d *domain.Dataset }

func (r stubRepo) Load(context.Context) (*domain.Dataset, error) { return r.d, nil }

type memCache struct {
	docs map[string][]byte
	sets int
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	doc, ok := c.docs[key]
	return doc, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, doc []byte, _ time.Duration) error {
	c.docs[key] = doc
	c.sets++
	return nil
}

type stubUploader struct {
	publicID string
	body     []byte
	err      error
}

func (u *stubUploader) Upload(_ context.Context, r io.Reader, publicID string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.publicID = publicID
	u.body, _ = io.ReadAll(r)
	return "https://cdn.example.com/" + publicID, nil
}
func (u *stubUploader) Delete(context.Context, string) error { return nil }
func (u *stubUploader) ImageURL(ref string, _, _ int) string { return ref }

func ptr(s string) *string { return &s }

func resumeDataset() *domain.Dataset {
	return &domain.Dataset{
		Personal: domain.PersonalData{BasicInfo: domain.BasicInfo{
			FullName:        "Ada  Byron King",
			Email:           "ada@example.com",
			PlaceOfBirth:    ptr("London"),
			TotalExperience: ptr("10+"),
			Tagline:         "Analyst <engines>",
			LongSummary:     "Writes programs for machines that do not exist yet.",
		}},
		Professional: domain.Professional{
			Companies: []domain.Company{
				{ID: "engine", Name: "Analytical Engine Co", Location: "London", Projects: []domain.Project{{ID: "notes", Title: "Note G", Description: "Bernoulli numbers."}}},
				{ID: "mill", Name: "The Mill"},
			},
			Experience: []domain.Experience{
				{CompanyID: "mill", Designation: "Apprentice", StartDate: "1833", EndDate: ptr("1840-06")},
				{CompanyID: "engine", Designation: "Programmer", StartDate: "1842-07"},
				{CompanyID: "ghost", Designation: "Phantom", StartDate: "1830"},
			},
		},
		Education: []domain.Education{
			{Institution: "Home tutors", Degree: "Mathematics", StartYear: "1828", EndYear: "1832"},
		},
		Skillset: domain.Skillset{Categories: []domain.SkillCategory{
			{Name: "Mathematics", Skills: []domain.Skill{{ID: "calc", Name: "Calculus"}, {ID: "alg", Name: "Algebra"}}},
		}},
		Certifications: []domain.Certification{
			{ID: "old", Name: "Old Cert", IssueDate: "1835-01", ExpiryDate: ptr("1838-01")},
			{ID: "forever", Name: "Royal Society", Issuer: "RS", IssueDate: "1843-09", CredentialURL: "https://example.com/rs"},
		},
	}
}

func readyData(t *testing.T, d *domain.Dataset) *portfolioUC.DataContext {
	t.Helper()
	dc := portfolioUC.NewDataContext(stubRepo{d: d}, 0, logger.NewNop())
	dc.Start(context.Background())
	_, err := dc.Wait(context.Background())
	require.NoError(t, err)
	return dc
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Ada_Byron_King_Resume.html", Filename("Ada  Byron King"))
	assert.Equal(t, "Linh_Tran_Resume.html", Filename(" Linh Tran "))
	assert.Equal(t, "Portfolio_Resume.html", Filename(""))
}

func TestRender(t *testing.T) {
	now := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	out, err := Render(resumeDataset(), now)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, "Ada  Byron King", doc.Find(".header h1").Text())
	assert.Equal(t, "ada@example.com | London | 10+ Experience", doc.Find(".contact-info").Text())
	assert.Contains(t, string(out), "Analyst &lt;engines&gt;")

	jobs := doc.Find(".job")
	require.Equal(t, 2, jobs.Length(), "unknown company is dropped")
	assert.Equal(t, "Programmer", jobs.Eq(0).Find(".job-title").Text())
	assert.Equal(t, "July 1842 - Present", jobs.Eq(0).Find(".job-date").Text())
	assert.Equal(t, "Note G", jobs.Eq(0).Find(".project-title").Text())
	assert.Equal(t, "Apprentice", jobs.Eq(1).Find(".job-title").Text())
	assert.Equal(t, 0, jobs.Eq(1).Find(".projects").Length())

	assert.Equal(t, 2, doc.Find(".skill-item").Length())

	certs := doc.Find(".cert-item")
	require.Equal(t, 2, certs.Length())
	assert.Equal(t, "Royal Society", certs.Eq(0).Find(".cert-name").Text())
	assert.Equal(t, "Issued: September 1843", certs.Eq(0).Find(".cert-date").Text())
	assert.Equal(t, "Issued: January 1835 | Expires: January 1838", certs.Eq(1).Find(".cert-date").Text())

	assert.Contains(t, doc.Find(".footer").Text(), "July 4, 2025")
}

func TestRender_EmptySections(t *testing.T) {
	d := &domain.Dataset{Personal: domain.PersonalData{BasicInfo: domain.BasicInfo{FullName: "Nobody", Email: "n@example.com"}}}
	out, err := Render(d, time.Now())
	require.NoError(t, err)

	body := string(out)
	assert.Contains(t, body, "No professional experience data available.")
	assert.Contains(t, body, "No education data available.")
	assert.False(t, strings.Contains(body, "<h2>Certifications</h2>"))
}

func TestGenerateResume_UsesCache(t *testing.T) {
	cache := &memCache{docs: map[string][]byte{}}
	uc := NewGenerateResumeUseCase(readyData(t, resumeDataset()), cache, time.Hour, logger.NewNop())
	uc.now = func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) }

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, "Ada_Byron_King_Resume.html", first.Filename)

	second, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, 1, cache.sets)

	uc.now = func() time.Time { return time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC) }
	third, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, third.Cached)
}

func TestPublishResume(t *testing.T) {
	gen := NewGenerateResumeUseCase(readyData(t, resumeDataset()), &memCache{docs: map[string][]byte{}}, time.Hour, logger.NewNop())
	up := &stubUploader{}
	uc := NewPublishResumeUseCase(gen, up, logger.NewNop())

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.PublicID, "resume-"))
	assert.Equal(t, "https://cdn.example.com/"+out.PublicID, out.URL)
	assert.Contains(t, string(up.body), "<h1>Ada  Byron King</h1>")

	up.err = apperror.NewUnavailable("media storage is not configured", nil)
	_, err = uc.Execute(context.Background())
	assert.True(t, errors.Is(err, apperror.ErrUnavailable))
}
