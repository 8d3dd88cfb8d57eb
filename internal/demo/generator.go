package demo

import (
	"math/rand"
	"sort"
	"time"

	"ghostboard/internal/reports"
)

const maxGeneratedReports = 50

var positions = []string{
	"Software Engineer",
	"Senior Software Engineer",
	"Staff Engineer",
	"Product Manager",
	"Data Scientist",
	"Frontend Developer",
	"Backend Developer",
	"DevOps Engineer",
	"Machine Learning Engineer",
	"Engineering Manager",
	"UX Designer",
	"Technical Program Manager",
}

var appliedVia = []string{
	"company website",
	"LinkedIn",
	"referral",
	"recruiter",
	"Indeed",
	"Glassdoor",
	"AngelList",
}

var ghostedNotes = []string{
	"Applied 3 weeks ago, not a single response. Classic.",
	"Got an automated 'received your application' email and nothing since.",
	"Recruiter reached out, scheduled a call, then disappeared.",
	"Made it through phone screen, then radio silence.",
	"Applied to 5 different positions, ghosted on all of them.",
	"They said they'd get back to me in 2 weeks. That was 2 months ago.",
	"Had a great interview, interviewer seemed enthusiastic. Never heard back.",
	"Portal still says 'under review' after 45 days lol",
	"",
	"",
	"",
}

var rejectedNotes = []string{
	"At least they had the courtesy to send a rejection.",
	"Generic rejection email after 3 rounds of interviews.",
	"Rejected within 24 hours. Efficient, I guess.",
	"Got rejected for 'culture fit' - whatever that means.",
	"",
	"",
}

var respondedNotes = []string{
	"Recruiter actually responded! Miracles happen.",
	"Got a phone screen scheduled.",
	"Moving to technical round.",
	"",
	"",
}

const offerNote = "Actually got an offer!"

// Generator synthesizes reports for a demo company using the fixed table's
// ghost rate as a per-report outcome probability. Production demo mode is
// deliberately nondeterministic; tests inject a seed.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a time-seeded generator.
func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

// NewSeededGenerator returns a generator with a fixed seed for
// reproducible output.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// Reports synthesizes up to min(total reports, 50) reports for the slug,
// newest first. Unknown slugs yield an empty slice.
func (g *Generator) Reports(slug string) []reports.Report {
	company, ok := CompanyBySlug(slug)
	if !ok {
		return []reports.Report{}
	}

	n := company.TotalReports
	if n > maxGeneratedReports {
		n = maxGeneratedReports
	}

	now := g.now().UTC()
	out := make([]reports.Report, 0, n)
	for i := 0; i < n; i++ {
		outcome, notes := g.drawOutcome(company.GhostRate)

		// Ghosted reports wait noticeably longer than the rest.
		waitFloor := 5
		if outcome == reports.OutcomeGhosted {
			waitFloor = 14
		}

		out = append(out, reports.Report{
			ID:          int64(i + 1),
			CompanyName: company.CompanyName,
			CompanySlug: company.CompanySlug,
			Position:    positions[g.rng.Intn(len(positions))],
			Outcome:     outcome,
			DaysWaited:  g.rng.Intn(60) + waitFloor,
			AppliedVia:  appliedVia[g.rng.Intn(len(appliedVia))],
			Notes:       notes,
			CreatedAt:   now.AddDate(0, 0, -g.rng.Intn(180)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// drawOutcome assigns ghosted below the company's ghost rate, then rejected
// and responded within the next ten percentage points each, offer otherwise.
func (g *Generator) drawOutcome(ghostRate float64) (reports.Outcome, string) {
	draw := g.rng.Float64()
	switch {
	case draw < ghostRate/100:
		return reports.OutcomeGhosted, ghostedNotes[g.rng.Intn(len(ghostedNotes))]
	case draw < (ghostRate+10)/100:
		return reports.OutcomeRejected, rejectedNotes[g.rng.Intn(len(rejectedNotes))]
	case draw < (ghostRate+20)/100:
		return reports.OutcomeResponded, respondedNotes[g.rng.Intn(len(respondedNotes))]
	default:
		return reports.OutcomeOffer, offerNote
	}
}

// GenerateReports is the production entry point: a fresh time-seeded
// generator per call, so repeated calls return different reports.
func GenerateReports(slug string) []reports.Report {
	return NewGenerator().Reports(slug)
}
