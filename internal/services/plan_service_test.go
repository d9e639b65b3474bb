package services

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MOTAHAR124/AI-Trip-Planner/internal/models/request_models"
)

// stubGenerator replays a fixed fragment sequence, or a terminal error.
type stubGenerator struct {
	fragments []string
	err       error
	calls     atomic.Int64
	prompt    string
}

func (s *stubGenerator) Stream(ctx context.Context, prompt string) (<-chan string, <-chan error) {
	s.calls.Add(1)
	s.prompt = prompt

	chunks := make(chan string)
	errs := make(chan error, 1)
	go func() {
		defer close(chunks)
		defer close(errs)
		for _, frag := range s.fragments {
			select {
			case chunks <- frag:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
		if s.err != nil {
			errs <- s.err
		}
	}()
	return chunks, errs
}

func testRequest() request_models.TripPlanRequest {
	return request_models.TripPlanRequest{
		From:            "Mumbai",
		To:              "Goa",
		Days:            3,
		Adults:          2,
		Kids:            1,
		Budget:          "₹ 40000-50000",
		HotelPreference: "Mid-range",
		FoodPreference:  "Seafood",
	}
}

func TestBuildPromptEmbedsEveryField(t *testing.T) {
	svc := NewPlanService(&stubGenerator{}, zap.NewNop())

	prompt := svc.BuildPrompt(testRequest(), "Jane Doe")

	assert.Contains(t, prompt, "- User Full Name: Jane Doe")
	assert.Contains(t, prompt, "- From: Mumbai")
	assert.Contains(t, prompt, "- To: Goa")
	assert.Contains(t, prompt, "- Duration: 3 days")
	assert.Contains(t, prompt, "- Travelers: 2 adults and 1 kids")
	assert.Contains(t, prompt, "- Budget: ₹ 40000-50000 in INR")
	assert.Contains(t, prompt, "- Hotel Preference: Mid-range")
	assert.Contains(t, prompt, "- Food Preference: Seafood")
}

func TestBuildPromptAddressesUserByName(t *testing.T) {
	svc := NewPlanService(&stubGenerator{}, zap.NewNop())

	prompt := svc.BuildPrompt(testRequest(), "Jane Doe")

	assert.Contains(t, prompt, `include their full name "Jane Doe"`)
	assert.Contains(t, prompt, "**Jane Doe**")
}

func TestBuildPromptEnumeratesRequiredSections(t *testing.T) {
	svc := NewPlanService(&stubGenerator{}, zap.NewNop())

	prompt := svc.BuildPrompt(testRequest(), "Jane Doe")

	for _, section := range []string{
		"# Trip Overview",
		"## Day-by-Day Itinerary",
		"## Accommodations",
		"## Local Transportation",
		"## Food & Dining",
		"## Budget Breakdown",
		"## Travel Tips",
	} {
		assert.Contains(t, prompt, section)
	}
}

func TestBuildPromptDefaultsToTraveler(t *testing.T) {
	svc := NewPlanService(&stubGenerator{}, zap.NewNop())

	prompt := svc.BuildPrompt(testRequest(), "")
	assert.Contains(t, prompt, "- User Full Name: Traveler")

	prompt = svc.BuildPrompt(testRequest(), "   ")
	assert.Contains(t, prompt, "- User Full Name: Traveler")
}

func TestBuildPromptAdditionalDetails(t *testing.T) {
	svc := NewPlanService(&stubGenerator{}, zap.NewNop())

	req := testRequest()
	prompt := svc.BuildPrompt(req, "Jane Doe")
	assert.NotContains(t, prompt, "Additional Details")

	req.AdditionalDetails = "We are celebrating an anniversary"
	prompt = svc.BuildPrompt(req, "Jane Doe")
	assert.Contains(t, prompt, "- Additional Details: We are celebrating an anniversary")
}

func TestStreamPlanRelaysFragmentsInOrder(t *testing.T) {
	gen := &stubGenerator{fragments: []string{"# Trip", "\n## Day 1", "\nVisit X"}}
	svc := NewPlanService(gen, zap.NewNop())

	chunks, errs := svc.StreamPlan(context.Background(), testRequest(), "Jane Doe")

	var builder strings.Builder
	for chunk := range chunks {
		builder.WriteString(chunk)
	}
	require.NoError(t, <-errs)

	assert.Equal(t, "# Trip\n## Day 1\nVisit X", builder.String())
	assert.Equal(t, int64(1), gen.calls.Load())
	assert.Contains(t, gen.prompt, "- To: Goa")
}
