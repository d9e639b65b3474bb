package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/MOTAHAR124/AI-Trip-Planner/internal/models/request_models"
	"github.com/MOTAHAR124/AI-Trip-Planner/pkg/generator"
)

// DefaultFullName is used when no authenticated display name is available.
const DefaultFullName = "Traveler"

const promptTemplate = `Create a detailed trip itinerary with the following details:
    - User Full Name: %[1]s
    - From: %[2]s
    - To: %[3]s
    - Duration: %[4]d days
    - Travelers: %[5]d adults and %[6]d kids
    - Budget: %[7]s in INR
    - Hotel Preference: %[8]s
    - Food Preference: %[9]s%[10]s

    You can also deny any of the requests if you think it is not possible to fulfill because of the budget or other constraints.

    Always address the user directly and include their full name "%[1]s" at least once in the response.
    Start the response with a friendly greeting that references their name, and when you reference their name, wrap it in markdown bold like **%[1]s**.

    Please provide a detailed day-by-day itinerary in markdown format with the following sections:

    # Trip Overview
    Start with a brief overview of the trip, including:
    - Destination highlights
    - Best time to visit
    - General travel tips
    - Budget considerations
    - Any special considerations for the group

    ## Day-by-Day Itinerary
    For each day, include:
    - Morning activities
    - Afternoon activities
    - Evening activities
    - Recommended restaurants
    - Transportation details
    - Estimated costs

    ## Accommodations
    - Recommended hotels/places to stay
    - Price ranges
    - Location benefits
    - Amenities
    - Booking tips

    ## Local Transportation
    - Airport transfers
    - Local transport options
    - Cost estimates
    - Tips for getting around

    ## Food & Dining
    - Restaurant recommendations
    - Local specialties
    - Price ranges
    - Dietary considerations
    - Reservation tips

    ## Budget Breakdown
    - Accommodation costs
    - Transportation costs
    - International/intercity travel costs (e.g., flights, trains, buses)
    - Food expenses
    - Activity costs
    - Additional expenses
    - Visa fees (if required) and approximate processing costs
    - Money-saving tips

    ## Travel Tips
    - Local customs
    - Safety tips
    - Weather considerations
    - Packing suggestions
    - Emergency contacts

    Use markdown formatting:
    - Use # for main title
    - Use ## for section headings
    - Use ### for subsections
    - Use bullet points (-) for lists
    - Use bold for emphasis
    - Use italic for additional information
    - Add an empty line between paragraphs
    - Use <br> for line breaks within paragraphs
    - Ensure each section has proper spacing before and after

    Format the response in a clear, organized structure with proper markdown syntax and spacing.`

type PlanServiceInterface interface {
	BuildPrompt(req request_models.TripPlanRequest, fullName string) string
	StreamPlan(ctx context.Context, req request_models.TripPlanRequest, fullName string) (<-chan string, <-chan error)
}

type PlanService struct {
	generator generator.Generator
	logger    *zap.Logger
}

func NewPlanService(gen generator.Generator, logger *zap.Logger) PlanServiceInterface {
	return &PlanService{
		generator: gen,
		logger:    logger,
	}
}

// BuildPrompt substitutes every payload field into the fixed itinerary template.
func (p *PlanService) BuildPrompt(req request_models.TripPlanRequest, fullName string) string {
	if strings.TrimSpace(fullName) == "" {
		fullName = DefaultFullName
	}

	details := ""
	if strings.TrimSpace(req.AdditionalDetails) != "" {
		details = fmt.Sprintf("\n    - Additional Details: %s", req.AdditionalDetails)
	}

	return fmt.Sprintf(promptTemplate,
		fullName,
		req.From,
		req.To,
		req.Days,
		req.Adults,
		req.Kids,
		req.Budget,
		req.HotelPreference,
		req.FoodPreference,
		details,
	)
}

// StreamPlan builds the prompt and relays the generator's fragments untouched.
func (p *PlanService) StreamPlan(ctx context.Context, req request_models.TripPlanRequest, fullName string) (<-chan string, <-chan error) {
	prompt := p.BuildPrompt(req, fullName)

	p.logger.Info("Generating trip plan",
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.Int("days", req.Days),
		zap.Int("prompt_len", len(prompt)))

	return p.generator.Stream(ctx, prompt)
}
