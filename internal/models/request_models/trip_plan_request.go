package request_models

import (
	"github.com/go-playground/validator/v10"
)

// TripPlanRequest is the validated payload submitted from the planner form.
// The server only requires it to be structurally parseable; field rules are
// enforced client-side before a request is ever sent.
type TripPlanRequest struct {
	From              string `json:"from" validate:"required"`
	To                string `json:"to" validate:"required"`
	Days              int    `json:"days" validate:"required,min=1"`
	Adults            int    `json:"adults" validate:"required,min=1"`
	Kids              int    `json:"kids" validate:"min=0"`
	Budget            string `json:"budget" validate:"required"`
	HotelPreference   string `json:"hotelPreference" validate:"required,oneof=Luxury Boutique 'Mid-range' Budget Resort 'Bed and Breakfast' Hostel"`
	FoodPreference    string `json:"foodPreference" validate:"required,oneof='Local cuisine' 'Fine dining' Vegan Seafood International Fusion"`
	AdditionalDetails string `json:"additionalDetails,omitempty" validate:"omitempty,max=1000"`
}

var validate = validator.New()

// Validate checks the field constraints that must hold before submission.
func (r TripPlanRequest) Validate() error {
	return validate.Struct(r)
}
