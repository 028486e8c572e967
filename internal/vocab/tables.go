package vocab

import "github.com/ppiankov/rulegen/internal/model"

// Canonical first-rating phrases
const (
	RatingVerySatisfied        = "Very satisfied"
	RatingSomewhatSatisfied    = "Somewhat satisfied"
	RatingNeither              = "Neither satisfied nor dissatisfied"
	RatingSomewhatDissatisfied = "Somewhat dissatisfied"
)

// Canonical second-rating reasons
const (
	ReasonHighValue   = "It is for a service that generates high value for the business"
	ReasonNotProvided = "It is for a service the business does not provide"
	ReasonRelevant    = "It is relevant to the services the business provides"
	ReasonNotReady    = "The person calling was not ready to book services"
	ReasonNone        = ""
)

// FirstRating maps the sheet's satisfaction labels
var FirstRating = NewMapper(CategoryFirstRating, map[string]string{
	"Very Satisfied":                     RatingVerySatisfied,
	"Somewhat Satisfied":                 RatingSomewhatSatisfied,
	"Neither Satisfied nor dissatisfied": RatingNeither,
	"Somewhat Dissatisfied":              RatingSomewhatDissatisfied,
}, RatingSomewhatDissatisfied)

// SecondRating maps the sheet's follow-up labels to reason phrases
var SecondRating = NewMapper(CategorySecondRating, map[string]string{
	"High Value":                              ReasonHighValue,
	"Not preferred Service":                   ReasonNotProvided,
	"It is a relevant service":                ReasonRelevant,
	"Consumer was not ready to book services": ReasonNotReady,
	"N/A":                                     ReasonNone,
}, ReasonNone)

// JobTypes maps case labels to platform job types. Both spellings of N/A
// are explicit entries so they are not reported as unmapped.
var JobTypes = NewMapper(CategoryJobType, map[string]model.JobType{
	"Auto Accident":        model.JobTypePersonalInjury,
	"Workers Compensation": model.JobTypeWorkersCompensation,
	"Slip and Fall":        model.JobTypePersonalInjury,
	"N/A":                  model.JobTypeNone,
	"n/a":                  model.JobTypeNone,
}, model.JobTypeNone)
