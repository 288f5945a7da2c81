package schedule

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/heartmarshall/facility-backend/internal/domain"
)

var validate = newValidator()

// timeOfDayRe is the CHECK on inspection_schedules.time_of_day. Stored rows
// are read leniently by recurrence.ParseTimeOfDay; input must be canonical.
var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		return timeOfDayRe.MatchString(fl.Field().String())
	})
	return v
}

// Fields are the editable parts of a schedule. A nil DayOfWeek falls back to
// Monday and a nil DayOfMonth to the 1st when the schedule is evaluated.
type Fields struct {
	ChecklistTemplateID *uuid.UUID       `json:"checklist_template_id"`
	Name                string           `json:"name" validate:"required,max=200"`
	Frequency           domain.Frequency `json:"frequency" validate:"required,oneof=daily weekly biweekly monthly"`
	DayOfWeek           *int             `json:"day_of_week" validate:"omitempty,min=0,max=6"`
	DayOfMonth          *int             `json:"day_of_month" validate:"omitempty,min=1,max=28"`
	TimeOfDay           string           `json:"time_of_day" validate:"required,timeofday"`
	AssignedTo          *uuid.UUID       `json:"assigned_to"`
}

func (f *Fields) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.TimeOfDay = strings.TrimSpace(f.TimeOfDay)
	f.Frequency = domain.Frequency(strings.ToLower(strings.TrimSpace(string(f.Frequency))))
}

// CreateInput holds the parameters for creating a schedule.
type CreateInput struct {
	BuildingID uuid.UUID `json:"building_id"`
	Fields
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if i.BuildingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "building_id", Message: "required"})
	}
	errs = append(errs, fieldErrors(i.Fields)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput replaces the editable fields of an existing schedule.
type UpdateInput struct {
	ScheduleID uuid.UUID `json:"-"`
	Fields
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ScheduleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "schedule_id", Message: "required"})
	}
	errs = append(errs, fieldErrors(i.Fields)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func fieldErrors(f Fields) []domain.FieldError {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domain.FieldError{{Field: "input", Message: err.Error()}}
	}

	out := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "min " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "max " + fe.Param() + " characters"
		}
		return "max " + fe.Param()
	case "timeofday":
		return "must be HH:MM"
	default:
		return fe.Tag()
	}
}
