package requests

type ReplaceSpecializationsRequest struct {
	Specializations []SpecializationPayload `json:"specializations" validate:"required,dive"`
}

type SpecializationPayload struct {
	Name     string               `json:"name" validate:"required"`
	Schedule []ScheduleDayPayload `json:"schedule" validate:"dive"`
}

type ScheduleDayPayload struct {
	Day   string   `json:"day" validate:"required,day_key"`
	Slots []string `json:"slots" validate:"required,min=1,dive,slot_label"`
}
