package models

import "time"

type TimeModel struct {
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// User is a document in the users collection. Providers additionally carry
// an ordered list of specializations with their published schedules.
type User struct {
	ID              string           `bson:"_id,omitempty"`
	Name            string           `bson:"name"`
	Email           string           `bson:"email"`
	Role            string           `bson:"role"`
	Specializations []Specialization `bson:"specializations,omitempty"`
	TimeModel       `bson:",inline"`
}

type Specialization struct {
	Name     string        `bson:"name"`
	Schedule []ScheduleDay `bson:"schedule"`
}

// ScheduleDay keeps the provider's published day order; replacing a
// specialization's schedule is a whole-document overwrite, never a
// per-slot patch.
type ScheduleDay struct {
	Day   DayKey   `bson:"day"`
	Slots []string `bson:"slots"`
}

// FindSpecialization matches by exact name, the same comparison the booking
// path uses. Emergency matching is looser, see MatchesSpecialization.
func (u *User) FindSpecialization(name string) *Specialization {
	for i := range u.Specializations {
		if u.Specializations[i].Name == name {
			return &u.Specializations[i]
		}
	}
	return nil
}

// ScheduleKind returns the day-key kind shared by every day of the schedule,
// or DayKeyUnknown when the schedule is empty or mixes kinds.
func (s *Specialization) ScheduleKind() DayKeyKind {
	kind := DayKeyUnknown
	for _, day := range s.Schedule {
		dayKind := day.Day.Kind()
		if dayKind == DayKeyUnknown {
			return DayKeyUnknown
		}
		if kind == DayKeyUnknown {
			kind = dayKind
			continue
		}
		if kind != dayKind {
			return DayKeyUnknown
		}
	}
	return kind
}

func (s *Specialization) FindDay(day DayKey) *ScheduleDay {
	for i := range s.Schedule {
		if s.Schedule[i].Day == day {
			return &s.Schedule[i]
		}
	}
	return nil
}
