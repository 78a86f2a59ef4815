package model

// Doctor is globally visible and globally mutable by any authenticated
// caller. There is no ownership dimension on doctors.
type Doctor struct {
	Base
	Name       string  `json:"name" db:"name"`
	Speciality *string `json:"speciality" db:"speciality"`
}

// CreateDoctorRequest represents doctor creation parameters
type CreateDoctorRequest struct {
	Name       string  `json:"name" binding:"required"`
	Speciality *string `json:"speciality"`
}

// UpdateDoctorRequest represents doctor update parameters. Omitted or
// empty fields keep the stored values.
type UpdateDoctorRequest struct {
	Name       string `json:"name"`
	Speciality string `json:"speciality"`
}
