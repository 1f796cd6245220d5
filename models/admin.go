package models

import "encoding/json"

// AdminOverview aggregates the dashboard counters served by the upstream
// admin endpoints.
type AdminOverview struct {
	TotalPatients     int     `json:"totalPatients"`
	TotalDoctors      int     `json:"totalDoctors"`
	TotalAppointments int     `json:"totalAppointments"`
	TotalRevenue      float64 `json:"totalRevenue,omitempty"`
}

// AdminAppointmentPage is a filtered page of appointments for the admin
// dashboard table. Rows are passed through untouched; the gateway does not
// reinterpret admin data.
type AdminAppointmentPage struct {
	Appointments []json.RawMessage `json:"appointments"`
	Total        int               `json:"total"`
	Page         int               `json:"page"`
}
