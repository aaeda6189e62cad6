package domain

import "time"

// Document is an employee file record. UploadedAt stays a raw string
// because the API mixes date-only and RFC 3339 timestamps; ParseDate
// normalizes it where a date is actually needed.
type Document struct {
	ID         ID        `json:"id"`
	EmployeeID ID        `json:"employee_id"`
	FileName   string    `json:"file_name"`
	DocType    string    `json:"doc_type"`
	UploadedAt string    `json:"uploaded_at"`
	Employee   *Employee `json:"employee"`
}

// DepartureRequest is an early-departure ("salida anticipada") request.
type DepartureRequest struct {
	ID         ID        `json:"id"`
	EmployeeID ID        `json:"employee_id"`
	Date       string    `json:"date"`
	ExitTime   string    `json:"exit_time"`
	ReturnTime string    `json:"return_time"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	Employee   *Employee `json:"employee"`
}

// OwnerID resolves the owning employee identifier for a document.
func (d Document) OwnerID() string {
	if !d.EmployeeID.IsZero() {
		return d.EmployeeID.String()
	}
	if d.Employee != nil {
		return d.Employee.ID.String()
	}
	return ""
}

// OwnerID resolves the owning employee identifier for a request.
func (r DepartureRequest) OwnerID() string {
	if !r.EmployeeID.IsZero() {
		return r.EmployeeID.String()
	}
	if r.Employee != nil {
		return r.Employee.ID.String()
	}
	return ""
}

// ParseDate accepts the two date representations the upstream API emits.
// ok is false for anything else, including the empty string.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
