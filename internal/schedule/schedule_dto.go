package schedule

type CreateScheduleRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=100"`
	EntryTime        string `json:"entry_time" binding:"required,datetime=15:04"`
	ExitTime         string `json:"exit_time" binding:"required,datetime=15:04"`
	ToleranceMinutes int    `json:"tolerance_minutes" binding:"gte=0,lte=120"`
}

type UpdateScheduleRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=100"`
	EntryTime        string `json:"entry_time" binding:"required,datetime=15:04"`
	ExitTime         string `json:"exit_time" binding:"required,datetime=15:04"`
	ToleranceMinutes int    `json:"tolerance_minutes" binding:"gte=0,lte=120"`
}

type ScheduleResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	EntryTime        string `json:"entry_time"`
	ExitTime         string `json:"exit_time"`
	ToleranceMinutes int    `json:"tolerance_minutes"`
}
