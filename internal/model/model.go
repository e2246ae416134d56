package model

type UserCreate struct {
	Email    string  `json:"email" binding:"required,email"`
	Name     *string `json:"name"`
	Timezone *string `json:"timezone"`
}

// LogCreate is the morning check-in payload. Everything is optional except
// that log_date, when present, must be YYYY-MM-DD; it defaults to today.
type LogCreate struct {
	LogDate     string           `json:"log_date"`
	InAttention *string          `json:"in_attention"`
	InObsession *string          `json:"in_obsession"`
	InAgency    *string          `json:"in_agency"`
	Reading     *string          `json:"reading"`
	LinkDumps   []map[string]any `json:"link_dumps"`
}

// LogCheckout is the evening payload. At least one TIL is required.
type LogCheckout struct {
	OutTil1   string           `json:"out_til1" binding:"required"`
	OutTil2   *string          `json:"out_til2"`
	OutTil3   *string          `json:"out_til3"`
	Reading   *string          `json:"reading"`
	LinkDumps []map[string]any `json:"link_dumps"`
}

// LogUpdate carries a partial edit; nil means "leave untouched".
// A non-nil empty LinkDumps slice clears the list.
type LogUpdate struct {
	InAttention *string          `json:"in_attention"`
	InObsession *string          `json:"in_obsession"`
	InAgency    *string          `json:"in_agency"`
	OutTil1     *string          `json:"out_til1"`
	OutTil2     *string          `json:"out_til2"`
	OutTil3     *string          `json:"out_til3"`
	Reading     *string          `json:"reading"`
	LinkDumps   []map[string]any `json:"link_dumps"`
}

// UserCreateWithLog signs a user up together with their first check-in.
type UserCreateWithLog struct {
	UserData UserCreate `json:"user_data" binding:"required"`
	LogData  LogCreate  `json:"log_data"`
}
